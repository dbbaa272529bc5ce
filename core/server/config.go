package server

import (
	"fmt"
	"net"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the bind address. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5080"`
	// Graceful enables interrupt handling and the shutdown message.
	Graceful bool `mapstructure:"graceful" default:"true"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may drain.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// URL returns the address users should open in a browser.
// The port is taken from the bound listener when available, so ":0" binds report the real port.
func (c Config) URL(bound net.Addr) string {
	port := c.Port
	if tcp, ok := bound.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	return "http://" + net.JoinHostPort("localhost", port)
}

// ShutdownTimeout returns the drain timeout, defaulting to five seconds.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
