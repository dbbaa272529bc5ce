package server_test

import (
	"net"
	"testing"
	"time"

	"testsrv/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		want string
	}{
		{"AllInterfaces", server.Config{Port: "5080"}, ":5080"},
		{"Loopback", server.Config{Host: "127.0.0.1", Port: "8080"}, "127.0.0.1:8080"},
		{"IPv6", server.Config{Host: "::1", Port: "5080"}, "[::1]:5080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Addr())
		})
	}
}

func TestConfig_URL(t *testing.T) {
	cfg := server.Config{Port: "5080"}

	assert.Equal(t, "http://localhost:5080", cfg.URL(nil))
	assert.Equal(t, "http://localhost:41234", cfg.URL(&net.TCPAddr{IP: net.IPv4zero, Port: 41234}))
}

func TestConfig_ShutdownTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, server.Config{}.ShutdownTimeout())
	assert.Equal(t, 2*time.Second, server.Config{ShutdownTimeoutSeconds: 2}.ShutdownTimeout())
}
