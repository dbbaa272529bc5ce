package server_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"testsrv/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(port string, out io.Writer) *server.Server {
	srv := server.New(server.Config{Host: "127.0.0.1", Port: port, ShutdownTimeoutSeconds: 1}, zap.NewNop(), out)
	srv.App().Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello")
	})
	return srv
}

func TestServer_ServeAndShutdown(t *testing.T) {
	var out bytes.Buffer
	srv := newServer("0", &out)

	ln, err := srv.Listen()
	require.NoError(t, err)
	url := server.Config{Port: "0"}.URL(ln.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, "Server up on "+url+"\nServer down.\n", out.String())
}

func TestServer_PortInUse(t *testing.T) {
	var firstOut, secondOut bytes.Buffer
	first := newServer("0", &firstOut)

	ln, err := first.Listen()
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- first.Serve(ctx, ln) }()

	url := server.Config{Port: port}.URL(nil)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	// The second instance fails before printing anything.
	second := newServer(port, &secondOut)
	err = second.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind")
	assert.Empty(t, secondOut.String())

	cancel()
	require.NoError(t, <-done)

	// Once the first is gone the port can be bound again.
	third := newServer(port, io.Discard)
	require.Eventually(t, func() bool {
		ln, err := third.Listen()
		if err != nil {
			return false
		}
		ln.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)
}
