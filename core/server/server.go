package server

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server owns the Fiber application and its listener lifecycle.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	out    io.Writer
}

// New creates a server. The start-up and shutdown lines are written to out.
func New(cfg Config, logger *zap.Logger, out io.Writer) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own banner
	})

	return &Server{
		cfg:    cfg,
		app:    app,
		logger: logger,
		out:    out,
	}
}

// App returns the underlying Fiber application for middleware and feature registration.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve prints the start-up line and serves on ln until ctx is cancelled or the
// listener fails. Cancellation drains in-flight requests, prints the shutdown
// line and returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	fmt.Fprintf(s.out, "Server up on %s\n", s.cfg.URL(ln.Addr()))
	s.logger.Info("Starting server", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		s.logger.Warn("Shutdown did not complete cleanly", zap.Error(err))
	}
	// Unblocks the serve goroutine if it had not started accepting yet.
	_ = ln.Close()
	<-errCh

	fmt.Fprintln(s.out, "Server down.")
	return nil
}

// Run binds and serves. A bind failure is returned before anything is printed.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
