// Package server holds the HTTP server configuration and lifecycle.
//
// # Configuration
//
// The Config struct defines the bind host and port (all interfaces, 5080 by
// default), whether interrupts are handled gracefully, and the drain timeout.
//
// # Lifecycle
//
// Stopped -> Listening -> Stopped. Listen binds first, so a port that is
// already in use fails before the "Server up on ..." line is printed. Serve
// runs the Fiber app on the listener; cancelling its context stops accepting,
// drains in-flight requests and prints "Server down.".
//
// # Usage
//
//	srv := server.New(cfg.Server, log, os.Stdout)
//	srv.App().Use(rayid.New())
//	err := srv.Run(ctx)
package server
