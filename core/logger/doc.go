// Package logger provides a structured logging facility based on Zap.
//
// Diagnostics and access logs are written to standard error, leaving standard
// output to the server's start-up and shutdown lines.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so every line logged while
// serving one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving directory", zap.String("root", root))
package logger
