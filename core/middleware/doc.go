// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: generates a unique Request ID (RayID) for every incoming request,
//     storing it in the context locals and the X-Ray-ID response header.
//   - RequestLog: writes one access log line per request with method, path,
//     status, duration and RayID.
//
// Both are registered globally ahead of the static file feature.
package middleware
