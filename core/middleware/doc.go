// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - Unmatched: Logs requests answered with 404 or 405, so device calls that have
//     no emulated route yet show up in the logs.
//
// Both are registered globally in server.New, ahead of every feature route.
package middleware
