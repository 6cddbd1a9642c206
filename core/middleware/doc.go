// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs the start and failure of every request through Zap,
//     tagged with the RayID.
//   - BodyParser: Decodes JSON and URL-encoded form bodies before any
//     controller route executes and exposes the result through Body.
//
// The application server registers all three globally, in that order.
package middleware
