// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: assigns every request a RayID (trace id), honoring an inbound
//     X-Ray-ID header, and echoes it in the response.
//   - reqctx: derives a cancelable context per request from the server's
//     base context, so backend calls stop when shutdown gives up on them.
//   - auth: gates the API behind a static API key (X-API-Key header).
//   - errorhandler: the Fiber ErrorHandler; the single place where returned
//     errors are classified and written as ProblemDetails envelopes.
//
// rayid must be registered first so every log line and error response
// carries the trace id.
package middleware
