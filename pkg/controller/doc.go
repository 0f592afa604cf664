// Package controller holds the HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers plus OPTIONS preflight handling.
//   - WithLogger: request-scoped logger and request ID in the context, with
//     access logging on completion.
//
// Helpers:
//   - PprofMux: a ServeMux exposing the net/http/pprof handlers.
package controller
