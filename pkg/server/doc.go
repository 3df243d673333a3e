// Package server implements a reusable HTTP server with the middleware
// chain shared by all bigod endpoints.
//
// # Architecture
//
// The server is stateless apart from a readiness flag. Application handlers
// are injected by path and wrapped with:
//
//   - Prometheus RED metrics (rate, errors, duration)
//   - API version negotiation (X-API-Version)
//   - Request ID tracking (X-Request-Id, generated when absent)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Permissive CORS (public demo endpoint)
//   - Request logging
//
// System endpoints (/health, /ready, /metrics) bypass the chain.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("bigod-api-server"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/analyze": handler.HandleAnalyze,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    // handle fatal server error
//	}
//
// # Configuration
//
// Environment variables, read once at startup:
//
//   - PORT: listen port (default 8000)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format). If not
// provided, the server generates one. The ID is echoed in the response
// header and included in server-level error responses for tracing.
//
// Rate limit state is exposed via X-RateLimit-Limit, X-RateLimit-Remaining,
// and X-RateLimit-Reset headers; rejected requests get 429 with Retry-After.
package server
