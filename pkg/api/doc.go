// Package api provides the HTTP API layer for the bigod analysis service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// code complexity analysis via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/bigodev/bigod/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading optional .env configuration for local development
//   - Configuring structured logging with application name and version
//   - Building the analysis pipeline from environment configuration
//   - Setting up route handlers (/ and /analyze)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, CORS, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET  /        - Static HTML banner for uptime monitors
//   - POST /analyze - Analyze a code snippet for time/space complexity
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /analyze)
//
// POST requests accept a JSON object with exactly two string fields:
//
//	{
//	  "code": "def f(xs):\n    return sorted(xs)",
//	  "language": "python"
//	}
//
// Example curl command:
//
//	curl -X POST http://localhost:8000/analyze \
//	  -H "Content-Type: application/json" \
//	  -d '{"code":"for i in range(n): pass","language":"python"}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8000)
//   - DEEPSEEK_API_KEY: model provider API key (required for analysis)
//   - DEEPSEEK_API_URL: model provider base URL (optional)
//   - BIGOD_MODEL: model identifier (optional)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// When DEEPSEEK_API_KEY is missing the server still starts and serves the
// system endpoints; /analyze responds 503 with the degraded payload.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/bigodev/bigod/pkg/api.version=1.0.0'"
package api
