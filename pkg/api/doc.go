// Package api provides the HTTP API layer for the verskit version service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// version parsing, comparison, and sorting over REST. Note: the API server
// does not cover manifest validation or legacy conversion; use the CLI for
// those operations.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/s33d1ing/verskit/pkg/api"
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
//   - Configuring structured logging with application name and version
//   - Setting up route handlers (/v1/parse, /v1/compare, /v1/sort)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/parse   - Decompose a version string into its fields
//   - GET /v1/compare - Compare two versions by precedence
//   - POST /v1/sort   - Sort a batch of versions by precedence
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// GET /v1/parse accepts:
//   - version: The version string to decompose (required)
//   - kind: Version grammar, semver or core (default: semver)
//
// GET /v1/compare accepts:
//   - a, b: The two version strings (required)
//   - kind: Version grammar, semver or core (default: semver)
//
// # Request Body (POST /v1/sort)
//
// POST requests accept a batch in the request body. Supports both JSON
// (application/json) and YAML (application/x-yaml) formats. Batches beyond
// the configured bound are rejected with 413.
//
// Example request body:
//
//	{
//	  "versions": ["1.10.0", "1.2.0", "1.2.0-rc.1"],
//	  "kind": "semver",
//	  "reverse": false
//	}
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/sort \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions":["1.10.0","1.2.0"]}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - RATE_LIMIT: Sustained requests per second
//   - MAX_BATCH: Maximum versions per sort request
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown bound
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/s33d1ing/verskit/pkg/api.buildVersion=1.0.0'"
package api
