// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP server that fronts the version service
// handlers.
//
// # Architecture
//
// The server is a stateless HTTP host with the following key components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - API version negotiation via Accept media types
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "context"
//	    "net/http"
//
//	    "github.com/s33d1ing/verskit/pkg/server"
//	)
//
//	func main() {
//	    s := server.New(
//	        server.WithName("verskitd"),
//	        server.WithVersion("1.0.0"),
//	        server.WithHandler(map[string]http.HandlerFunc{
//	            "/v1/parse": handleParse,
//	        }),
//	    )
//	    if err := s.Run(context.Background()); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200
//	cfg.RateLimitBurst = 400
//
//	s := server.New(server.WithConfig(cfg))
//
// Configuration can also come from the environment: PORT, RATE_LIMIT,
// MAX_BATCH, and SHUTDOWN_TIMEOUT_SECONDS are read by NewConfig.
//
// # Built-in Endpoints
//
// GET / - Service info (name, version, readiness, registered routes)
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus metrics in text exposition format
//
// All other routes come from WithHandler and pass through the full
// middleware chain.
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_VERSION",
//	  "message": "parsing version \"1.2.x\"",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Malformed request (400)
//   - INVALID_VERSION: Version string failed to parse (400)
//   - BATCH_TOO_LARGE: Batch exceeds configured limit (413)
//   - NOT_FOUND: No matching resource (404)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - INTERNAL: Server error (500)
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
