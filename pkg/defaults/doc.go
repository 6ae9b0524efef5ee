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

// Package defaults provides centralized configuration constants for verskit.
//
// This package defines timeout values, rate limits, and size caps used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Categories
//
// Constants are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP requests
//   - Rate limiting: For the API server request limiter
//   - Batch and payload limits: For batch endpoints and remote fetches
//   - Concurrency limits: For CLI bulk operations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/s33d1ing/verskit/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.HandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
// When choosing values:
//
//   - API handlers: version operations are CPU-bound, 10s is generous
//   - Server shutdown: 30s for graceful shutdown
//   - Remote manifests: 30s total, capped at 10 MiB
package defaults
