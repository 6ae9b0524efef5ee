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

package defaults

// Rate limiting defaults for the API server.
const (
	// RateLimitPerSecond is the default sustained request rate per server.
	RateLimitPerSecond = 50

	// RateLimitBurst is the default burst capacity above the sustained rate.
	RateLimitBurst = 100
)

// Batch and payload limits.
const (
	// MaxBatchSize is the maximum number of items accepted by batch
	// endpoints such as sort.
	MaxBatchSize = 1000

	// MaxRequestBodyBytes caps the size of JSON request bodies.
	MaxRequestBodyBytes = 1 << 20

	// MaxDownloadBytes caps the size of remote manifests fetched over HTTP.
	MaxDownloadBytes = 10 << 20
)

// Concurrency limits for CLI operations.
const (
	// CheckConcurrency bounds the number of parallel workers used by
	// bulk validation.
	CheckConcurrency = 8
)
