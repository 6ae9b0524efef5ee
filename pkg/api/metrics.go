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

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Version parsing metrics
	parseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verskit_api_parse_failures_total",
			Help: "Total number of version strings rejected by the API, by grammar kind",
		},
		[]string{"kind"},
	)

	// Sort endpoint batch metrics
	sortBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "verskit_api_sort_batch_size",
			Help:    "Distribution of batch sizes submitted to the sort endpoint",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000},
		},
	)
)
