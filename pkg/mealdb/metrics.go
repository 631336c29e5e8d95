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

package mealdb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rf_upstream_requests_total",
			Help: "Total number of requests sent to the recipe API",
		},
		[]string{"op", "status"},
	)
	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rf_upstream_request_duration_seconds",
			Help:    "Duration of recipe API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	gatewaySubstitutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rf_gateway_substitutions_total",
			Help: "Total number of failures replaced with an empty result",
		},
		[]string{"op", "kind"},
	)
)
