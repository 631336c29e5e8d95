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

package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	debounceFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rf_search_debounce_fired_total",
			Help: "Total number of debounce windows that led to a load",
		},
	)
	debounceSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rf_search_debounce_suppressed_total",
			Help: "Total number of debounce windows dropped as duplicates",
		},
	)
	fetchesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rf_search_fetches_total",
			Help: "Total number of coordinator loads by mode",
		},
		[]string{"mode"},
	)
	staleResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rf_search_stale_results_total",
			Help: "Total number of load results discarded because a newer load started",
		},
	)
)
