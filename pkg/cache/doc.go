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

// Package cache provides the one-time caches used by the recipe gateway.
//
// A Once holds a single value that is populated by at most one loader call
// per successful population, no matter how many goroutines ask for it before
// the first load completes:
//
//	categories := cache.NewOnce[[]recipe.Category]("categories")
//	list, err := categories.Get(ctx, client.fetchCategories)
//
// # Failures
//
// By default a failed load is returned to every caller waiting on it and the
// next Get retries. WithLatchFailures(true) keeps the first failure instead.
//
// # Metrics
//
//   - rf_cache_hits_total{cache}
//   - rf_cache_misses_total{cache}
//   - rf_cache_fill_failures_total{cache}
package cache
