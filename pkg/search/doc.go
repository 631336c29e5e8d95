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

// Package search implements the home view and detail page coordinators.
//
// # Home View
//
// A Coordinator turns search box keystrokes and navigation parameters into
// gateway loads:
//
//	c := search.NewCoordinator(client, search.WithObserver(render))
//	c.Init(search.ParseParams(r.URL.Query()))
//	c.Keystroke("chick")
//
// Keystrokes are debounced (300ms by default, restarted on every keystroke).
// When a window closes, the trimmed text is compared with the last text that
// closed a window; identical text loads nothing, blank text loads the
// unfiltered listing, anything else searches.
//
// Submit, SelectCategory and Clear never load directly. They navigate, and
// the load happens when the Navigator reports the navigation back through
// HandleNavigation. The "search" parameter wins over "category", and the
// category value "popular" selects the popular recipes.
//
// # States
//
//	Idle -> Debouncing -> Searching -> Displaying | Error
//
// Each load takes a new generation and results from older generations are
// dropped, so a slow response never replaces a newer one.
//
// # Detail Page
//
// Detail.Load fetches one recipe and reports "Recipe not found" or a generic
// failure message when there is nothing to show.
//
// # Metrics
//
//   - rf_search_debounce_fired_total
//   - rf_search_debounce_suppressed_total
//   - rf_search_fetches_total{mode}
//   - rf_search_stale_results_total
package search
