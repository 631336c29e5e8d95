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

// Package mealdb is the gateway to the public recipe API (TheMealDB).
//
// It owns every outbound call, normalizes raw records into recipe.Recipe,
// and keeps two one-time caches: the category list and the popular recipes.
//
// # Endpoints
//
//	search.php?s=<text>      text search
//	random.php               one random recipe
//	lookup.php?i=<id>        recipe by ID
//	filter.php?c=<category>  recipes in a category (partial records)
//	categories.php           category list
//
// Responses wrap results in {"meals": [...]} or {"categories": [...]}; a null
// list is an empty result.
//
// # Failure Policy
//
// Failures are classified as transport or parse failures and looked up in a
// PolicyTable. DefaultPolicy substitutes an empty result (nil for lookups)
// for search, random, lookup and by-category, and propagates failures of the
// cached operations:
//
//	client := mealdb.NewClient(mealdb.WithPolicy(mealdb.StrictPolicy()))
//
// A not-found result is empty, the same as a substituted failure.
//
// # Configuration
//
//   - MEALDB_BASE_URL: API base URL
//   - MEALDB_POPULAR_CATEGORY: category used for popular recipes (default Beef)
//   - MEALDB_RANDOM_COUNT: random requests per RandomRecipes call (default 1)
//   - MEALDB_CACHE_FAILURES: keep failed cache populations (default false)
//   - MEALDB_REQUEST_TIMEOUT_SECONDS: per-request timeout
package mealdb
