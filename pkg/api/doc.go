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

// Package api wires the recipe gateway, the HTTP handlers and the live
// search endpoint into the rfd server.
//
// Usage:
//
//	import (
//	    "log"
//	    "github.com/mchmarny/recipe-finder/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
//   - GET /v1/recipes?search=&category= - Recipe listing. A search term wins
//     over a category; category=popular selects popular recipes; neither
//     loads random recipes.
//   - GET /v1/recipes/{id} - A single recipe; 404 when it does not exist.
//   - GET /v1/random - Random recipes.
//   - GET /v1/categories - All categories, fetched once per process.
//   - GET /v1/popular - Popular recipes, fetched once per process.
//   - GET /v1/live - Live search session (websocket, see pkg/live).
//
// System endpoints (/, /health, /ready, /metrics) come from pkg/server.
//
// Listing responses carry the mode and the section title:
//
//	{
//	  "mode": "search",
//	  "title": "Search Results for \"chicken\"",
//	  "query": "chicken",
//	  "count": 1,
//	  "recipes": [{"idMeal": "52772", "strMeal": "Teriyaki Chicken Casserole", ...}]
//	}
//
// Categories and popular recipes never change once loaded, so their responses
// carry a Cache-Control max-age. A failed population is reported as 503 and
// retried on the next request.
//
// # Configuration
//
// Environment variables:
//   - PORT, SHUTDOWN_TIMEOUT_SECONDS: see pkg/server
//   - LOG_LEVEL: debug, info, warn or error
//   - MEALDB_BASE_URL, MEALDB_POPULAR_CATEGORY, MEALDB_RANDOM_COUNT,
//     MEALDB_CACHE_FAILURES, MEALDB_REQUEST_TIMEOUT_SECONDS: see pkg/mealdb
//   - SEARCH_DEBOUNCE_MS: see pkg/live
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/recipe-finder/pkg/api.version=1.0.0'"
package api
