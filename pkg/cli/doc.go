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

// Package cli implements the rf command-line interface.
//
// # Commands
//
//	rf search <query>        Search recipes by name
//	rf random                Show random recipes
//	rf popular               Show popular recipes
//	rf category <name>       List recipes in a category
//	rf categories [--filter] List recipe categories
//	rf show <id>             Show a recipe by ID
//	rf browse [--search] [--category]
//
// browse resolves its flags exactly like the browse page query string: a
// search wins over a category, and the category "popular" selects popular
// recipes.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: table, json, yaml (default: table)
//	--config, -c   Gateway settings file, local path or HTTP/HTTPS URL
//	--base-url     Recipe API base URL
//	--timeout      Timeout for a single command (default: 1m)
//	--log-level    Log level (default: warn)
//
// A config file holds the gateway settings:
//
//	baseURL: https://www.themealdb.com/api/json/v1/1
//	popularCategory: Beef
//	randomCount: 3
//	cacheFailures: false
//	requestTimeout: 10s
//
// Settings are layered as MEALDB_* environment variables, then the config
// file, then --base-url.
//
// # Environment Variables
//
//	LOG_LEVEL   Logging verbosity (debug, info, warn, error)
//	RF_CONFIG   Default for --config
//	MEALDB_*    Gateway defaults, see package mealdb
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/recipe-finder/pkg/cli.version=1.0.0'"
package cli
