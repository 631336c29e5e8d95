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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
)

const (
	// DefaultBaseURL is the public recipe API endpoint.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	// DefaultPopularCategory stands in for "popular" recipes.
	DefaultPopularCategory = "Beef"

	// maxRandomCount bounds the random fan-out.
	maxRandomCount = 12
)

// Config holds gateway configuration.
type Config struct {
	// BaseURL of the recipe API, without a trailing slash.
	BaseURL string

	// PopularCategory is the category filter used for popular recipes.
	PopularCategory string

	// RandomCount is the number of random requests issued per RandomRecipes
	// call. One matches the upstream's single random item per call.
	RandomCount int

	// LatchFailures keeps a failed one-time cache population permanently
	// instead of retrying on the next access.
	LatchFailures bool

	// RequestTimeout bounds a single upstream request.
	RequestTimeout time.Duration
}

// NewConfig returns a Config with defaults, overridden by MEALDB_* env vars.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		BaseURL:         DefaultBaseURL,
		PopularCategory: DefaultPopularCategory,
		RandomCount:     1,
		RequestTimeout:  defaults.GatewayRequestTimeout,
	}

	if v := os.Getenv("MEALDB_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv("MEALDB_POPULAR_CATEGORY"); strings.TrimSpace(v) != "" {
		cfg.PopularCategory = strings.TrimSpace(v)
	}

	if v := os.Getenv("MEALDB_RANDOM_COUNT"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			cfg.RandomCount = n
		}
	}

	if v := os.Getenv("MEALDB_CACHE_FAILURES"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			cfg.LatchFailures = true
		}
	}

	if v := os.Getenv("MEALDB_REQUEST_TIMEOUT_SECONDS"); v != "" {
		var seconds int
		if _, err := fmt.Sscanf(v, "%d", &seconds); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PopularCategory == "" {
		c.PopularCategory = DefaultPopularCategory
	}
	if c.RandomCount < 1 {
		c.RandomCount = 1
	}
	if c.RandomCount > maxRandomCount {
		c.RandomCount = maxRandomCount
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaults.GatewayRequestTimeout
	}
}
