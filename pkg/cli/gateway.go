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

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-finder/pkg/mealdb"
	"github.com/mchmarny/recipe-finder/pkg/serializer"
)

// settings is the gateway section of an rf config file. Zero values leave
// the environment or built-in defaults in place.
type settings struct {
	BaseURL         string `json:"baseURL" yaml:"baseURL"`
	PopularCategory string `json:"popularCategory" yaml:"popularCategory"`
	RandomCount     int    `json:"randomCount" yaml:"randomCount"`
	CacheFailures   *bool  `json:"cacheFailures" yaml:"cacheFailures"`
	RequestTimeout  string `json:"requestTimeout" yaml:"requestTimeout"`
}

func (s *settings) apply(cfg *mealdb.Config) error {
	if v := strings.TrimSpace(s.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(s.PopularCategory); v != "" {
		cfg.PopularCategory = v
	}
	if s.RandomCount > 0 {
		cfg.RandomCount = s.RandomCount
	}
	if s.CacheFailures != nil {
		cfg.LatchFailures = *s.CacheFailures
	}
	if v := strings.TrimSpace(s.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid requestTimeout %q: %w", v, err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	return nil
}

// gatewayConfig layers env defaults, the optional config file and the
// --base-url flag, in that order.
func gatewayConfig(cmd *cli.Command) (*mealdb.Config, error) {
	cfg := mealdb.NewConfig()

	if path := strings.TrimSpace(cmd.String("config")); path != "" {
		s, err := serializer.FromFile[settings](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
		}
		if err := s.apply(cfg); err != nil {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
	}

	if v := strings.TrimSpace(cmd.String("base-url")); v != "" {
		cfg.BaseURL = v
	}

	return cfg, nil
}

func newGateway(cmd *cli.Command) (*mealdb.Client, error) {
	cfg, err := gatewayConfig(cmd)
	if err != nil {
		return nil, err
	}
	return mealdb.NewClient(
		mealdb.WithConfig(cfg),
		mealdb.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
	), nil
}
