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
	"context"
	"log/slog"

	"github.com/mchmarny/recipe-finder/pkg/live"
	"github.com/mchmarny/recipe-finder/pkg/logging"
	"github.com/mchmarny/recipe-finder/pkg/mealdb"
	"github.com/mchmarny/recipe-finder/pkg/search"
	"github.com/mchmarny/recipe-finder/pkg/server"
)

const (
	name           = "rfd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/recipe-finder/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var _ search.Gateway = (*mealdb.Client)(nil)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := mealdb.NewConfig()
	slog.Info("recipe gateway",
		"baseURL", cfg.BaseURL,
		"popularCategory", cfg.PopularCategory,
		"randomCount", cfg.RandomCount,
		"latchFailures", cfg.LatchFailures,
	)

	gw := mealdb.NewClient(
		mealdb.WithConfig(cfg),
		mealdb.WithUserAgent(name+"/"+version),
	)
	h := NewHandler(gw)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes(live.NewHandler(gw))),
		server.WithReadinessCheck("categories", gw.Ready),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
