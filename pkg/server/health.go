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

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/serializer"
)

// handleHealth handles GET /health. Liveness does not consult dependencies.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleReady handles GET /ready. The server is ready once started and while
// every registered dependency check passes.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	started := s.ready
	s.mu.RUnlock()

	resp := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
	}
	if !started {
		resp.Status = "not_ready"
		resp.Reason = "service is initializing"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	checks, failed := s.runChecks(r.Context())
	resp.Checks = checks
	if failed != "" {
		resp.Status = "not_ready"
		resp.Reason = failed + " unavailable"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// runChecks returns the outcome of every check and the name of the first
// one that failed.
func (s *Server) runChecks(ctx context.Context) (map[string]string, string) {
	if len(s.checks) == 0 {
		return nil, ""
	}

	results := make(map[string]string, len(s.checks))
	var failed string
	for _, c := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, defaults.ServerReadinessCheckTimeout)
		err := c.check(cctx)
		cancel()

		if err != nil {
			slog.Warn("readiness check failed", "check", c.name, "error", err)
			results[c.name] = err.Error()
			if failed == "" {
				failed = c.name
			}
			continue
		}
		results[c.name] = "ok"
	}
	return results, failed
}
