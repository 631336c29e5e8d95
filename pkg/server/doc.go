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

// Package server provides the HTTP server shared by the recipe finder API:
// lifecycle, middleware, error responses and system endpoints.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("rfd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recipes": h.handleRecipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT or SIGTERM, then shuts down gracefully within the
// configured shutdown timeout.
//
// # Middleware
//
// Application handlers are wrapped, outermost first, with:
//   - metrics: request count, latency and in-flight gauge by route pattern
//   - version: negotiates the API version from the Accept header
//     (application/vnd.recipe-finder.v1+json) and sets X-API-Version
//   - request ID: honors a valid X-Request-Id header or generates a UUID
//   - panic recovery: converts panics into 500 error responses
//   - logging: debug-level request start and completion
//
// The wrapped response writer supports hijacking so websocket upgrades pass
// through the chain.
//
// # System Endpoints
//
//   - GET /        - Server name, version, readiness and routes
//   - GET /health  - Liveness
//   - GET /ready   - Readiness (503 until started, during shutdown, or while a
//     WithReadinessCheck dependency check fails)
//   - GET /metrics - Prometheus metrics
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Both write
// an ErrorResponse:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Recipe not found",
//	  "details": {"id": "52772"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// Structured error codes map to statuses with HTTPStatusFromCode; upstream
// failures are served as 502 Bad Gateway.
//
// # Configuration
//
//   - PORT: listen port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default: 30)
package server
