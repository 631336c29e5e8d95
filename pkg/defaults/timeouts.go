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

package defaults

import "time"

// Search timings for the interactive search coordinator.
const (
	// SearchDebounce is the quiet period after the last keystroke before a
	// query is issued. Every keystroke restarts it.
	SearchDebounce = 300 * time.Millisecond

	// SearchFetchTimeout bounds a single coordinator fetch.
	SearchFetchTimeout = 15 * time.Second
)

// Gateway timeouts for calls to the recipe API.
const (
	// GatewayRequestTimeout is the timeout for a single upstream request.
	GatewayRequestTimeout = 10 * time.Second

	// GatewayCacheFillTimeout bounds the population of a one-time cache.
	// The fill is shared by all waiters, so it is not tied to any caller.
	GatewayCacheFillTimeout = 20 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// RecipeHandlerTimeout is the timeout for recipe list and detail requests.
	RecipeHandlerTimeout = 30 * time.Second

	// CategoryCacheMaxAge is the Cache-Control max-age advertised for
	// responses served from the one-time caches.
	CategoryCacheMaxAge = 1 * time.Hour
)

// Live session timings for websocket search sessions.
const (
	// LiveWriteTimeout is the deadline for a single websocket write.
	LiveWriteTimeout = 10 * time.Second

	// LivePongTimeout is how long a session waits for a pong before closing.
	LivePongTimeout = 60 * time.Second

	// LivePingInterval must be shorter than LivePongTimeout.
	LivePingInterval = 50 * time.Second

	// LiveMaxMessageBytes caps inbound message size.
	LiveMaxMessageBytes = 4096
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ServerReadinessCheckTimeout bounds each dependency check behind /ready.
	ServerReadinessCheckTimeout = 5 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout is the default timeout for a single CLI command.
	CLICommandTimeout = 1 * time.Minute
)
