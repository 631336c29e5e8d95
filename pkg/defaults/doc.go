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

// Package defaults provides centralized configuration constants for the
// recipe finder.
//
// # Timeout Categories
//
//   - Search timings: debounce window and per-fetch bound
//   - Gateway timeouts: upstream requests and one-time cache fills
//   - Handler timeouts: HTTP request processing
//   - Live session timings: websocket keepalive and write deadlines
//   - Server timeouts: HTTP server configuration
//   - HTTP client timeouts: outbound transport tuning
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.GatewayRequestTimeout)
//	defer cancel()
package defaults
