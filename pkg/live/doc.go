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

// Package live serves interactive recipe search over a websocket.
//
// Each connection owns a search coordinator running on the real clock.
// The client streams what the user does and the server streams back view
// snapshots:
//
//	client: {"type":"keystroke","text":"chick"}
//	server: {"type":"view","view":{"seq":7,"state":"debouncing",...}}
//	server: {"type":"view","view":{"seq":9,"state":"displaying",...}}
//
// Inbound messages: keystroke (text), submit (text), category (name),
// navigate (search, category), clear and retry.
//
// Outbound messages: view, navigate (url, params) and error.
//
// # Navigation
//
// The client owns the address bar. When the coordinator navigates (on submit,
// category selection or clear) the server sends a navigate message carrying
// the home URL. The client updates its history and reports the navigation
// back with a navigate message, which is what loads the results. Back and
// forward navigation is reported the same way.
//
// # Ordering
//
// View snapshots are numbered. The server never sends a snapshot older than
// one it already sent, so the last view received is the current one.
//
// # Configuration
//
//   - SEARCH_DEBOUNCE_MS: debounce window in milliseconds (default: 300)
package live
