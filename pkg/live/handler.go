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

package live

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"k8s.io/utils/clock"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/errors"
	"github.com/mchmarny/recipe-finder/pkg/search"
	"github.com/mchmarny/recipe-finder/pkg/server"
)

// EnvVarDebounce overrides the debounce window, in milliseconds.
const EnvVarDebounce = "SEARCH_DEBOUNCE_MS"

// Option configures a Handler.
type Option func(*Handler)

// WithDebounce sets the debounce window of every session.
func WithDebounce(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// WithClock sets the clock that drives session debounce timers.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(h *Handler) {
		if clk != nil {
			h.clock = clk
		}
	}
}

// WithPongTimeout sets how long a session waits for any frame, pong
// included, before it drops the peer.
func WithPongTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pongTimeout = d
		}
	}
}

// WithPingInterval sets how often a session pings its peer. It should stay
// below the pong timeout.
func WithPingInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pingInterval = d
		}
	}
}

// WithCheckOrigin sets the origin check applied during the upgrade.
// By default all origins are accepted.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = fn
	}
}

// Handler upgrades requests to live search sessions. Each connection gets
// its own search coordinator.
type Handler struct {
	gw           search.Gateway
	debounce     time.Duration
	pongTimeout  time.Duration
	pingInterval time.Duration
	clock        clock.WithDelayedExecution
	upgrader     websocket.Upgrader
}

// NewHandler returns a Handler serving sessions over gw.
func NewHandler(gw search.Gateway, opts ...Option) *Handler {
	h := &Handler{
		gw:           gw,
		debounce:     debounceFromEnv(),
		pongTimeout:  defaults.LivePongTimeout,
		pingInterval: defaults.LivePingInterval,
		clock:        clock.RealClock{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP handles GET /v1/live. The search and category query parameters
// select the initial view.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	params := search.ParseParams(r.URL.Query())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied
		slog.Warn("live session upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	newSession(conn, h).run(params)
}

func debounceFromEnv() time.Duration {
	d := defaults.SearchDebounce
	if v := os.Getenv(EnvVarDebounce); v != "" {
		var ms int
		if _, err := fmt.Sscanf(v, "%d", &ms); err == nil && ms > 0 {
			d = time.Duration(ms) * time.Millisecond
		}
	}
	return d
}
