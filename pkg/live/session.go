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
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/search"
)

const outboundBuffer = 16

// session binds one websocket connection to one coordinator. The coordinator
// publishes from several goroutines; only writeLoop touches the connection
// for writing.
type session struct {
	id    string
	conn  *websocket.Conn
	coord *search.Coordinator
	out   chan Outbound
	done  chan struct{}
	once  sync.Once
	log   *slog.Logger

	pongTimeout  time.Duration
	pingInterval time.Duration

	// owned by writeLoop
	lastSeq uint64
}

func newSession(conn *websocket.Conn, h *Handler) *session {
	s := &session{
		id:   uuid.NewString(),
		conn: conn,
		out:  make(chan Outbound, outboundBuffer),
		done: make(chan struct{}),

		pongTimeout:  h.pongTimeout,
		pingInterval: h.pingInterval,
	}
	s.log = slog.With("session", s.id)
	s.coord = search.NewCoordinator(h.gw,
		search.WithClock(h.clock),
		search.WithDebounce(h.debounce),
		search.WithNavigator(search.NavigatorFunc(func(p search.Params) {
			s.send(navigateMessage(p))
		})),
		search.WithObserver(func(v search.View) {
			s.send(viewMessage(v))
		}),
	)
	return s
}

func (s *session) run(initial search.Params) {
	sessionsActive.Inc()
	defer sessionsActive.Dec()

	s.log.Debug("live session opened", "search", initial.Search, "category", initial.Category)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop()
	}()

	s.coord.Init(initial)
	err := s.readLoop()

	s.stop()
	s.coord.Close()
	s.coord.Wait()
	wg.Wait()
	_ = s.conn.Close()

	if err != nil {
		s.log.Warn("live session closed unexpectedly", "error", err)
		return
	}
	s.log.Debug("live session closed")
}

// send queues m unless the session is stopping.
func (s *session) send(m Outbound) {
	select {
	case s.out <- m:
	case <-s.done:
	}
}

func (s *session) stop() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *session) readLoop() error {
	s.conn.SetReadLimit(defaults.LiveMaxMessageBytes)
	s.extendReadDeadline()
	s.conn.SetPongHandler(func(string) error {
		s.extendReadDeadline()
		return nil
	})

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return err
			}
			if errors.Is(err, websocket.ErrReadLimit) {
				s.log.Warn("live session message too large", "limit", defaults.LiveMaxMessageBytes)
			}
			return nil
		}
		s.extendReadDeadline()

		var m Inbound
		if err := json.Unmarshal(payload, &m); err != nil {
			messagesReceived.WithLabelValues("invalid").Inc()
			s.send(errorMessage("invalid message"))
			continue
		}
		if !s.dispatch(m) {
			messagesReceived.WithLabelValues("unknown").Inc()
			s.send(errorMessage("unsupported message type: " + m.Type))
			continue
		}
		messagesReceived.WithLabelValues(m.Type).Inc()
	}
}

// extendReadDeadline gives the peer another pong timeout to send a frame.
// A peer that stays silent past it fails the next read and ends the session.
func (s *session) extendReadDeadline() {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.pongTimeout)); err != nil {
		s.log.Debug("live session read deadline not set", "error", err)
	}
}

func (s *session) dispatch(m Inbound) bool {
	switch m.Type {
	case TypeKeystroke:
		s.coord.Keystroke(m.Text)
	case TypeSubmit:
		s.coord.Submit(m.Text)
	case TypeCategory:
		s.coord.SelectCategory(m.Name)
	case TypeNavigate:
		s.coord.HandleNavigation(m.Params())
	case TypeClear:
		s.coord.Clear()
	case TypeRetry:
		s.coord.Retry()
	default:
		return false
	}
	return true
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case m := <-s.out:
			if m.Type == TypeView {
				if m.View.Seq <= s.lastSeq {
					continue
				}
				s.lastSeq = m.View.Seq
			}
			if err := s.write(m); err != nil {
				s.fail(err)
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(defaults.LiveWriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.fail(err)
				return
			}
		case <-s.done:
			deadline := time.Now().Add(defaults.LiveWriteTimeout)
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, deadline)
			return
		}
	}
}

func (s *session) write(m Outbound) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(defaults.LiveWriteTimeout)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(m); err != nil {
		return err
	}
	messagesSent.WithLabelValues(m.Type).Inc()
	return nil
}

// fail stops the session after a write error. Closing the connection
// unblocks readLoop.
func (s *session) fail(err error) {
	s.log.Debug("live session write failed", "error", err)
	s.stop()
	_ = s.conn.Close()
}
