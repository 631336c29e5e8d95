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

package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock sets the clock that drives the debounce timer.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(c *Coordinator) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithDebounce sets the quiet period after the last keystroke.
func WithDebounce(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithNavigator sets where navigations go. Without one, navigations are
// handled immediately by the coordinator itself.
func WithNavigator(n Navigator) Option {
	return func(c *Coordinator) {
		c.nav = n
	}
}

// WithObserver registers a function that receives every published View.
// Views may arrive from different goroutines; use View.Seq to order them.
func WithObserver(fn func(View)) Option {
	return func(c *Coordinator) {
		c.observer = fn
	}
}

// WithFetchTimeout bounds each load.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// Coordinator drives the home view: debounced keystroke search, navigation
// driven loads, and the displayed result set.
//
// The exposed State is derived: Debouncing while a debounce timer is armed,
// otherwise Searching while the latest load is in flight, otherwise the
// outcome of the latest load (Idle before any).
//
// Every load takes a new generation; a result whose generation is no longer
// current is discarded on arrival.
type Coordinator struct {
	gw           Gateway
	clock        clock.WithDelayedExecution
	debounce     time.Duration
	fetchTimeout time.Duration
	nav          Navigator
	observer     func(View)

	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup

	mu sync.Mutex

	// debounce
	timer         clock.Timer
	timerSeq      uint64
	pending       bool
	pendingText   string
	submitted     bool
	lastSubmitted string

	// loads
	gen     uint64
	loading bool
	outcome State

	// view
	seq         uint64
	mode        Mode
	query       string
	activeQuery string
	category    string
	recipes     []recipe.Recipe
	categories  []recipe.Category
	errMsg      string
	closed      bool
}

// NewCoordinator returns an idle coordinator over gw.
func NewCoordinator(gw Gateway, opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		gw:           gw,
		clock:        clock.RealClock{},
		debounce:     defaults.SearchDebounce,
		fetchTimeout: defaults.SearchFetchTimeout,
		ctx:          ctx,
		cancel:       cancel,
		outcome:      StateIdle,
		recipes:      []recipe.Recipe{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.nav == nil {
		c.nav = NavigatorFunc(c.HandleNavigation)
	}
	return c
}

// Init loads the category list and the view for the initial navigation.
func (c *Coordinator) Init(p Params) {
	c.LoadCategories()
	c.HandleNavigation(p)
}

// Keystroke records new text in the search box and restarts the debounce
// window. Only the last keystroke of a quiet window can lead to a load.
func (c *Coordinator) Keystroke(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = text
	c.pendingText = text
	c.pending = true
	c.timerSeq++
	seq := c.timerSeq
	if c.timer != nil {
		c.timer.Stop()
	}
	// The callback may run under the clock's own lock, so it only hands off.
	c.timer = c.clock.AfterFunc(c.debounce, func() {
		c.tasks.Add(1)
		go func() {
			defer c.tasks.Done()
			c.fire(seq)
		}()
	})
	c.mu.Unlock()

	c.publish()
}

// Submit searches for text right away by navigating with it. Blank text is
// ignored.
func (c *Coordinator) Submit(text string) {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = text
	if trimmed == "" {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	c.mu.Unlock()

	c.nav.Navigate(Params{Search: trimmed})
}

// SelectCategory navigates to a category listing. The PopularCategory value
// selects the popular recipes.
func (c *Coordinator) SelectCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" || c.isClosed() {
		return
	}
	c.nav.Navigate(Params{Category: name})
}

// Clear empties the search box and navigates to the unfiltered view.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = ""
	c.stopTimerLocked()
	c.mu.Unlock()

	c.nav.Navigate(Params{})
}

// HandleNavigation loads whatever the navigation parameters select.
func (c *Coordinator) HandleNavigation(p Params) {
	mode, arg := p.Resolve()
	if mode == ModeSearch {
		c.mu.Lock()
		c.query = arg
		c.mu.Unlock()
	}
	c.start(mode, arg)
}

// LoadRandom loads the unfiltered listing.
func (c *Coordinator) LoadRandom() {
	c.start(ModeDiscover, "")
}

// Retry reloads after an error. Like the error view's action, it falls back
// to the unfiltered listing.
func (c *Coordinator) Retry() {
	c.LoadRandom()
}

// LoadCategories fetches the category list in the background. Failures are
// logged and leave the list empty.
func (c *Coordinator) LoadCategories() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.tasks.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.tasks.Done()
		ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
		defer cancel()

		list, err := c.gw.Categories(ctx)
		if err != nil {
			slog.Warn("failed to load categories", "error", err)
			return
		}

		c.mu.Lock()
		c.categories = list
		c.mu.Unlock()
		c.publish()
	}()
}

// State returns the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// View returns a snapshot of the home view.
func (c *Coordinator) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Wait blocks until timer hand-offs and loads started so far are done.
func (c *Coordinator) Wait() {
	c.tasks.Wait()
}

// Close stops the debounce timer and cancels in-flight loads. Results that
// arrive afterwards are dropped.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopTimerLocked()
	c.mu.Unlock()
	c.cancel()
}

func (c *Coordinator) fire(seq uint64) {
	c.mu.Lock()
	if c.closed || !c.pending || seq != c.timerSeq {
		c.mu.Unlock()
		return
	}
	c.pending = false
	text := strings.TrimSpace(c.pendingText)
	if c.submitted && text == c.lastSubmitted {
		c.mu.Unlock()
		debounceSuppressed.Inc()
		slog.Debug("debounced query unchanged", "query", text)
		c.publish()
		return
	}
	c.submitted = true
	c.lastSubmitted = text
	c.mu.Unlock()

	debounceFired.Inc()
	if text == "" {
		c.start(ModeDiscover, "")
		return
	}
	c.start(ModeSearch, text)
}

func (c *Coordinator) start(mode Mode, arg string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.loading = true
	c.errMsg = ""
	c.mode = mode
	switch mode {
	case ModeSearch:
		c.activeQuery, c.category = arg, ""
	case ModeCategory:
		c.activeQuery, c.category = "", arg
	case ModePopular:
		c.activeQuery, c.category = "", PopularCategory
	default:
		c.activeQuery, c.category = "", ""
	}
	c.tasks.Add(1)
	c.mu.Unlock()

	fetchesStarted.WithLabelValues(mode.String()).Inc()
	slog.Debug("coordinator load", "mode", mode, "arg", arg, "generation", gen)
	c.publish()

	go func() {
		defer c.tasks.Done()
		ctx, cancel := context.WithTimeout(c.ctx, c.fetchTimeout)
		defer cancel()

		list, err := Load(ctx, c.gw, mode, arg)
		c.finish(gen, mode, list, err)
	}()
}

func (c *Coordinator) finish(gen uint64, mode Mode, list []recipe.Recipe, err error) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		staleResults.Inc()
		slog.Debug("discarding stale result", "mode", mode, "generation", gen)
		return
	}
	c.loading = false
	if err != nil {
		c.outcome = StateError
		c.errMsg = errorMessage(mode)
		c.mu.Unlock()
		slog.Error("coordinator load failed", "mode", mode, "error", err)
		c.publish()
		return
	}
	if list == nil {
		list = []recipe.Recipe{}
	}
	c.outcome = StateDisplaying
	c.recipes = list
	c.mu.Unlock()

	c.publish()
}

func (c *Coordinator) publish() {
	if c.observer == nil {
		return
	}
	c.mu.Lock()
	v := c.viewLocked()
	c.mu.Unlock()
	c.observer(v)
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = false
	c.timerSeq++
}

func (c *Coordinator) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Coordinator) stateLocked() State {
	switch {
	case c.pending:
		return StateDebouncing
	case c.loading:
		return StateSearching
	default:
		return c.outcome
	}
}

// viewLocked also advances the snapshot sequence.
func (c *Coordinator) viewLocked() View {
	c.seq++
	return View{
		Seq:        c.seq,
		State:      c.stateLocked(),
		Mode:       c.mode,
		Query:      c.query,
		Category:   c.category,
		Title:      SectionTitle(c.mode, c.activeQuery, c.category),
		Loading:    c.loading,
		Recipes:    c.recipes,
		Categories: c.categories,
		Error:      c.errMsg,
	}
}
