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

package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader populates a cache value.
type Loader[T any] func(ctx context.Context) (T, error)

// Option configures a Once.
type Option func(*options)

type options struct {
	latchFailures bool
}

// WithLatchFailures makes the first failed population permanent: every later
// Get returns the same error without calling the loader again.
func WithLatchFailures(latch bool) Option {
	return func(o *options) {
		o.latchFailures = latch
	}
}

// Once is a get-or-populate-once cache for a single value.
//
// At most one population runs at a time and every caller that arrives while it
// is in flight shares its result. A successful result is kept for the lifetime
// of the Once. A failed result is handed to all waiters of that flight and,
// unless failures are latched, the next Get starts a fresh population.
type Once[T any] struct {
	name string
	opts options

	group singleflight.Group

	mu   sync.Mutex
	done bool
	val  T
	err  error
}

// NewOnce returns an empty cache. The name labels its metrics and logs.
func NewOnce[T any](name string, opts ...Option) *Once[T] {
	o := &Once[T]{name: name}
	for _, opt := range opts {
		opt(&o.opts)
	}
	return o
}

// Get returns the cached value, populating it with load if needed.
//
// The population is detached from ctx cancellation so that one caller giving
// up does not fail the others; ctx only bounds how long this caller waits.
func (o *Once[T]) Get(ctx context.Context, load Loader[T]) (T, error) {
	if v, ok, err := o.stored(); ok {
		cacheHits.WithLabelValues(o.name).Inc()
		return v, err
	}

	fill := context.WithoutCancel(ctx)
	ch := o.group.DoChan(o.name, func() (any, error) {
		// a flight that completed after our check may already have stored it
		if v, ok, err := o.stored(); ok {
			return v, err
		}
		cacheMisses.WithLabelValues(o.name).Inc()

		v, err := load(fill)

		o.mu.Lock()
		if err == nil || o.opts.latchFailures {
			o.val, o.err, o.done = v, err, true
		}
		o.mu.Unlock()

		if err != nil {
			cacheFillFailures.WithLabelValues(o.name).Inc()
		}
		return v, err
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-ch:
		v, _ := res.Val.(T)
		return v, res.Err
	}
}

// Loaded reports whether a value (or a latched failure) is stored.
func (o *Once[T]) Loaded() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// Reset drops the stored result so the next Get populates again.
// An in-flight population is not interrupted.
func (o *Once[T]) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	var zero T
	o.val, o.err, o.done = zero, nil, false
}

func (o *Once[T]) stored() (T, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.val, o.done, o.err
}
