// Thumbmatch
// Copyright (c) 2026 The Thumbmatch Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Thumbmatch.
//
// Thumbmatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbmatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbmatch.  If not, see <http://www.gnu.org/licenses/>.

// Package cache provides a single-process in-memory store with time-based
// expiry and deduplication of concurrent fills.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// FillFunc loads the value for a key on a cache miss. The cacheable return
// controls whether the result is stored: a failed or empty load should return
// false so the next caller retries instead of pinning a bad value for a full
// TTL window.
type FillFunc[V any] func(ctx context.Context) (value V, cacheable bool, err error)

type entry[V any] struct {
	createdAt time.Time
	value     V
}

// Store is an in-memory TTL cache keyed by string. Concurrent callers
// missing on the same key share a single in-flight fill.
type Store[V any] struct {
	clock   clockwork.Clock
	entries map[string]entry[V]
	ttl     time.Duration
	group   singleflight.Group
	mu      sync.RWMutex
}

// New creates a Store with the given expiry window. A nil clock uses the
// real clock; tests inject a fake one.
func New[V any](clock clockwork.Clock, ttl time.Duration) *Store[V] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store[V]{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// GetOrFill returns the cached value for key, or runs fill to produce it.
// Within the TTL window every caller observes the same stored value.
// Concurrent misses are collapsed into one fill call via singleflight; the
// ctx passed to fill is the first caller's.
func (s *Store[V]) GetOrFill(ctx context.Context, key string, fill FillFunc[V]) (V, error) {
	if value, ok := s.get(key); ok {
		return value, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent caller may have stored the value while this one
		// was waiting on the flight group.
		if value, ok := s.get(key); ok {
			return value, nil
		}

		value, cacheable, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		if cacheable {
			s.set(key, value)
		}
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	value, _ := result.(V)
	return value, nil
}

// Len reports the number of stored entries, expired or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[V]) get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.clock.Since(e.createdAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, createdAt: s.clock.Now()}
}
