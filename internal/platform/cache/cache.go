// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package cache provides an in-process two-tier TTL cache used by the
// read-path services. Each entry moves through three states: fresh
// (served directly), stale (served while a background refresh runs) and
// expired (recomputed on demand). Concurrent computations for the same
// key are coalesced through singleflight so the backing store sees at
// most one load per key at a time.
package cache

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/memora-app/memora/internal/platform/constants"
)

// # Epoch Tokens

// Epoch tokens are embedded in every cache key. Bumping a token on a
// deploy invalidates all previously written entries of that family
// without touching the stores that own them.
const (
	EpochClient   = "c1"
	EpochIDList   = "i1"
	EpochLanguage = "l1"
	EpochFilter   = "f1"
)

// # Store

type entry[V any] struct {
	value      V
	freshUntil time.Time
	staleUntil time.Time
	updatedAt  time.Time
}

// ComputeFunc loads the value for a key from the authoritative source.
type ComputeFunc[V any] func(ctx context.Context) (V, error)

// Store is a two-tier TTL cache keyed by string. The zero value is not
// usable; construct with New.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]

	epoch    string
	freshTTL time.Duration
	staleTTL time.Duration
	cap      int

	group  singleflight.Group
	logger *slog.Logger
}

/*
New creates a cache store.

Parameters:
  - epoch: epoch token prefixed to every key
  - freshTTL: duration an entry is served without recomputation
  - staleTTL: additional duration a stale entry may be served while a
    refresh runs in the background
  - logger: structured logger for refresh and sweep events

Returns:
  - *Store[V]: ready-to-use store with the default entry cap
*/
func New[V any](epoch string, freshTTL, staleTTL time.Duration, logger *slog.Logger) *Store[V] {
	return &Store[V]{
		entries:  make(map[string]*entry[V]),
		epoch:    epoch,
		freshTTL: freshTTL,
		staleTTL: staleTTL,
		cap:      constants.CacheEntryCap,
		logger:   logger,
	}
}

func (s *Store[V]) key(k string) string {
	return s.epoch + ":" + k
}

/*
GetOrCompute returns the cached value for key, computing it when absent
or expired.

State handling:
  - fresh: the cached value is returned directly
  - stale: the cached value is returned and a background refresh is
    started; a refresh failure keeps the stale entry in place
  - expired or absent: compute runs synchronously and its result is
    cached; concurrent callers for the same key share one computation

Parameters:
  - ctx: request context; cancellation aborts a synchronous compute
  - k: cache key without the epoch prefix
  - compute: loader invoked on miss or refresh

Returns:
  - V: the cached or freshly computed value
  - error: compute's error on a synchronous miss, nil otherwise
*/
func (s *Store[V]) GetOrCompute(ctx context.Context, k string, compute ComputeFunc[V]) (V, error) {
	key := s.key(k)
	now := time.Now()

	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && now.Before(e.freshUntil) {
		v := e.value
		s.mu.Unlock()
		return v, nil
	}
	if ok && now.Before(e.staleUntil) {
		v := e.value
		s.mu.Unlock()
		s.refreshAsync(key, compute)
		return v, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (any, error) {
		// Re-check under the group: another caller may have stored a
		// fresh value while this one waited.
		s.mu.Lock()
		if e, ok := s.entries[key]; ok && time.Now().Before(e.freshUntil) {
			v := e.value
			s.mu.Unlock()
			return v, nil
		}
		s.mu.Unlock()

		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		s.set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// refreshAsync recomputes a stale entry in the background. The refresh
// runs under the same singleflight key as synchronous computes, and uses
// a detached context so it outlives the triggering request.
func (s *Store[V]) refreshAsync(key string, compute ComputeFunc[V]) {
	go func() {
		_, err, _ := s.group.Do(key, func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), constants.CacheRefreshTimeout)
			defer cancel()

			v, err := compute(ctx)
			if err != nil {
				return nil, err
			}
			s.set(key, v)
			return v, nil
		})
		if err != nil {
			s.logger.Warn("cache_refresh_failed", "key", key, "error", err)
		}
	}()
}

func (s *Store[V]) set(key string, v V) {
	now := time.Now()
	s.mu.Lock()
	s.entries[key] = &entry[V]{
		value:      v,
		freshUntil: now.Add(s.freshTTL),
		staleUntil: now.Add(s.freshTTL + s.staleTTL),
		updatedAt:  now,
	}
	s.mu.Unlock()
}

// Len reports the current number of entries.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Purge drops every entry.
func (s *Store[V]) Purge() {
	s.mu.Lock()
	s.entries = make(map[string]*entry[V])
	s.mu.Unlock()
}

// # Sweeping

/*
Sweep removes entries past their stale deadline, then enforces the entry
cap. When the store still holds more than the cap, the oldest entries by
last update are evicted until the count drops by the configured
fraction.

Returns:
  - int: number of entries removed
*/
func (s *Store[V]) Sweep() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if !now.Before(e.staleUntil) {
			delete(s.entries, key)
			removed++
		}
	}

	if len(s.entries) > s.cap {
		type aged struct {
			key       string
			updatedAt time.Time
		}
		all := make([]aged, 0, len(s.entries))
		for key, e := range s.entries {
			all = append(all, aged{key: key, updatedAt: e.updatedAt})
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].updatedAt.Before(all[j].updatedAt)
		})

		evict := int(math.Ceil(float64(len(all)) * constants.CacheEvictFraction))
		for _, a := range all[:evict] {
			delete(s.entries, a.key)
			removed++
		}
	}

	return removed
}

/*
Run sweeps the store on a fixed interval until ctx is cancelled. Meant
to be started once per store from the server lifecycle.

Parameters:
  - ctx: cancellation stops the loop
*/
func (s *Store[V]) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.CacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debug("cache_sweep", "epoch", s.epoch, "removed", removed, "remaining", s.Len())
			}
		}
	}
}
