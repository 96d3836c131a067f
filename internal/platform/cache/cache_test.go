// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package cache_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-app/memora/internal/platform/cache"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestStore_FreshHit verifies that a fresh entry is served without recomputation.
*/
func TestStore_FreshHit(t *testing.T) {
	store := cache.New[string]("t1", time.Hour, 0, testLogger())
	calls := 0

	compute := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrCompute(context.Background(), "k", compute)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, store.Len())
}

/*
TestStore_ComputeErrorNotCached verifies that a failed computation is
propagated and never stored, so the next access retries.
*/
func TestStore_ComputeErrorNotCached(t *testing.T) {
	store := cache.New[string]("t1", time.Hour, 0, testLogger())
	calls := 0

	compute := func(ctx context.Context) (string, error) {
		calls++
		return "", fmt.Errorf("store down")
	}

	_, err := store.GetOrCompute(context.Background(), "k", compute)
	require.Error(t, err)

	_, err = store.GetOrCompute(context.Background(), "k", compute)
	require.Error(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, store.Len())
}

/*
TestStore_StaleServedWhileRefreshing verifies the stale window: the old
value is returned immediately and a background refresh replaces it.
*/
func TestStore_StaleServedWhileRefreshing(t *testing.T) {
	store := cache.New[string]("t1", 20*time.Millisecond, time.Hour, testLogger())

	var calls atomic.Int32
	compute := func(ctx context.Context) (string, error) {
		n := calls.Add(1)
		return fmt.Sprintf("v%d", n), nil
	}

	v, err := store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	// Let the entry pass its fresh deadline but stay inside the stale window.
	time.Sleep(40 * time.Millisecond)

	v, err = store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v, "stale value must be served immediately")

	// The background refresh replaces the entry.
	require.Eventually(t, func() bool {
		return calls.Load() == 2
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		v, err := store.GetOrCompute(context.Background(), "k", compute)
		return err == nil && v == "v2"
	}, time.Second, 5*time.Millisecond)
}

/*
TestStore_StaleRefreshFailureKeepsEntry verifies that a failed background
refresh leaves the stale value in place.
*/
func TestStore_StaleRefreshFailureKeepsEntry(t *testing.T) {
	store := cache.New[string]("t1", 20*time.Millisecond, time.Hour, testLogger())

	var calls atomic.Int32
	compute := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "v1", nil
		}
		return "", fmt.Errorf("store down")
	}

	_, err := store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	v, err := store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	// Still serving the stale value after the refresh failed.
	v, err = store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
}

/*
TestStore_ExpiredRecomputesSynchronously verifies that an entry past its
stale deadline is recomputed on access.
*/
func TestStore_ExpiredRecomputesSynchronously(t *testing.T) {
	store := cache.New[string]("t1", 10*time.Millisecond, 0, testLogger())

	calls := 0
	compute := func(ctx context.Context) (string, error) {
		calls++
		return fmt.Sprintf("v%d", calls), nil
	}

	v, err := store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	time.Sleep(30 * time.Millisecond)

	v, err = store.GetOrCompute(context.Background(), "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, 2, calls)
}

/*
TestStore_ConcurrentMissesShareOneComputation verifies that concurrent
callers for the same absent key trigger exactly one load.
*/
func TestStore_ConcurrentMissesShareOneComputation(t *testing.T) {
	store := cache.New[string]("t1", time.Hour, 0, testLogger())

	var calls atomic.Int32
	compute := func(ctx context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetOrCompute(context.Background(), "k", compute)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

/*
TestStore_SweepRemovesExpiredEntries verifies expiry-based sweeping.
*/
func TestStore_SweepRemovesExpiredEntries(t *testing.T) {
	store := cache.New[string]("t1", 10*time.Millisecond, 10*time.Millisecond, testLogger())

	for i := 0; i < 5; i++ {
		_, err := store.GetOrCompute(context.Background(), fmt.Sprintf("k%d", i), func(ctx context.Context) (string, error) {
			return "v", nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 5, store.Len())

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 5, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

/*
TestStore_SweepEnforcesEntryCap verifies that the sweep evicts the
configured fraction of oldest entries once the cap is exceeded.
*/
func TestStore_SweepEnforcesEntryCap(t *testing.T) {
	store := cache.New[string]("t1", time.Hour, 0, testLogger())

	for i := 0; i < 130; i++ {
		_, err := store.GetOrCompute(context.Background(), fmt.Sprintf("k%d", i), func(ctx context.Context) (string, error) {
			return "v", nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 130, store.Len())

	// 130 live entries over a cap of 100: evict ceil(130 * 0.20) = 26.
	assert.Equal(t, 26, store.Sweep())
	assert.Equal(t, 104, store.Len())
}

/*
TestStore_Purge verifies that Purge drops every entry.
*/
func TestStore_Purge(t *testing.T) {
	store := cache.New[string]("t1", time.Hour, 0, testLogger())

	for i := 0; i < 3; i++ {
		_, err := store.GetOrCompute(context.Background(), fmt.Sprintf("k%d", i), func(ctx context.Context) (string, error) {
			return "v", nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 3, store.Len())

	store.Purge()
	assert.Equal(t, 0, store.Len())
}
