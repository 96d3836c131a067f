// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-app/memora/internal/core/client"
	"github.com/memora-app/memora/pkg/pagination"
)

var firstPage = pagination.Params{Page: 1, Limit: 20}

/*
TestIDResolver_UnknownTagYieldsEmptyPage verifies that a filter naming a
tag nobody carries resolves to an empty page, not an error, and that the
primary query is never issued. An unknown name is not cached, so a later
request checks again.
*/
func TestIDResolver_UnknownTagYieldsEmptyPage(t *testing.T) {
	store := newFakeStore()
	store.tagIDByName = func(name string) (int, bool, error) {
		return 0, false, nil
	}

	resolver := client.NewIDResolver(store, testLogger())

	for i := 0; i < 2; i++ {
		page, err := resolver.FragmentIDs(context.Background(), "ghost", firstPage)
		require.NoError(t, err)
		assert.Empty(t, page.IDs)
		assert.Zero(t, page.Total)
	}

	assert.Equal(t, 0, store.callCount("FragmentPage"))
	assert.Equal(t, 2, store.callCount("TagIDByName"), "unknown names must not be cached")
}

/*
TestIDResolver_TagLookupFailureDegrades verifies that a failing tag lookup
is treated as unresolvable rather than an error, and is retried on the
next request instead of being cached.
*/
func TestIDResolver_TagLookupFailureDegrades(t *testing.T) {
	store := newFakeStore()
	store.tagIDByName = func(name string) (int, bool, error) {
		return 0, false, fmt.Errorf("connection refused")
	}

	resolver := client.NewIDResolver(store, testLogger())

	for i := 0; i < 2; i++ {
		page, err := resolver.FragmentIDs(context.Background(), "sea", firstPage)
		require.NoError(t, err)
		assert.Empty(t, page.IDs)
	}

	assert.Equal(t, 2, store.callCount("TagIDByName"))
}

/*
TestIDResolver_ResolvedTagIsCached verifies that a successful tag lookup
is a daily singleton: the second request does not touch the store.
*/
func TestIDResolver_ResolvedTagIsCached(t *testing.T) {
	store := newFakeStore()
	store.tagIDByName = func(name string) (int, bool, error) {
		return 7, true, nil
	}
	store.fragmentPage = func(tagID *int, offset, limit int) ([]string, int, error) {
		require.NotNil(t, tagID)
		assert.Equal(t, 7, *tagID)
		return []string{"f1"}, 1, nil
	}

	resolver := client.NewIDResolver(store, testLogger())

	for i := 0; i < 2; i++ {
		page, err := resolver.FragmentIDs(context.Background(), "sea", firstPage)
		require.NoError(t, err)
		assert.Equal(t, []string{"f1"}, page.IDs)
	}

	assert.Equal(t, 1, store.callCount("TagIDByName"))
}

/*
TestIDResolver_RetriesFailedPageQuery verifies the single retry of the
primary identifier query.
*/
func TestIDResolver_RetriesFailedPageQuery(t *testing.T) {
	store := newFakeStore()
	attempts := 0
	store.fragmentPage = func(tagID *int, offset, limit int) ([]string, int, error) {
		attempts++
		if attempts == 1 {
			return nil, 0, fmt.Errorf("deadline exceeded")
		}
		return []string{"f1", "f2"}, 2, nil
	}

	resolver := client.NewIDResolver(store, testLogger())

	page, err := resolver.FragmentIDs(context.Background(), "", firstPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, page.IDs)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, store.callCount("FragmentPage"))
}

/*
TestIDResolver_SecondFailureIsFatal verifies that a query failing twice
surfaces a hard error: without identifiers there is nothing to assemble.
*/
func TestIDResolver_SecondFailureIsFatal(t *testing.T) {
	store := newFakeStore()
	store.narrativePage = func(offset, limit int) ([]string, int, error) {
		return nil, 0, fmt.Errorf("deadline exceeded")
	}

	resolver := client.NewIDResolver(store, testLogger())

	_, err := resolver.NarrativeIDs(context.Background(), firstPage)
	require.Error(t, err)
	assert.Equal(t, 2, store.callCount("NarrativePage"))
}

/*
TestIDResolver_TruncatesOversizedPages verifies the hard cap on an
identifier batch. The total is reported untouched.
*/
func TestIDResolver_TruncatesOversizedPages(t *testing.T) {
	store := newFakeStore()
	store.fragmentPage = func(tagID *int, offset, limit int) ([]string, int, error) {
		ids := make([]string, 600)
		for i := range ids {
			ids[i] = fmt.Sprintf("f%03d", i)
		}
		return ids, 600, nil
	}

	resolver := client.NewIDResolver(store, testLogger())

	page, err := resolver.FragmentIDs(context.Background(), "", pagination.Params{Page: 1, Limit: 600})
	require.NoError(t, err)
	assert.Len(t, page.IDs, 500)
	assert.Equal(t, 600, page.Total)
}

/*
TestIDResolver_CachesResolvedPages verifies that identical (filter, page,
limit) requests share one cached identifier page.
*/
func TestIDResolver_CachesResolvedPages(t *testing.T) {
	store := newFakeStore()
	store.fragmentPage = func(tagID *int, offset, limit int) ([]string, int, error) {
		return []string{"f1"}, 1, nil
	}

	resolver := client.NewIDResolver(store, testLogger())

	for i := 0; i < 3; i++ {
		_, err := resolver.FragmentIDs(context.Background(), "", firstPage)
		require.NoError(t, err)
	}

	// A different page is its own entry.
	_, err := resolver.FragmentIDs(context.Background(), "", pagination.Params{Page: 2, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, 2, store.callCount("FragmentPage"))
}
