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
)

/*
TestBatcher_EnrichMergesRelations verifies that person and tag relations
are joined onto the base records in input order.
*/
func TestBatcher_EnrichMergesRelations(t *testing.T) {
	store := newFakeStore()
	store.personsForFragments = func(fragmentIDs []string) (map[string]*client.PersonRecord, error) {
		return map[string]*client.PersonRecord{
			"f1": {ID: "p1", Name: "Marta Kovac"},
		}, nil
	}
	store.tagsForFragments = func(fragmentIDs []string) (map[string][]client.TagRecord, error) {
		return map[string][]client.TagRecord{
			"f1": {{ID: 5, CategoryID: 2, Names: english("sea")}},
			"f2": {{ID: 6, CategoryID: 2, Names: english("dawn")}},
		}, nil
	}

	batcher := client.NewBatcher(store, testLogger())

	records := []*client.FragmentRecord{
		{ID: "f1", Title: "Harbour at Dawn"},
		{ID: "f2", Title: "Open Water"},
	}

	enriched := batcher.Enrich(context.Background(), records)
	require.Len(t, enriched, 2)

	assert.Equal(t, "f1", enriched[0].ID)
	require.NotNil(t, enriched[0].Person)
	assert.Equal(t, "Marta Kovac", enriched[0].Person.Name)
	assert.Len(t, enriched[0].Tags, 1)

	assert.Equal(t, "f2", enriched[1].ID)
	assert.Nil(t, enriched[1].Person)
	assert.Len(t, enriched[1].Tags, 1)
}

/*
TestBatcher_FailedBatchKeepsBaseFields verifies degradation: when a
relation load fails the fragments of that batch are still returned, with
base fields only.
*/
func TestBatcher_FailedBatchKeepsBaseFields(t *testing.T) {
	store := newFakeStore()
	store.personsForFragments = func(fragmentIDs []string) (map[string]*client.PersonRecord, error) {
		return nil, fmt.Errorf("connection refused")
	}

	batcher := client.NewBatcher(store, testLogger())

	records := []*client.FragmentRecord{
		{ID: "f1", Title: "Harbour at Dawn"},
		{ID: "f2", Title: "Open Water"},
	}

	enriched := batcher.Enrich(context.Background(), records)
	require.Len(t, enriched, 2)

	for i, e := range enriched {
		assert.Equal(t, records[i].ID, e.ID)
		assert.Equal(t, records[i].Title, e.Title)
		assert.Nil(t, e.Person)
		assert.Nil(t, e.Tags)
	}
}

/*
TestBatcher_ChunksAndIsolatesFailures verifies that a large page is
processed in bounded batches and that one failing batch does not affect
the others.
*/
func TestBatcher_ChunksAndIsolatesFailures(t *testing.T) {
	records := make([]*client.FragmentRecord, 120)
	for i := range records {
		records[i] = &client.FragmentRecord{ID: fmt.Sprintf("f%03d", i)}
	}

	store := newFakeStore()
	personBatches := 0
	store.personsForFragments = func(fragmentIDs []string) (map[string]*client.PersonRecord, error) {
		personBatches++
		assert.LessOrEqual(t, len(fragmentIDs), 50)
		if personBatches == 2 {
			return nil, fmt.Errorf("connection refused")
		}
		persons := make(map[string]*client.PersonRecord, len(fragmentIDs))
		for _, id := range fragmentIDs {
			persons[id] = &client.PersonRecord{ID: "p-" + id}
		}
		return persons, nil
	}

	batcher := client.NewBatcher(store, testLogger())

	enriched := batcher.Enrich(context.Background(), records)
	require.Len(t, enriched, 120)

	// 120 records in batches of 50: three person-side loads.
	assert.Equal(t, 3, store.callCount("PersonsForFragments"))
	assert.Equal(t, 3, store.callCount("TagsForFragments"))

	// The failed middle batch carries base fields only.
	assert.NotNil(t, enriched[0].Person)
	assert.Nil(t, enriched[50].Person)
	assert.Nil(t, enriched[99].Person)
	assert.NotNil(t, enriched[100].Person)
}
