// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/internal/core/client"
	"github.com/memora-app/memora/internal/core/localized"
)

func pickFirst(texts []localized.Text) string {
	if len(texts) == 0 {
		return ""
	}
	return texts[0].Value
}

/*
TestCrossRef_OtherPathsExcludeEnclosing verifies that a fragment shared by
two narratives points at the other one, never at the narrative being
assembled.
*/
func TestCrossRef_OtherPathsExcludeEnclosing(t *testing.T) {
	store := newFakeStore()
	store.narrativeLinks = func(fragmentIDs []string) ([]client.NarrativeLink, error) {
		return []client.NarrativeLink{
			{FragmentID: "f1", NarrativeID: "n1"},
			{FragmentID: "f2", NarrativeID: "n1"},
			{FragmentID: "f2", NarrativeID: "n2"},
			{FragmentID: "f3", NarrativeID: "n2"},
		}, nil
	}
	store.narrativeTitles = func(narrativeIDs []string) (map[string][]localized.Text, error) {
		assert.ElementsMatch(t, []string{"n1", "n2"}, narrativeIDs)
		return map[string][]localized.Text{
			"n1": english("Alpha"),
			"n2": english("Beta"),
		}, nil
	}

	crossref := client.NewCrossRef(store, testLogger())

	set := crossref.Resolve(context.Background(), []string{"f1", "f2", "f3"}, pickFirst)

	assert.Empty(t, set.OtherPaths("f1", "n1"))
	assert.Equal(t, []client.PathRef{{NarrativeID: "n2", Title: "Beta"}}, set.OtherPaths("f2", "n1"))
	assert.Equal(t, []client.PathRef{{NarrativeID: "n1", Title: "Alpha"}}, set.OtherPaths("f2", "n2"))
	assert.Empty(t, set.OtherPaths("unknown", "n1"))
}

/*
TestCrossRef_EmptyInput verifies that no queries run for an empty page.
*/
func TestCrossRef_EmptyInput(t *testing.T) {
	store := newFakeStore()
	crossref := client.NewCrossRef(store, testLogger())

	set := crossref.Resolve(context.Background(), nil, pickFirst)

	assert.Empty(t, set.OtherPaths("f1", "n1"))
	assert.Equal(t, 0, store.callCount("NarrativeLinks"))
}

/*
TestCrossRef_LinkLoadFailureDegrades verifies that a failing membership
query yields an empty path set instead of an error, and skips the title
load entirely.
*/
func TestCrossRef_LinkLoadFailureDegrades(t *testing.T) {
	store := newFakeStore()
	store.narrativeLinks = func(fragmentIDs []string) ([]client.NarrativeLink, error) {
		return nil, fmt.Errorf("connection refused")
	}

	crossref := client.NewCrossRef(store, testLogger())

	set := crossref.Resolve(context.Background(), []string{"f1"}, pickFirst)

	assert.Empty(t, set.OtherPaths("f1", "n1"))
	assert.Equal(t, 0, store.callCount("NarrativeTitles"))
}

/*
TestCrossRef_TitleLoadFailureDegrades verifies that a failing title load
also degrades to an empty path set.
*/
func TestCrossRef_TitleLoadFailureDegrades(t *testing.T) {
	store := newFakeStore()
	store.narrativeLinks = func(fragmentIDs []string) ([]client.NarrativeLink, error) {
		return []client.NarrativeLink{{FragmentID: "f1", NarrativeID: "n2"}}, nil
	}
	store.narrativeTitles = func(narrativeIDs []string) (map[string][]localized.Text, error) {
		return nil, fmt.Errorf("connection refused")
	}

	crossref := client.NewCrossRef(store, testLogger())

	set := crossref.Resolve(context.Background(), []string{"f1"}, pickFirst)
	assert.Empty(t, set.OtherPaths("f1", "n1"))
}
