// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/memora-app/memora/internal/core/client"
	"github.com/memora-app/memora/internal/core/localized"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeLanguages resolves codes from a fixed map, case-insensitively.
type fakeLanguages map[string]int

func (f fakeLanguages) Resolve(_ context.Context, code string) (int, bool) {
	id, ok := f[strings.ToUpper(strings.TrimSpace(code))]
	return id, ok
}

// fakeStore is an in-memory ReadStore built from function fields. Every
// method counts its invocations; a nil field returns empty data.
type fakeStore struct {
	mu    sync.Mutex
	calls map[string]int

	fragmentPage        func(tagID *int, offset, limit int) ([]string, int, error)
	narrativePage       func(offset, limit int) ([]string, int, error)
	tagIDByName         func(name string) (int, bool, error)
	fragmentsByIDs      func(ids []string) ([]*client.FragmentRecord, error)
	personsForFragments func(fragmentIDs []string) (map[string]*client.PersonRecord, error)
	tagsForFragments    func(fragmentIDs []string) (map[string][]client.TagRecord, error)
	narrativesByIDs     func(ids []string) ([]*client.NarrativeRecord, error)
	narrativeLinks      func(fragmentIDs []string) ([]client.NarrativeLink, error)
	narrativeTitles     func(narrativeIDs []string) (map[string][]localized.Text, error)
	tagCategories       func() ([]*client.TagCategoryRecord, error)
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: make(map[string]int)}
}

func (store *fakeStore) count(method string) {
	store.mu.Lock()
	store.calls[method]++
	store.mu.Unlock()
}

func (store *fakeStore) callCount(method string) int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.calls[method]
}

func (store *fakeStore) FragmentPage(_ context.Context, tagID *int, offset, limit int) ([]string, int, error) {
	store.count("FragmentPage")
	if store.fragmentPage == nil {
		return []string{}, 0, nil
	}
	return store.fragmentPage(tagID, offset, limit)
}

func (store *fakeStore) NarrativePage(_ context.Context, offset, limit int) ([]string, int, error) {
	store.count("NarrativePage")
	if store.narrativePage == nil {
		return []string{}, 0, nil
	}
	return store.narrativePage(offset, limit)
}

func (store *fakeStore) TagIDByName(_ context.Context, name string) (int, bool, error) {
	store.count("TagIDByName")
	if store.tagIDByName == nil {
		return 0, false, nil
	}
	return store.tagIDByName(name)
}

func (store *fakeStore) FragmentsByIDs(_ context.Context, ids []string) ([]*client.FragmentRecord, error) {
	store.count("FragmentsByIDs")
	if store.fragmentsByIDs == nil {
		return []*client.FragmentRecord{}, nil
	}
	return store.fragmentsByIDs(ids)
}

func (store *fakeStore) PersonsForFragments(_ context.Context, fragmentIDs []string) (map[string]*client.PersonRecord, error) {
	store.count("PersonsForFragments")
	if store.personsForFragments == nil {
		return map[string]*client.PersonRecord{}, nil
	}
	return store.personsForFragments(fragmentIDs)
}

func (store *fakeStore) TagsForFragments(_ context.Context, fragmentIDs []string) (map[string][]client.TagRecord, error) {
	store.count("TagsForFragments")
	if store.tagsForFragments == nil {
		return map[string][]client.TagRecord{}, nil
	}
	return store.tagsForFragments(fragmentIDs)
}

func (store *fakeStore) NarrativesByIDs(_ context.Context, ids []string) ([]*client.NarrativeRecord, error) {
	store.count("NarrativesByIDs")
	if store.narrativesByIDs == nil {
		return []*client.NarrativeRecord{}, nil
	}
	return store.narrativesByIDs(ids)
}

func (store *fakeStore) NarrativeLinks(_ context.Context, fragmentIDs []string) ([]client.NarrativeLink, error) {
	store.count("NarrativeLinks")
	if store.narrativeLinks == nil {
		return []client.NarrativeLink{}, nil
	}
	return store.narrativeLinks(fragmentIDs)
}

func (store *fakeStore) NarrativeTitles(_ context.Context, narrativeIDs []string) (map[string][]localized.Text, error) {
	store.count("NarrativeTitles")
	if store.narrativeTitles == nil {
		return map[string][]localized.Text{}, nil
	}
	return store.narrativeTitles(narrativeIDs)
}

func (store *fakeStore) TagCategories(_ context.Context) ([]*client.TagCategoryRecord, error) {
	store.count("TagCategories")
	if store.tagCategories == nil {
		return []*client.TagCategoryRecord{}, nil
	}
	return store.tagCategories()
}

// english is a convenience for a single-variant English text slice.
func english(value string) []localized.Text {
	return []localized.Text{{LanguageID: 1, LanguageCode: "EN", Value: value}}
}
