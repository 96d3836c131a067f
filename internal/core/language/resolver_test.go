// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/internal/core/language"
)

type fakeRepository struct {
	listCalls int
	languages []*language.Language
	listErr   error
}

func (repo *fakeRepository) ListLanguages(_ context.Context) ([]*language.Language, error) {
	repo.listCalls++
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	return repo.languages, nil
}

func (repo *fakeRepository) GetLanguageByCode(_ context.Context, code string) (*language.Language, error) {
	return nil, fmt.Errorf("not implemented")
}

func (repo *fakeRepository) CreateLanguage(_ context.Context, lang *language.Language) error {
	return fmt.Errorf("not implemented")
}

func (repo *fakeRepository) UpdateLanguage(_ context.Context, lang *language.Language) error {
	return fmt.Errorf("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestResolver_Resolve verifies code normalization and that the full map is
loaded exactly once for any number of lookups.
*/
func TestResolver_Resolve(t *testing.T) {
	repo := &fakeRepository{
		languages: []*language.Language{
			{ID: 1, Code: "EN", Name: "English"},
			{ID: 2, Code: "fr", Name: "French"},
		},
	}
	resolver := language.NewResolver(repo, testLogger())

	tests := []struct {
		name   string
		code   string
		wantID int
		wantOK bool
	}{
		{"exact_match", "EN", 1, true},
		{"lowercase_input", "en", 1, true},
		{"lowercase_stored", " FR ", 2, true},
		{"unknown_code", "JP", 0, false},
		{"empty_code", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := resolver.Resolve(context.Background(), tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	assert.Equal(t, 1, repo.listCalls, "the code map is a cached singleton")
}

/*
TestResolver_LoadFailureIsMiss verifies that an unavailable language map
degrades every lookup to a miss without caching the failure.
*/
func TestResolver_LoadFailureIsMiss(t *testing.T) {
	repo := &fakeRepository{listErr: fmt.Errorf("connection refused")}
	resolver := language.NewResolver(repo, testLogger())

	for i := 0; i < 2; i++ {
		id, ok := resolver.Resolve(context.Background(), "EN")
		assert.False(t, ok)
		assert.Zero(t, id)
	}

	assert.Equal(t, 2, repo.listCalls, "a failed load must not be cached")
}

/*
TestResolver_RecoversAfterFailure verifies that the map loads normally
once the store is reachable again.
*/
func TestResolver_RecoversAfterFailure(t *testing.T) {
	repo := &fakeRepository{listErr: fmt.Errorf("connection refused")}
	resolver := language.NewResolver(repo, testLogger())

	_, ok := resolver.Resolve(context.Background(), "EN")
	assert.False(t, ok)

	repo.listErr = nil
	repo.languages = []*language.Language{{ID: 1, Code: "EN", Name: "English"}}

	id, ok := resolver.Resolve(context.Background(), "EN")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}
