// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memora-app/memora/internal/core/client"
	"github.com/memora-app/memora/internal/core/localized"
)

/*
TestAssembler_Picker_FallbackChain walks every branch of the localized
field selection: requested id, requested code, English id, English code,
first available, empty.
*/
func TestAssembler_Picker_FallbackChain(t *testing.T) {
	full := []localized.Text{
		{LanguageID: 1, LanguageCode: "EN", Value: "hello"},
		{LanguageID: 2, LanguageCode: "FR", Value: "bonjour"},
	}

	tests := []struct {
		name      string
		languages fakeLanguages
		langCode  string
		texts     []localized.Text
		want      string
	}{
		{
			name:      "requested_language_by_id",
			languages: fakeLanguages{"EN": 1, "FR": 2},
			langCode:  "fr",
			texts:     full,
			want:      "bonjour",
		},
		{
			name:      "requested_language_by_code",
			languages: fakeLanguages{"EN": 1},
			langCode:  "es",
			texts: []localized.Text{
				{LanguageID: 9, LanguageCode: "ES", Value: "hola"},
			},
			want: "hola",
		},
		{
			name:      "fallback_english_by_id",
			languages: fakeLanguages{"EN": 1, "FR": 2},
			langCode:  "JP",
			texts:     full,
			want:      "hello",
		},
		{
			name:      "fallback_english_by_code",
			languages: fakeLanguages{},
			langCode:  "JP",
			texts:     full,
			want:      "hello",
		},
		{
			name:      "first_available_variant",
			languages: fakeLanguages{},
			langCode:  "JP",
			texts: []localized.Text{
				{LanguageID: 2, LanguageCode: "FR", Value: "bonjour"},
				{LanguageID: 3, LanguageCode: "DE", Value: "hallo"},
			},
			want: "bonjour",
		},
		{
			name:      "no_variants",
			languages: fakeLanguages{"EN": 1},
			langCode:  "EN",
			texts:     []localized.Text{},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assembler := client.NewAssembler(tt.languages)
			pick := assembler.Picker(context.Background(), tt.langCode)
			assert.Equal(t, tt.want, pick(tt.texts))
		})
	}
}

/*
TestAssembler_AssembleFragment verifies that person, country and tag
relations are localized into the fragment view.
*/
func TestAssembler_AssembleFragment(t *testing.T) {
	assembler := client.NewAssembler(fakeLanguages{"EN": 1, "FR": 2})
	pick := assembler.Picker(context.Background(), "FR")

	personID := "p1"
	enriched := client.EnrichedFragment{
		FragmentRecord: client.FragmentRecord{
			ID:        "f1",
			Title:     "Harbour at Dawn",
			Duration:  184,
			PlayerURL: "https://cdn.memora.app/f1",
			PersonID:  &personID,
		},
		Person: &client.PersonRecord{
			ID:   "p1",
			Name: "Marta Kovac",
			Bios: []localized.Text{
				{LanguageID: 1, LanguageCode: "EN", Value: "A sailor."},
				{LanguageID: 2, LanguageCode: "FR", Value: "Une marine."},
			},
			Country: &client.CountryRecord{
				ID:   44,
				Code: "HR",
				Names: []localized.Text{
					{LanguageID: 1, LanguageCode: "EN", Value: "Croatia"},
					{LanguageID: 2, LanguageCode: "FR", Value: "Croatie"},
				},
			},
		},
		Tags: []client.TagRecord{
			{ID: 5, CategoryID: 2, Names: []localized.Text{
				{LanguageID: 2, LanguageCode: "FR", Value: "mer"},
			}},
		},
	}

	view := assembler.AssembleFragment(enriched, pick)

	assert.Equal(t, "f1", view.ID)
	assert.Equal(t, "Harbour at Dawn", view.Title)
	assert.Equal(t, 184, view.Duration)

	if assert.NotNil(t, view.Person) {
		assert.Equal(t, "Une marine.", view.Person.Bio)
		if assert.NotNil(t, view.Person.Country) {
			assert.Equal(t, "Croatie", view.Person.Country.Name)
		}
	}

	if assert.Len(t, view.Tags, 1) {
		assert.Equal(t, "mer", view.Tags[0].Name)
	}
}

/*
TestAssembler_AssembleFragment_BaseOnly verifies that a fragment from a
failed enrichment batch still assembles from its base fields.
*/
func TestAssembler_AssembleFragment_BaseOnly(t *testing.T) {
	assembler := client.NewAssembler(fakeLanguages{"EN": 1})
	pick := assembler.Picker(context.Background(), "EN")

	view := assembler.AssembleFragment(client.EnrichedFragment{
		FragmentRecord: client.FragmentRecord{ID: "f1", Title: "Untethered"},
	}, pick)

	assert.Nil(t, view.Person)
	assert.Empty(t, view.Tags)
	assert.Equal(t, "Untethered", view.Title)
}

/*
TestSortFragments verifies case-insensitive, stable title ordering.
*/
func TestSortFragments(t *testing.T) {
	views := []client.FragmentView{
		{ID: "f1", Title: "Cherry"},
		{ID: "f2", Title: "apple"},
		{ID: "f3", Title: "Banana"},
		{ID: "f4", Title: "APPLE"},
	}

	client.SortFragments(views)

	titles := []string{views[0].Title, views[1].Title, views[2].Title, views[3].Title}
	assert.Equal(t, []string{"apple", "APPLE", "Banana", "Cherry"}, titles)
}

/*
TestSortNarratives verifies case-insensitive localized title ordering.
*/
func TestSortNarratives(t *testing.T) {
	views := []client.NarrativeView{
		{ID: "n1", Title: "voices"},
		{ID: "n2", Title: "Anchors"},
	}

	client.SortNarratives(views)

	assert.Equal(t, "Anchors", views[0].Title)
	assert.Equal(t, "voices", views[1].Title)
}
