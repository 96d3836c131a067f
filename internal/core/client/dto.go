// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

/*
Package client implements the public read path: localized, paginated,
fully assembled views of fragments, narratives and tag categories.

# Pipeline

Every list request flows through four stages:

 1. ID resolution: the page of matching identifiers plus the total count.
 2. Relation batching: base records enriched with person, country and tag
    relations in bounded batches.
 3. Cross-referencing: for narratives, the other narratives each fragment
    appears in.
 4. Assembly: localized field selection with language fallback and final
    ordering.

Assembled responses are cached by the service; a partial enrichment
failure degrades the response instead of failing it.
*/
package client

import "github.com/memora-app/memora/internal/core/localized"

// # Assembled Views (API output)

// CountryView is a localized country reference.
type CountryView struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PersonView is a localized person with optional country.
type PersonView struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Bio     string       `json:"bio"`
	Country *CountryView `json:"country,omitempty"`
}

// TagView is a localized tag.
type TagView struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

// FragmentView is a fully assembled fragment.
type FragmentView struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Duration     int         `json:"duration"`
	PlayerURL    string      `json:"player_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Person       *PersonView `json:"person,omitempty"`
	Tags         []TagView   `json:"tags"`
}

// PathRef points at another narrative a fragment appears in.
type PathRef struct {
	NarrativeID string `json:"narrative_id"`
	Title       string `json:"title"`
}

// NarrativeFragmentView is a fragment in its position within a narrative.
type NarrativeFragmentView struct {
	FragmentView

	Sequence int `json:"sequence"`

	// OtherPaths lists the other narratives this fragment appears in.
	// The enclosing narrative is never present.
	OtherPaths []PathRef `json:"other_paths"`
}

// NarrativeView is a fully assembled narrative.
type NarrativeView struct {
	ID            string                  `json:"id"`
	Slug          string                  `json:"slug"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	TotalDuration int                     `json:"total_duration"`
	Fragments     []NarrativeFragmentView `json:"fragments"`
}

// TagCategoryView is a localized tag category with its tags.
type TagCategoryView struct {
	ID        int       `json:"id"`
	SortOrder int       `json:"sort_order"`
	Name      string    `json:"name"`
	Tags      []TagView `json:"tags"`
}

// # Store Records (pipeline input)

// FragmentRecord is a base fragment row before enrichment.
type FragmentRecord struct {
	ID           string
	Title        string
	Duration     int
	PlayerURL    string
	ThumbnailURL string
	PersonID     *string
}

// CountryRecord carries a country with all its name variants.
type CountryRecord struct {
	ID    int
	Code  string
	Names []localized.Text
}

// PersonRecord carries a person with all bio variants and optional country.
type PersonRecord struct {
	ID      string
	Name    string
	Bios    []localized.Text
	Country *CountryRecord
}

// TagRecord carries a tag with all its name variants.
type TagRecord struct {
	ID         int
	CategoryID int
	Names      []localized.Text
}

// NarrativeRecord carries a narrative with all text variants and the
// ordered fragment sequence.
type NarrativeRecord struct {
	ID            string
	Slug          string
	TotalDuration int
	Titles        []localized.Text
	Descriptions  []localized.Text
	FragmentIDs   []string
}

// TagCategoryRecord carries a category with name variants and child tags.
type TagCategoryRecord struct {
	ID        int
	SortOrder int
	Names     []localized.Text
	Tags      []TagRecord
}

// EnrichedFragment is a fragment record with its loaded relations. A
// fragment from a failed enrichment batch carries nil relations.
type EnrichedFragment struct {
	FragmentRecord

	Person *PersonRecord
	Tags   []TagRecord
}
