// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package schema

// CoreNarrativeTable represents the 'core.narrative' table
type CoreNarrativeTable struct {
	Table         string
	ID            string
	Slug          string
	TotalDuration string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// CoreNarrative is the schema definition for core.narrative
var CoreNarrative = CoreNarrativeTable{
	Table:         "core.narrative",
	ID:            "id",
	Slug:          "slug",
	TotalDuration: "totalduration",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// NarrativeFragmentTable represents the 'core.narrativefragment' ordered join.
// Uniqueness: (narrative, sequence); a fragment may appear in many narratives.
type NarrativeFragmentTable struct {
	Table       string
	NarrativeID string
	FragmentID  string
	Sequence    string
}

// NarrativeFragment is the schema definition for core.narrativefragment
var NarrativeFragment = NarrativeFragmentTable{
	Table:       "core.narrativefragment",
	NarrativeID: "narrativeid",
	FragmentID:  "fragmentid",
	Sequence:    "sequence",
}

// NarrativeTitleTable represents the 'core.narrativetitle' localized-text table.
// Uniqueness: one title per (narrative, language).
type NarrativeTitleTable struct {
	Table       string
	NarrativeID string
	LanguageID  string
	Title       string
}

// NarrativeTitle is the schema definition for core.narrativetitle
var NarrativeTitle = NarrativeTitleTable{
	Table:       "core.narrativetitle",
	NarrativeID: "narrativeid",
	LanguageID:  "languageid",
	Title:       "title",
}

// NarrativeDescriptionTable represents the 'core.narrativedescription'
// localized-text table. Descriptions are multi-line.
// Uniqueness: one description per (narrative, language).
type NarrativeDescriptionTable struct {
	Table       string
	NarrativeID string
	LanguageID  string
	Description string
}

// NarrativeDescription is the schema definition for core.narrativedescription
var NarrativeDescription = NarrativeDescriptionTable{
	Table:       "core.narrativedescription",
	NarrativeID: "narrativeid",
	LanguageID:  "languageid",
	Description: "description",
}
