// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package schema centralizes physical table and column names.
//
// Query builders reference these constants instead of string literals so a
// rename touches exactly one place.
package schema

// CoreFragmentTable represents the 'core.fragment' table
type CoreFragmentTable struct {
	Table        string
	ID           string
	Title        string
	Duration     string
	PlayerURL    string
	ThumbnailURL string
	PersonID     string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// CoreFragment is the schema definition for core.fragment
var CoreFragment = CoreFragmentTable{
	Table:        "core.fragment",
	ID:           "id",
	Title:        "title",
	Duration:     "duration",
	PlayerURL:    "playerurl",
	ThumbnailURL: "thumbnailurl",
	PersonID:     "personid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

// FragmentTagTable represents the 'core.fragmenttag' junction table
type FragmentTagTable struct {
	Table      string
	FragmentID string
	TagID      string
}

// FragmentTag is the schema definition for core.fragmenttag
var FragmentTag = FragmentTagTable{
	Table:      "core.fragmenttag",
	FragmentID: "fragmentid",
	TagID:      "tagid",
}
