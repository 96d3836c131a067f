// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package schema

// CorePersonTable represents the 'core.person' table
type CorePersonTable struct {
	Table     string
	ID        string
	Name      string
	CountryID string
	CreatedAt string
}

// CorePerson is the schema definition for core.person
var CorePerson = CorePersonTable{
	Table:     "core.person",
	ID:        "id",
	Name:      "name",
	CountryID: "countryid",
	CreatedAt: "createdat",
}

// PersonBioTable represents the 'core.personbio' localized-text table.
// Uniqueness: one bio per (person, language).
type PersonBioTable struct {
	Table      string
	PersonID   string
	LanguageID string
	Bio        string
}

// PersonBio is the schema definition for core.personbio
var PersonBio = PersonBioTable{
	Table:      "core.personbio",
	PersonID:   "personid",
	LanguageID: "languageid",
	Bio:        "bio",
}
