// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package schema

// CoreCountryTable represents the 'core.country' table
type CoreCountryTable struct {
	Table string
	ID    string
	Code  string
}

// CoreCountry is the schema definition for core.country
var CoreCountry = CoreCountryTable{
	Table: "core.country",
	ID:    "id",
	Code:  "code",
}

// CountryNameTable represents the 'core.countryname' localized-text table.
// Uniqueness: one name per (country, language).
type CountryNameTable struct {
	Table      string
	CountryID  string
	LanguageID string
	Name       string
}

// CountryName is the schema definition for core.countryname
var CountryName = CountryNameTable{
	Table:      "core.countryname",
	CountryID:  "countryid",
	LanguageID: "languageid",
	Name:       "name",
}
