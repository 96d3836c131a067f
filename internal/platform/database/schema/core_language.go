// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package schema

// CoreLanguageTable represents the 'core.language' table
type CoreLanguageTable struct {
	Table string
	ID    string
	Code  string
	Name  string
}

// CoreLanguage is the schema definition for core.language.
// Codes are stored in canonical uppercase form.
var CoreLanguage = CoreLanguageTable{
	Table: "core.language",
	ID:    "id",
	Code:  "code",
	Name:  "name",
}
