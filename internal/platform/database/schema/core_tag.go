// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package schema

// CoreTagTable represents the 'core.tag' table
type CoreTagTable struct {
	Table      string
	ID         string
	CategoryID string
}

// CoreTag is the schema definition for core.tag
var CoreTag = CoreTagTable{
	Table:      "core.tag",
	ID:         "id",
	CategoryID: "categoryid",
}

// TagNameTable represents the 'core.tagname' localized-text table.
// Uniqueness: one name per (tag, language).
type TagNameTable struct {
	Table      string
	TagID      string
	LanguageID string
	Name       string
}

// TagName is the schema definition for core.tagname
var TagName = TagNameTable{
	Table:      "core.tagname",
	TagID:      "tagid",
	LanguageID: "languageid",
	Name:       "name",
}

// TagCategoryTable represents the 'core.tagcategory' table
type TagCategoryTable struct {
	Table     string
	ID        string
	SortOrder string
}

// TagCategory is the schema definition for core.tagcategory
var TagCategory = TagCategoryTable{
	Table:     "core.tagcategory",
	ID:        "id",
	SortOrder: "sortorder",
}

// TagCategoryNameTable represents the 'core.tagcategoryname' localized-text table.
// Uniqueness: one name per (category, language).
type TagCategoryNameTable struct {
	Table      string
	CategoryID string
	LanguageID string
	Name       string
}

// TagCategoryName is the schema definition for core.tagcategoryname
var TagCategoryName = TagCategoryNameTable{
	Table:      "core.tagcategoryname",
	CategoryID: "categoryid",
	LanguageID: "languageid",
	Name:       "name",
}
