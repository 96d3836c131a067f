// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package tag

import "github.com/memora-app/memora/internal/core/localized"

// Category provides a logical grouping for tags to prevent flat list overload.
type Category struct {
	ID        int              `json:"id"`
	SortOrder int              `json:"sort_order"`
	Names     []localized.Text `json:"names"`

	// Tags contains the child tags for this category, populated in hierarchical queries.
	Tags []Tag `json:"tags,omitempty"`
}

// Tag represents a categorization attribute applied to a fragment.
type Tag struct {
	ID         int              `json:"id"`
	CategoryID int              `json:"category_id"`
	Names      []localized.Text `json:"names"`
}
