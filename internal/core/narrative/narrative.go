// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package narrative manages the write path for narratives: ordered
// sequences of fragments with localized titles and descriptions.
package narrative

import (
	"time"

	"github.com/memora-app/memora/internal/core/localized"
)

// Narrative represents an ordered sequence of video fragments.
type Narrative struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	TotalDuration int              `json:"total_duration"`
	Titles        []localized.Text `json:"titles"`
	Descriptions  []localized.Text `json:"descriptions"`

	// FragmentIDs holds the fragment sequence in playback order.
	FragmentIDs []string `json:"fragment_ids"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
