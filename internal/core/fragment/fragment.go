// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package fragment manages the write path for video fragments: the clips
// that narratives are assembled from.
package fragment

import "time"

// Fragment represents a single video clip.
type Fragment struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Duration     int        `json:"duration"`
	PlayerURL    string     `json:"player_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	PersonID     *string    `json:"person_id,omitempty"`
	TagIDs       []int      `json:"tag_ids"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}
