// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package narrative

import "context"

type Repository interface {
	GetNarrativeByID(context context.Context, id string) (*Narrative, error)
	CreateNarrative(context context.Context, narrative *Narrative) error
	UpdateNarrativeSlug(context context.Context, id, slug string) error
	SoftDeleteNarrative(context context.Context, id string) error
	SetNarrativeTitle(context context.Context, narrativeID string, languageID int, title string) error
	SetNarrativeDescription(context context.Context, narrativeID string, languageID int, description string) error
	SetNarrativeFragments(context context.Context, narrativeID string, fragmentIDs []string) error
}
