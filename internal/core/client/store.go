// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"

	"github.com/memora-app/memora/internal/core/localized"
)

// NarrativeLink is one (fragment, narrative) membership row.
type NarrativeLink struct {
	FragmentID  string
	NarrativeID string
}

// ReadStore is the data access contract for the read path. All multi-id
// loads take bounded id slices; batching is the caller's concern.
type ReadStore interface {
	// FragmentPage returns one page of visible fragment ids ordered by
	// lower-cased title, plus the total match count. A nil tagID means no
	// tag filter.
	FragmentPage(context context.Context, tagID *int, offset, limit int) ([]string, int, error)

	// NarrativePage returns one page of visible narrative ids ordered by
	// slug, plus the total count.
	NarrativePage(context context.Context, offset, limit int) ([]string, int, error)

	// TagIDByName resolves a tag by any of its localized names. The bool
	// is false when no tag carries the name.
	TagIDByName(context context.Context, name string) (int, bool, error)

	// FragmentsByIDs loads base fragment rows preserving input order.
	FragmentsByIDs(context context.Context, ids []string) ([]*FragmentRecord, error)

	// PersonsForFragments loads each fragment's person with bios and
	// country names, keyed by fragment id.
	PersonsForFragments(context context.Context, fragmentIDs []string) (map[string]*PersonRecord, error)

	// TagsForFragments loads each fragment's tags with names, keyed by
	// fragment id.
	TagsForFragments(context context.Context, fragmentIDs []string) (map[string][]TagRecord, error)

	// NarrativesByIDs loads narratives with text variants and ordered
	// fragment sequences, preserving input order.
	NarrativesByIDs(context context.Context, ids []string) ([]*NarrativeRecord, error)

	// NarrativeLinks returns every (fragment, narrative) membership for
	// the given fragments, soft-deleted narratives excluded.
	NarrativeLinks(context context.Context, fragmentIDs []string) ([]NarrativeLink, error)

	// NarrativeTitles loads all title variants for the given narratives.
	NarrativeTitles(context context.Context, narrativeIDs []string) (map[string][]localized.Text, error)

	// TagCategories loads all categories with name variants and child
	// tags, ordered by sort order.
	TagCategories(context context.Context) ([]*TagCategoryRecord, error)
}
