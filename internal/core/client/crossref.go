// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/core/localized"
)

/*
CrossRef resolves, for each fragment, the narratives that fragment
appears in, so a narrative view can point at the other paths through
shared fragments.

Membership rows and the linked narratives' titles are loaded once per
request and grouped in memory, so the cost is two queries regardless of
fragment or narrative count. Excluding the enclosing narrative happens at
assembly time via [PathSet.OtherPaths].
*/
type CrossRef struct {
	store  ReadStore
	logger *slog.Logger
}

func NewCrossRef(store ReadStore, logger *slog.Logger) *CrossRef {
	return &CrossRef{store: store, logger: logger}
}

// PathSet holds every fragment→narrative membership of one request.
type PathSet struct {
	byFragment map[string][]PathRef
}

// OtherPaths returns the narratives a fragment appears in, excluding the
// enclosing one. The excluded narrative is never present in the result.
func (set PathSet) OtherPaths(fragmentID, exclude string) []PathRef {
	refs := set.byFragment[fragmentID]
	others := make([]PathRef, 0, len(refs))
	for _, ref := range refs {
		if ref.NarrativeID != exclude {
			others = append(others, ref)
		}
	}
	return others
}

/*
Resolve loads the membership map for a set of fragments.

Parameters:
  - ctx: request context
  - fragmentIDs: fragments to cross-reference
  - pick: localized title selector for the linked narratives

Returns:
  - PathSet: per-fragment narrative memberships with localized titles;
    empty on load failure (degraded, never an error)
*/
func (crossref *CrossRef) Resolve(ctx context.Context, fragmentIDs []string, pick func([]localized.Text) string) PathSet {
	set := PathSet{byFragment: make(map[string][]PathRef, len(fragmentIDs))}
	if len(fragmentIDs) == 0 {
		return set
	}

	links, err := crossref.store.NarrativeLinks(ctx, fragmentIDs)
	if err != nil {
		crossref.logger.Warn("crossref_links_failed", "error", err)
		return set
	}

	linkedIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, link := range links {
		if !seen[link.NarrativeID] {
			seen[link.NarrativeID] = true
			linkedIDs = append(linkedIDs, link.NarrativeID)
		}
	}
	if len(linkedIDs) == 0 {
		return set
	}

	titles, err := crossref.store.NarrativeTitles(ctx, linkedIDs)
	if err != nil {
		crossref.logger.Warn("crossref_titles_failed", "error", err)
		return set
	}

	for _, link := range links {
		set.byFragment[link.FragmentID] = append(set.byFragment[link.FragmentID], PathRef{
			NarrativeID: link.NarrativeID,
			Title:       pick(titles[link.NarrativeID]),
		})
	}

	return set
}
