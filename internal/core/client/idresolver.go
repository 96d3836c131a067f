// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/cache"
	"github.com/memora-app/memora/internal/platform/constants"
	"github.com/memora-app/memora/pkg/pagination"
	"github.com/memora-app/memora/pkg/slice"
)

// IDPage is one resolved page of identifiers plus the total match count.
type IDPage struct {
	IDs   []string
	Total int
}

/*
IDResolver turns a (filter, page, limit) triple into the page of matching
identifiers.

# Caching

Two caches back the resolver. Named-tag filter lookups are singletons
valid for a day; resolved id pages are keyed by filter, page and limit
and valid for three hours. Both are bounded and swept by the server
lifecycle.

# Degradation

An unresolvable tag filter yields an empty page, not an error: a view
filtered on a name nobody has ever tagged is legitimately empty. A
failing primary query is retried once; the second failure is a hard
error because without identifiers there is nothing to assemble.
*/
type IDResolver struct {
	store  ReadStore
	filter *cache.Store[int]
	pages  *cache.Store[IDPage]
	logger *slog.Logger
}

func NewIDResolver(store ReadStore, logger *slog.Logger) *IDResolver {
	return &IDResolver{
		store:  store,
		filter: cache.New[int](cache.EpochFilter, constants.FilterSingletonTTL, 0, logger),
		pages:  cache.New[IDPage](cache.EpochIDList, constants.IDListFreshTTL, 0, logger),
		logger: logger,
	}
}

// Sweepers exposes the backing caches for the server's sweep lifecycle.
func (resolver *IDResolver) Sweepers() (*cache.Store[int], *cache.Store[IDPage]) {
	return resolver.filter, resolver.pages
}

/*
FragmentIDs resolves one page of fragment ids, optionally filtered by a
tag name.

Parameters:
  - ctx: request context
  - tagName: localized tag name to filter on; empty means no filter
  - params: requested page and limit

Returns:
  - IDPage: matching ids (capped at the batch bound) and total count
  - error: only when the id query failed twice
*/
func (resolver *IDResolver) FragmentIDs(ctx context.Context, tagName string, params pagination.Params) (IDPage, error) {
	var tagID *int
	if tagName != "" {
		id, ok := resolver.resolveTag(ctx, tagName)
		if !ok {
			return IDPage{IDs: []string{}, Total: 0}, nil
		}
		tagID = &id
	}

	key := fmt.Sprintf("fragments|tag=%s|p=%d|l=%d", tagName, params.Page, params.Limit)
	return resolver.pages.GetOrCompute(ctx, key, func(ctx context.Context) (IDPage, error) {
		ids, total, err := resolver.store.FragmentPage(ctx, tagID, params.Offset(), params.Limit)
		if err != nil {
			resolver.logger.Warn("fragment_page_retry", "error", err)
			ids, total, err = resolver.store.FragmentPage(ctx, tagID, params.Offset(), params.Limit)
		}
		if err != nil {
			return IDPage{}, err
		}
		return IDPage{IDs: slice.Truncate(ids, constants.MaxIDBatch), Total: total}, nil
	})
}

/*
NarrativeIDs resolves one page of narrative ids.

Parameters:
  - ctx: request context
  - params: requested page and limit

Returns:
  - IDPage: matching ids (capped at the batch bound) and total count
  - error: only when the id query failed twice
*/
func (resolver *IDResolver) NarrativeIDs(ctx context.Context, params pagination.Params) (IDPage, error) {
	key := fmt.Sprintf("narratives|p=%d|l=%d", params.Page, params.Limit)
	return resolver.pages.GetOrCompute(ctx, key, func(ctx context.Context) (IDPage, error) {
		ids, total, err := resolver.store.NarrativePage(ctx, params.Offset(), params.Limit)
		if err != nil {
			resolver.logger.Warn("narrative_page_retry", "error", err)
			ids, total, err = resolver.store.NarrativePage(ctx, params.Offset(), params.Limit)
		}
		if err != nil {
			return IDPage{}, err
		}
		return IDPage{IDs: slice.Truncate(ids, constants.MaxIDBatch), Total: total}, nil
	})
}

// resolveTag maps a tag name to its id through the daily singleton cache.
// A lookup failure counts as unresolvable, never as an error.
func (resolver *IDResolver) resolveTag(ctx context.Context, tagName string) (int, bool) {
	id, err := resolver.filter.GetOrCompute(ctx, "tag|"+tagName, func(ctx context.Context) (int, error) {
		id, ok, err := resolver.store.TagIDByName(ctx, tagName)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, errTagUnknown
		}
		return id, nil
	})
	if err != nil {
		if err != errTagUnknown {
			resolver.logger.Warn("tag_filter_unavailable", "tag", tagName, "error", err)
		}
		return 0, false
	}
	return id, true
}

// errTagUnknown marks a tag name with no match; it is never cached.
var errTagUnknown = fmt.Errorf("tag name not found")
