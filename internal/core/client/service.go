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

// FragmentListView is the assembled fragments response.
type FragmentListView struct {
	Fragments []FragmentView  `json:"fragments"`
	Meta      pagination.Meta `json:"meta"`
}

// NarrativeListView is the assembled narratives response.
type NarrativeListView struct {
	Narratives []NarrativeView `json:"narratives"`
	Meta       pagination.Meta `json:"meta"`
}

/*
Service orchestrates the read-path pipeline and owns the response caches.

Assembled responses are cached per (language, filter, page, limit) with a
fresh window and a stale window: a stale hit is served immediately while
a background refresh recomputes the entry. Each cache is bounded and
swept by the server lifecycle.
*/
type Service struct {
	store     ReadStore
	ids       *IDResolver
	batcher   *Batcher
	crossref  *CrossRef
	assembler *Assembler

	fragments  *cache.Store[FragmentListView]
	narratives *cache.Store[NarrativeListView]
	categories *cache.Store[[]TagCategoryView]

	// defaultTag optionally narrows the fragment list to a curated tag
	// when the request carries no explicit filter.
	defaultTag string

	logger *slog.Logger
}

func NewService(store ReadStore, languages LanguageResolver, defaultTag string, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		ids:        NewIDResolver(store, logger),
		batcher:    NewBatcher(store, logger),
		crossref:   NewCrossRef(store, logger),
		assembler:  NewAssembler(languages),
		fragments:  cache.New[FragmentListView](cache.EpochClient, constants.ClientFreshTTL, constants.ClientStaleTTL, logger),
		narratives: cache.New[NarrativeListView](cache.EpochClient, constants.ClientFreshTTL, constants.ClientStaleTTL, logger),
		categories: cache.New[[]TagCategoryView](cache.EpochClient, constants.ClientFreshTTL, constants.ClientStaleTTL, logger),
		defaultTag: defaultTag,
		logger:     logger,
	}
}

// Run starts the background sweep of every cache owned by the service and
// blocks until ctx is cancelled.
func (service *Service) Run(ctx context.Context) {
	filter, pages := service.ids.Sweepers()

	go filter.Run(ctx)
	go pages.Run(ctx)
	go service.fragments.Run(ctx)
	go service.narratives.Run(ctx)
	service.categories.Run(ctx)
}

// PurgeCaches drops every cached response and id page. Exposed for the
// operational purge endpoint.
func (service *Service) PurgeCaches() {
	filter, pages := service.ids.Sweepers()
	filter.Purge()
	pages.Purge()
	service.fragments.Purge()
	service.narratives.Purge()
	service.categories.Purge()
	service.logger.Info("client_caches_purged")
}

/*
GetClientFragments returns one localized, assembled page of fragments.

Parameters:
  - ctx: request context
  - langCode: requested language code; fallback chain applies per field
  - tagName: explicit tag filter; empty falls back to the configured
    default tag, if any
  - params: page and limit (already clamped by the transport layer)

Returns:
  - FragmentListView: assembled fragments plus pagination metadata
  - error: only when id resolution failed twice or base records could
    not be loaded
*/
func (service *Service) GetClientFragments(ctx context.Context, langCode, tagName string, params pagination.Params) (FragmentListView, error) {
	if tagName == "" {
		tagName = service.defaultTag
	}

	key := fmt.Sprintf("fragments|lang=%s|tag=%s|p=%d|l=%d", langCode, tagName, params.Page, params.Limit)
	return service.fragments.GetOrCompute(ctx, key, func(ctx context.Context) (FragmentListView, error) {
		page, err := service.ids.FragmentIDs(ctx, tagName, params)
		if err != nil {
			return FragmentListView{}, err
		}

		views, err := service.assembleFragments(ctx, langCode, page.IDs)
		if err != nil {
			return FragmentListView{}, err
		}

		SortFragments(views)
		return FragmentListView{
			Fragments: views,
			Meta:      pagination.NewMeta(params.Page, params.Limit, page.Total),
		}, nil
	})
}

func (service *Service) assembleFragments(ctx context.Context, langCode string, ids []string) ([]FragmentView, error) {
	views := make([]FragmentView, 0, len(ids))
	if len(ids) == 0 {
		return views, nil
	}

	records, err := service.store.FragmentsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	pick := service.assembler.Picker(ctx, langCode)
	for _, enriched := range service.batcher.Enrich(ctx, records) {
		views = append(views, service.assembler.AssembleFragment(enriched, pick))
	}
	return views, nil
}

/*
GetClientNarratives returns one localized, assembled page of narratives,
each with its ordered fragment sequence and cross-referenced paths.

Parameters:
  - ctx: request context
  - langCode: requested language code
  - params: page and limit

Returns:
  - NarrativeListView: assembled narratives plus pagination metadata
  - error: only when id resolution or base loads failed
*/
func (service *Service) GetClientNarratives(ctx context.Context, langCode string, params pagination.Params) (NarrativeListView, error) {
	key := fmt.Sprintf("narratives|lang=%s|p=%d|l=%d", langCode, params.Page, params.Limit)
	return service.narratives.GetOrCompute(ctx, key, func(ctx context.Context) (NarrativeListView, error) {
		page, err := service.ids.NarrativeIDs(ctx, params)
		if err != nil {
			return NarrativeListView{}, err
		}

		views := make([]NarrativeView, 0, len(page.IDs))
		if len(page.IDs) == 0 {
			return NarrativeListView{
				Narratives: views,
				Meta:       pagination.NewMeta(params.Page, params.Limit, page.Total),
			}, nil
		}

		records, err := service.store.NarrativesByIDs(ctx, page.IDs)
		if err != nil {
			return NarrativeListView{}, err
		}

		// One enrichment and one cross-reference pass over the distinct
		// fragments of the whole page.
		fragmentIDs := distinctFragmentIDs(records)

		fragmentRecords, err := service.store.FragmentsByIDs(ctx, fragmentIDs)
		if err != nil {
			return NarrativeListView{}, err
		}

		pick := service.assembler.Picker(ctx, langCode)

		enrichedByID := make(map[string]EnrichedFragment, len(fragmentRecords))
		for _, enriched := range service.batcher.Enrich(ctx, fragmentRecords) {
			enrichedByID[enriched.ID] = enriched
		}

		paths := service.crossref.Resolve(ctx, fragmentIDs, pick)

		for _, record := range records {
			view := NarrativeView{
				ID:            record.ID,
				Slug:          record.Slug,
				Title:         pick(record.Titles),
				Description:   pick(record.Descriptions),
				TotalDuration: record.TotalDuration,
				Fragments:     make([]NarrativeFragmentView, 0, len(record.FragmentIDs)),
			}

			for sequence, fragmentID := range record.FragmentIDs {
				enriched, ok := enrichedByID[fragmentID]
				if !ok {
					// Sequence rows may reference a fragment deleted
					// after the page ids were resolved.
					continue
				}
				view.Fragments = append(view.Fragments, NarrativeFragmentView{
					FragmentView: service.assembler.AssembleFragment(enriched, pick),
					Sequence:     sequence + 1,
					OtherPaths:   paths.OtherPaths(fragmentID, record.ID),
				})
			}

			views = append(views, view)
		}

		SortNarratives(views)
		return NarrativeListView{
			Narratives: views,
			Meta:       pagination.NewMeta(params.Page, params.Limit, page.Total),
		}, nil
	})
}

/*
GetClientTagCategories returns the localized tag taxonomy.

Parameters:
  - ctx: request context
  - langCode: requested language code

Returns:
  - []TagCategoryView: categories in sort order, each with its tags
  - error: when the taxonomy could not be loaded
*/
func (service *Service) GetClientTagCategories(ctx context.Context, langCode string) ([]TagCategoryView, error) {
	key := "tag-categories|lang=" + langCode
	return service.categories.GetOrCompute(ctx, key, func(ctx context.Context) ([]TagCategoryView, error) {
		records, err := service.store.TagCategories(ctx)
		if err != nil {
			return nil, err
		}

		pick := service.assembler.Picker(ctx, langCode)

		views := make([]TagCategoryView, 0, len(records))
		for _, record := range records {
			views = append(views, TagCategoryView{
				ID:        record.ID,
				SortOrder: record.SortOrder,
				Name:      pick(record.Names),
				Tags: slice.Map(record.Tags, func(tag TagRecord) TagView {
					return TagView{ID: tag.ID, CategoryID: tag.CategoryID, Name: pick(tag.Names)}
				}),
			})
		}
		return views, nil
	})
}

func distinctFragmentIDs(records []*NarrativeRecord) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, record := range records {
		for _, id := range record.FragmentIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
