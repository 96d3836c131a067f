// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/memora-app/memora/internal/platform/constants"
	"github.com/memora-app/memora/pkg/slice"
)

/*
Batcher enriches base fragment records with their person, country and tag
relations.

# Query Bound

Records are processed in batches of [constants.RelationBatchSize]. Within
a batch the person-side load (person, bios, country, country names) and
the tag-side load (tags, names) run concurrently; batches themselves run
sequentially. A page of N records therefore costs at most 2×ceil(N/50)
relation queries.

# Degradation

A batch whose loads fail is logged and skipped: its fragments keep their
base fields and carry no relations. The page is served regardless.
*/
type Batcher struct {
	store  ReadStore
	logger *slog.Logger
}

func NewBatcher(store ReadStore, logger *slog.Logger) *Batcher {
	return &Batcher{store: store, logger: logger}
}

/*
Enrich loads relations for a page of fragment records.

Parameters:
  - ctx: request context
  - records: base records in page order

Returns:
  - []EnrichedFragment: one entry per input record, in input order;
    entries from failed batches have nil Person and Tags
*/
func (batcher *Batcher) Enrich(ctx context.Context, records []*FragmentRecord) []EnrichedFragment {
	enriched := make([]EnrichedFragment, 0, len(records))

	for _, batch := range slice.Chunk(records, constants.RelationBatchSize) {
		ids := slice.Map(batch, func(r *FragmentRecord) string { return r.ID })

		var (
			persons map[string]*PersonRecord
			tags    map[string][]TagRecord
		)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			loaded, err := batcher.store.PersonsForFragments(groupCtx, ids)
			if err != nil {
				return err
			}
			persons = loaded
			return nil
		})
		group.Go(func() error {
			loaded, err := batcher.store.TagsForFragments(groupCtx, ids)
			if err != nil {
				return err
			}
			tags = loaded
			return nil
		})

		if err := group.Wait(); err != nil {
			batcher.logger.Warn("relation_batch_failed",
				"batch_size", len(batch), "first_id", ids[0], "error", err)
			for _, record := range batch {
				enriched = append(enriched, EnrichedFragment{FragmentRecord: *record})
			}
			continue
		}

		for _, record := range batch {
			enriched = append(enriched, EnrichedFragment{
				FragmentRecord: *record,
				Person:         persons[record.ID],
				Tags:           tags[record.ID],
			})
		}
	}

	return enriched
}
