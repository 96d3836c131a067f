// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/cache"
	"github.com/memora-app/memora/internal/platform/constants"
)

// codeMapKey is the single key under which the full code→id map is cached.
const codeMapKey = "all"

/*
Resolver maps language codes to their numeric identifiers.

The full map is loaded in one query and cached as a singleton for
[constants.LanguageCacheTTL]; it is recomputed wholesale on expiry, never
per code. A load failure is treated as a miss for every code and is not
cached, so the next access retries.
*/
type Resolver struct {
	repo   Repository
	store  *cache.Store[map[string]int]
	logger *slog.Logger
}

func NewResolver(repo Repository, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		store:  cache.New[map[string]int](cache.EpochLanguage, constants.LanguageCacheTTL, 0, logger),
		logger: logger,
	}
}

/*
Resolve returns the identifier for a language code.

Parameters:
  - ctx: request context
  - code: language code in any casing; normalized before lookup

Returns:
  - int: the language id, zero when unknown
  - bool: false when the code is unknown or the map could not be loaded
*/
func (resolver *Resolver) Resolve(ctx context.Context, code string) (int, bool) {
	codes, err := resolver.store.GetOrCompute(ctx, codeMapKey, resolver.loadCodeMap)
	if err != nil {
		resolver.logger.Warn("language_map_unavailable", "error", err)
		return 0, false
	}

	id, ok := codes[NormalizeCode(code)]
	return id, ok
}

// Sweeper exposes the backing cache for the server's sweep lifecycle.
func (resolver *Resolver) Sweeper() *cache.Store[map[string]int] {
	return resolver.store
}

func (resolver *Resolver) loadCodeMap(ctx context.Context) (map[string]int, error) {
	langs, err := resolver.repo.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}

	codes := make(map[string]int, len(langs))
	for _, lang := range langs {
		codes[NormalizeCode(lang.Code)] = lang.ID
	}
	return codes, nil
}
