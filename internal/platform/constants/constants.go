// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, cache windows, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Read-Path Caching: Fresh/stale windows, sweep interval, entry caps.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "memora-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Read-Path Caching

const (
	// LanguageCacheTTL is the validity window of the full language code→id map.
	// On expiry the whole map is recomputed on next access, never per-code.
	LanguageCacheTTL = 24 * time.Hour

	// FilterSingletonTTL is the validity window for named-filter lookups
	// (e.g. a tag resolved by name once per day).
	FilterSingletonTTL = 24 * time.Hour

	// IDListFreshTTL is the validity window of a (filter, page, limit)
	// identifier-list entry.
	IDListFreshTTL = 3 * time.Hour

	// ClientFreshTTL is how long an assembled client response is returned
	// without recomputation.
	ClientFreshTTL = 1 * time.Hour

	// ClientStaleTTL is the additional window past ClientFreshTTL during which
	// a cached response is still served; the first read past it recomputes.
	ClientStaleTTL = 1 * time.Hour

	// CacheRefreshTimeout bounds a background refresh of a stale entry.
	CacheRefreshTimeout = 30 * time.Second

	// CacheSweepInterval is how often the background sweep evicts dead entries.
	CacheSweepInterval = 15 * time.Minute

	// CacheEntryCap is the live-entry count above which the sweep evicts the
	// oldest entries regardless of validity.
	CacheEntryCap = 100

	// CacheEvictFraction is the share of entries (oldest first) removed when
	// CacheEntryCap is exceeded.
	CacheEvictFraction = 0.20
)

// # Relation Loading

const (
	// RelationBatchSize is how many base records are enriched per relation batch.
	RelationBatchSize = 50

	// MaxIDBatch is the hard cap on a caller-supplied identifier batch.
	// Oversized batches are truncated, not rejected.
	MaxIDBatch = 500
)

// # Localization

const (
	// FallbackLanguageCode is the canonical fallback language for localized
	// fields when the requested language has no value.
	FallbackLanguageCode = "EN"
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "memora.app"

	// RefreshTokenCookieName is the name of the cookie that stores the refresh token.
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenCookiePath is the scoped path for the refresh token cookie.
	RefreshTokenCookiePath = "/api/v1/auth"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCore  = "core"
	SchemaUsers = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)
