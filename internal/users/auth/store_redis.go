// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/memora-app/memora/internal/platform/apperr"
	"github.com/memora-app/memora/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis. Expiry
// is delegated to Redis TTLs, so stale sessions never need sweeping.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Set stores a refresh session with its TTL.

Parameters:
  - context: context.Context
  - token: opaque refresh token
  - userID: owning account id
  - ttl: session lifetime

Returns:
  - error: storage failures
*/
func (repository *RedisSessionRepository) Set(context context.Context, token, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the user id for a refresh token.

Description: Returns apperr.Unauthorized if the session is absent or expired.

Parameters:
  - context: context.Context
  - token: opaque refresh token

Returns:
  - string: owning account id
  - error: apperr.Unauthorized or connectivity errors
*/
func (repository *RedisSessionRepository) Get(context context.Context, token string) (string, error) {
	key := constants.RedisPrefixSession + token

	userID, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return userID, nil
}

/*
Delete removes the session from Redis.

Parameters:
  - context: context.Context
  - token: opaque refresh token

Returns:
  - error: deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, token string) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
