// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package auth

import (
	"context"
	"time"
)

// UserRepository defines the account persistence contract.
type UserRepository interface {
	GetUserByID(context context.Context, id string) (*User, error)
	GetUserByUsername(context context.Context, username string) (*User, error)
	CreateUser(context context.Context, user *User) error
}

// SessionRepository defines the refresh-session contract. A session maps
// an opaque refresh token to a user id with a TTL.
type SessionRepository interface {
	Set(context context.Context, token, userID string, ttl time.Duration) error
	Get(context context.Context, token string) (string, error)
	Delete(context context.Context, token string) error
}
