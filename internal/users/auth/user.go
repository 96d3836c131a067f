// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

/*
Package auth implements accounts and sessions for the write path.

The public read API is anonymous; authentication exists for the editorial
surfaces (fragment, narrative and reference-data management). Access
tokens are short-lived RS256 JWTs, refresh sessions live in Redis.
*/
package auth

import (
	"time"

	"github.com/memora-app/memora/internal/platform/sec"
)

// User represents an editorial account.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"-"` // Delivered via HTTP-only cookie, never in the body.
}
