// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/apperr"
	"github.com/memora-app/memora/internal/platform/sec"
	"github.com/memora-app/memora/internal/platform/validate"
	"github.com/memora-app/memora/pkg/uuidv7"
)

type Service struct {
	users    UserRepository
	sessions SessionRepository
	tokens   *sec.TokenService
	logger   *slog.Logger
}

func NewService(users UserRepository, sessions SessionRepository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

/*
Login authenticates by username and password.

Description: Failed lookups and wrong passwords return the same
Unauthorized error so the endpoint does not leak which usernames exist.

Parameters:
  - ctx: request context
  - username: account name, matched case-insensitively
  - password: plain-text password

Returns:
  - *TokenPair: access token plus refresh token for the cookie
  - *User: the authenticated account
  - error: apperr.Unauthorized on bad credentials
*/
func (service *Service) Login(ctx context.Context, username, password string) (*TokenPair, *User, error) {
	validator := validate.New().
		Required("username", username).
		Required("password", password)
	if err := validator.Err(); err != nil {
		return nil, nil, err
	}

	user, err := service.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.logger.WarnContext(ctx, "login_failed", "username", username)
		return nil, nil, apperr.Unauthorized("Invalid credentials")
	}

	pair, err := service.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	service.logger.InfoContext(ctx, "login_succeeded", "user_id", user.ID)
	return pair, user, nil
}

/*
Refresh rotates a refresh session and issues a new token pair.

Description: The presented token is deleted before the new one is
stored, so each refresh token is single-use.

Parameters:
  - ctx: request context
  - refreshToken: the opaque token from the session cookie

Returns:
  - *TokenPair: fresh access and refresh tokens
  - error: apperr.Unauthorized when the session is invalid
*/
func (service *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Missing refresh token")
	}

	userID, err := service.sessions.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := service.sessions.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	user, err := service.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.issueTokens(ctx, user)
}

// Logout invalidates a refresh session. A missing token is a no-op.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessions.Delete(ctx, refreshToken)
}

/*
CreateAccount registers a new editorial account.

Parameters:
  - ctx: request context
  - username: unique account name
  - password: plain-text password, hashed before storage
  - role: granted authorization level

Returns:
  - *User: the created account
  - error: validation or persistence failures
*/
func (service *Service) CreateAccount(ctx context.Context, username, password string, role sec.UserRole) (*User, error) {
	validator := validate.New().
		Required("username", username).
		MinLen("username", username, 3).
		MaxLen("username", username, 50).
		Required("password", password).
		MinLen("password", password, 10).
		OneOf("role", string(role), string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleMember))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuidv7.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := service.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "account_created", "user_id", user.ID, "role", role)
	return user, nil
}

func (service *Service) issueTokens(ctx context.Context, user *User) (*TokenPair, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.sessions.Set(ctx, refreshToken, user.ID, RefreshTokenTTL); err != nil {
		return nil, apperr.Internal(err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(AccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}

// newRefreshToken generates a cryptographically random opaque token.
func newRefreshToken() (string, error) {
	raw := make([]byte, RefreshTokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("auth: failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
