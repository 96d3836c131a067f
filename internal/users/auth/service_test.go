// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora-app/memora/internal/platform/apperr"
	"github.com/memora-app/memora/internal/platform/sec"
	"github.com/memora-app/memora/internal/users/auth"
)

// # Test Fixtures

type memoryUsers struct {
	byID   map[string]*auth.User
	byName map[string]*auth.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		byID:   make(map[string]*auth.User),
		byName: make(map[string]*auth.User),
	}
}

func (repo *memoryUsers) GetUserByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *memoryUsers) GetUserByUsername(_ context.Context, username string) (*auth.User, error) {
	user, ok := repo.byName[strings.ToLower(username)]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *memoryUsers) CreateUser(_ context.Context, user *auth.User) error {
	repo.byID[user.ID] = user
	repo.byName[strings.ToLower(user.Username)] = user
	return nil
}

type memorySessions struct {
	tokens map[string]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{tokens: make(map[string]string)}
}

func (repo *memorySessions) Set(_ context.Context, token, userID string, _ time.Duration) error {
	repo.tokens[token] = userID
	return nil
}

func (repo *memorySessions) Get(_ context.Context, token string) (string, error) {
	userID, ok := repo.tokens[token]
	if !ok {
		return "", apperr.Unauthorized("Session is invalid or expired")
	}
	return userID, nil
}

func (repo *memorySessions) Delete(_ context.Context, token string) error {
	delete(repo.tokens, token)
	return nil
}

func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	require.NoError(t, os.WriteFile(privPath, privPEM, 0o600))
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0o600))

	service, err := sec.NewTokenService(privPath, pubPath, "memora.app")
	require.NoError(t, err)
	return service
}

type fixture struct {
	service  *auth.Service
	users    *memoryUsers
	sessions *memorySessions
	tokens   *sec.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newMemoryUsers()
	sessions := newMemorySessions()
	tokens := newTestTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:  auth.NewService(users, sessions, tokens, logger),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (f *fixture) seedUser(t *testing.T, username, password string, role sec.UserRole) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{ID: "user-" + username, Username: username, PasswordHash: hash, Role: role}
	require.NoError(t, f.users.CreateUser(context.Background(), user))
	return user
}

// # Tests

/*
TestService_Login_Success verifies the happy path: a valid access token is
issued and the refresh session is stored.
*/
func TestService_Login_Success(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "marta", "a-long-enough-password", sec.RoleEditor)

	pair, user, err := f.service.Login(context.Background(), "marta", "a-long-enough-password")
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotNil(t, user)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := f.tokens.VerifyToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "editor", claims.Role)

	storedID, err := f.sessions.Get(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, storedID)
}

/*
TestService_Login_InvalidCredentials verifies that unknown usernames and
wrong passwords produce the identical Unauthorized error, so the endpoint
does not reveal which accounts exist.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "marta", "a-long-enough-password", sec.RoleEditor)

	_, _, unknownUserErr := f.service.Login(context.Background(), "nobody", "whatever-password")
	_, _, wrongPasswordErr := f.service.Login(context.Background(), "marta", "wrong-password")

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())

	ae := apperr.As(wrongPasswordErr)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestService_Login_MissingFields verifies input validation before any
repository access.
*/
func TestService_Login_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.service.Login(context.Background(), "", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_Refresh_RotatesSession verifies that refresh tokens are
single-use: the presented token is invalidated and replaced.
*/
func TestService_Refresh_RotatesSession(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "marta", "a-long-enough-password", sec.RoleEditor)

	pair, _, err := f.service.Login(context.Background(), "marta", "a-long-enough-password")
	require.NoError(t, err)

	rotated, err := f.service.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The old token is gone; the new one maps to the same account.
	_, err = f.sessions.Get(context.Background(), pair.RefreshToken)
	assert.Error(t, err)

	storedID, err := f.sessions.Get(context.Background(), rotated.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, storedID)

	// Replaying the consumed token fails.
	_, err = f.service.Refresh(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
}

/*
TestService_Refresh_MissingToken verifies rejection of an empty token.
*/
func TestService_Refresh_MissingToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Refresh(context.Background(), "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestService_Logout verifies session invalidation, with an empty token as
a silent no-op.
*/
func TestService_Logout(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "marta", "a-long-enough-password", sec.RoleEditor)

	pair, _, err := f.service.Login(context.Background(), "marta", "a-long-enough-password")
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), pair.RefreshToken))
	_, err = f.sessions.Get(context.Background(), pair.RefreshToken)
	assert.Error(t, err)

	assert.NoError(t, f.service.Logout(context.Background(), ""))
}

/*
TestService_CreateAccount verifies registration and password hashing.
*/
func TestService_CreateAccount(t *testing.T) {
	f := newFixture(t)

	user, err := f.service.CreateAccount(context.Background(), "marta", "a-long-enough-password", sec.RoleEditor)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleEditor, user.Role)
	assert.NotEqual(t, "a-long-enough-password", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("a-long-enough-password", user.PasswordHash))
}

/*
TestService_CreateAccount_Validation verifies the field rules for
registration.
*/
func TestService_CreateAccount_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		username string
		password string
		role     sec.UserRole
	}{
		{"short_username", "ab", "a-long-enough-password", sec.RoleEditor},
		{"short_password", "marta", "too-short", sec.RoleEditor},
		{"unknown_role", "marta", "a-long-enough-password", sec.UserRole("owner")},
		{"empty_username", "", "a-long-enough-password", sec.RoleEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateAccount(context.Background(), tt.username, tt.password, tt.role)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}
