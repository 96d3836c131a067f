// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/memora-app/memora/internal/platform/database/schema"
	"github.com/memora-app/memora/internal/platform/dberr"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) GetUserByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.PasswordHash,
		schema.UsersAccount.Role, schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
	)

	u := &User{}
	err := repository.db.QueryRow(context, query, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_id")
	}
	return u, nil
}

func (repository *PostgresUserRepository) GetUserByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = lower($1)
	`,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.PasswordHash,
		schema.UsersAccount.Role, schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		schema.UsersAccount.Username,
	)

	u := &User{}
	err := repository.db.QueryRow(context, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return u, nil
}

func (repository *PostgresUserRepository) CreateUser(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.UsersAccount.Username,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.Role,
		schema.UsersAccount.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
	).Scan(&user.CreatedAt)
	return dberr.Wrap(err, "create_user")
}
