// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package fragment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/memora-app/memora/internal/platform/database/schema"
	"github.com/memora-app/memora/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetFragmentByID(context context.Context, id string) (*Fragment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreFragment.ID, schema.CoreFragment.Title, schema.CoreFragment.Duration,
		schema.CoreFragment.PlayerURL, schema.CoreFragment.ThumbnailURL, schema.CoreFragment.PersonID,
		schema.CoreFragment.CreatedAt, schema.CoreFragment.UpdatedAt,
		schema.CoreFragment.Table,
		schema.CoreFragment.ID, schema.CoreFragment.DeletedAt,
	)

	f := &Fragment{TagIDs: make([]int, 0)}
	err := repository.db.QueryRow(context, query, id).Scan(
		&f.ID, &f.Title, &f.Duration,
		&f.PlayerURL, &f.ThumbnailURL, &f.PersonID,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_fragment_by_id")
	}

	tagQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.FragmentTag.TagID, schema.FragmentTag.Table,
		schema.FragmentTag.FragmentID, schema.FragmentTag.TagID)

	rows, err := repository.db.Query(context, tagQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_fragment_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var tagID int
		if err := rows.Scan(&tagID); err != nil {
			return nil, dberr.Wrap(err, "scan_fragment_tag")
		}
		f.TagIDs = append(f.TagIDs, tagID)
	}

	return f, nil
}

func (repository *PostgresRepository) CreateFragment(context context.Context, fragment *Fragment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		schema.CoreFragment.Table,
		schema.CoreFragment.ID, schema.CoreFragment.Title, schema.CoreFragment.Duration,
		schema.CoreFragment.PlayerURL, schema.CoreFragment.ThumbnailURL, schema.CoreFragment.PersonID,
		schema.CoreFragment.CreatedAt, schema.CoreFragment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		fragment.ID, fragment.Title, fragment.Duration,
		fragment.PlayerURL, fragment.ThumbnailURL, fragment.PersonID,
	).Scan(&fragment.CreatedAt, &fragment.UpdatedAt)
	return dberr.Wrap(err, "create_fragment")
}

func (repository *PostgresRepository) UpdateFragment(context context.Context, fragment *Fragment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = now()
		WHERE %s = $6 AND %s IS NULL
		RETURNING %s
	`,
		schema.CoreFragment.Table,
		schema.CoreFragment.Title, schema.CoreFragment.Duration,
		schema.CoreFragment.PlayerURL, schema.CoreFragment.ThumbnailURL, schema.CoreFragment.PersonID,
		schema.CoreFragment.UpdatedAt,
		schema.CoreFragment.ID, schema.CoreFragment.DeletedAt,
		schema.CoreFragment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		fragment.Title, fragment.Duration,
		fragment.PlayerURL, fragment.ThumbnailURL, fragment.PersonID,
		fragment.ID,
	).Scan(&fragment.UpdatedAt)
	return dberr.Wrap(err, "update_fragment")
}

func (repository *PostgresRepository) SoftDeleteFragment(context context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = now()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreFragment.Table,
		schema.CoreFragment.DeletedAt,
		schema.CoreFragment.ID, schema.CoreFragment.DeletedAt,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_fragment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SetFragmentTags replaces the full tag assignment of a fragment in one
// transaction.
func (repository *PostgresRepository) SetFragmentTags(context context.Context, fragmentID string, tagIDs []int) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_set_fragment_tags")
	}
	defer tx.Rollback(context)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FragmentTag.Table, schema.FragmentTag.FragmentID)
	if _, err := tx.Exec(context, deleteQuery, fragmentID); err != nil {
		return dberr.Wrap(err, "clear_fragment_tags")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.FragmentTag.Table, schema.FragmentTag.FragmentID, schema.FragmentTag.TagID)
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(context, insertQuery, fragmentID, tagID); err != nil {
			return dberr.Wrap(err, "insert_fragment_tag")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_set_fragment_tags")
	}
	return nil
}
