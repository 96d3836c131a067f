// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/memora-app/memora/internal/platform/apperr"
	"github.com/memora-app/memora/internal/platform/database/schema"
	"github.com/memora-app/memora/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CoreLanguage.ID,
		schema.CoreLanguage.Code,
		schema.CoreLanguage.Name,
		schema.CoreLanguage.Table,
		schema.CoreLanguage.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var langs []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		langs = append(langs, l)
	}

	return langs, nil
}

func (repository *PostgresRepository) GetLanguageByCode(context context.Context, code string) (*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CoreLanguage.ID,
		schema.CoreLanguage.Code,
		schema.CoreLanguage.Name,
		schema.CoreLanguage.Table,
		schema.CoreLanguage.Code,
	)

	l := &Language{}
	err := repository.db.QueryRow(context, query, NormalizeCode(code)).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_language")
	}
	return l, nil
}

func (repository *PostgresRepository) CreateLanguage(context context.Context, lang *Language) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s;
	`,
		schema.CoreLanguage.Table,
		schema.CoreLanguage.Code,
		schema.CoreLanguage.Name,
		schema.CoreLanguage.ID,
	)

	err := repository.db.QueryRow(context, query, lang.Code, lang.Name).Scan(&lang.ID)
	if err != nil {
		return dberr.Wrap(err, "create_language")
	}
	return nil
}

func (repository *PostgresRepository) UpdateLanguage(context context.Context, lang *Language) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2
		WHERE %s = $3;
	`,
		schema.CoreLanguage.Table,
		schema.CoreLanguage.Code,
		schema.CoreLanguage.Name,
		schema.CoreLanguage.ID,
	)

	tag, err := repository.db.Exec(context, query, lang.Code, lang.Name, lang.ID)
	if err != nil {
		return dberr.Wrap(err, "update_language")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Language")
	}
	return nil
}
