// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package narrative

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/memora-app/memora/internal/core/localized"
	"github.com/memora-app/memora/internal/platform/database/schema"
	"github.com/memora-app/memora/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetNarrativeByID(context context.Context, id string) (*Narrative, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreNarrative.ID, schema.CoreNarrative.Slug, schema.CoreNarrative.TotalDuration,
		schema.CoreNarrative.CreatedAt, schema.CoreNarrative.UpdatedAt,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.ID, schema.CoreNarrative.DeletedAt,
	)

	n := &Narrative{
		Titles:       make([]localized.Text, 0),
		Descriptions: make([]localized.Text, 0),
		FragmentIDs:  make([]string, 0),
	}
	err := repository.db.QueryRow(context, query, id).Scan(
		&n.ID, &n.Slug, &n.TotalDuration, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_narrative_by_id")
	}

	titles, err := repository.loadTexts(context, schema.NarrativeTitle.Table,
		schema.NarrativeTitle.NarrativeID, schema.NarrativeTitle.LanguageID, schema.NarrativeTitle.Title, id)
	if err != nil {
		return nil, err
	}
	n.Titles = titles

	descriptions, err := repository.loadTexts(context, schema.NarrativeDescription.Table,
		schema.NarrativeDescription.NarrativeID, schema.NarrativeDescription.LanguageID,
		schema.NarrativeDescription.Description, id)
	if err != nil {
		return nil, err
	}
	n.Descriptions = descriptions

	seqQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.NarrativeFragment.FragmentID, schema.NarrativeFragment.Table,
		schema.NarrativeFragment.NarrativeID, schema.NarrativeFragment.Sequence)

	rows, err := repository.db.Query(context, seqQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_narrative_fragments")
	}
	defer rows.Close()

	for rows.Next() {
		var fragmentID string
		if err := rows.Scan(&fragmentID); err != nil {
			return nil, dberr.Wrap(err, "scan_narrative_fragment")
		}
		n.FragmentIDs = append(n.FragmentIDs, fragmentID)
	}

	return n, nil
}

func (repository *PostgresRepository) loadTexts(context context.Context, table, ownerCol, langCol, valueCol, ownerID string) ([]localized.Text, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, l.%s, t.%s
		FROM %s t
		JOIN %s l ON t.%s = l.%s
		WHERE t.%s = $1
	`,
		langCol, schema.CoreLanguage.Code, valueCol,
		table, schema.CoreLanguage.Table,
		langCol, schema.CoreLanguage.ID,
		ownerCol,
	)

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "load_localized_texts")
	}
	defer rows.Close()

	texts := make([]localized.Text, 0)
	for rows.Next() {
		text := localized.Text{}
		if err := rows.Scan(&text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_localized_text")
		}
		texts = append(texts, text)
	}

	return texts, nil
}

func (repository *PostgresRepository) CreateNarrative(context context.Context, narrative *Narrative) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, 0)
		RETURNING %s, %s
	`,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.ID, schema.CoreNarrative.Slug, schema.CoreNarrative.TotalDuration,
		schema.CoreNarrative.CreatedAt, schema.CoreNarrative.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, narrative.ID, narrative.Slug).
		Scan(&narrative.CreatedAt, &narrative.UpdatedAt)
	return dberr.Wrap(err, "create_narrative")
}

func (repository *PostgresRepository) UpdateNarrativeSlug(context context.Context, id, slug string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = now()
		WHERE %s = $2 AND %s IS NULL
	`,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.Slug, schema.CoreNarrative.UpdatedAt,
		schema.CoreNarrative.ID, schema.CoreNarrative.DeletedAt,
	)

	tag, err := repository.db.Exec(context, query, slug, id)
	if err != nil {
		return dberr.Wrap(err, "update_narrative_slug")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SoftDeleteNarrative(context context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = now()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.DeletedAt,
		schema.CoreNarrative.ID, schema.CoreNarrative.DeletedAt,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_narrative")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetNarrativeTitle(context context.Context, narrativeID string, languageID int, title string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.NarrativeTitle.Table,
		schema.NarrativeTitle.NarrativeID, schema.NarrativeTitle.LanguageID, schema.NarrativeTitle.Title,
		schema.NarrativeTitle.NarrativeID, schema.NarrativeTitle.LanguageID,
		schema.NarrativeTitle.Title, schema.NarrativeTitle.Title,
	)

	_, err := repository.db.Exec(context, query, narrativeID, languageID, title)
	return dberr.Wrap(err, "set_narrative_title")
}

func (repository *PostgresRepository) SetNarrativeDescription(context context.Context, narrativeID string, languageID int, description string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.NarrativeDescription.Table,
		schema.NarrativeDescription.NarrativeID, schema.NarrativeDescription.LanguageID, schema.NarrativeDescription.Description,
		schema.NarrativeDescription.NarrativeID, schema.NarrativeDescription.LanguageID,
		schema.NarrativeDescription.Description, schema.NarrativeDescription.Description,
	)

	_, err := repository.db.Exec(context, query, narrativeID, languageID, description)
	return dberr.Wrap(err, "set_narrative_description")
}

// SetNarrativeFragments replaces the full fragment sequence of a narrative
// in one transaction and recomputes the stored total duration.
func (repository *PostgresRepository) SetNarrativeFragments(context context.Context, narrativeID string, fragmentIDs []string) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_set_narrative_fragments")
	}
	defer tx.Rollback(context)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.NarrativeFragment.Table, schema.NarrativeFragment.NarrativeID)
	if _, err := tx.Exec(context, deleteQuery, narrativeID); err != nil {
		return dberr.Wrap(err, "clear_narrative_fragments")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.NarrativeFragment.Table,
		schema.NarrativeFragment.NarrativeID, schema.NarrativeFragment.FragmentID, schema.NarrativeFragment.Sequence)
	for sequence, fragmentID := range fragmentIDs {
		if _, err := tx.Exec(context, insertQuery, narrativeID, fragmentID, sequence+1); err != nil {
			return dberr.Wrap(err, "insert_narrative_fragment")
		}
	}

	durationQuery := fmt.Sprintf(`
		UPDATE %s n
		SET %s = COALESCE((
			SELECT SUM(f.%s)
			FROM %s nf
			JOIN %s f ON nf.%s = f.%s
			WHERE nf.%s = n.%s
		), 0), %s = now()
		WHERE n.%s = $1
	`,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.TotalDuration,
		schema.CoreFragment.Duration,
		schema.NarrativeFragment.Table,
		schema.CoreFragment.Table,
		schema.NarrativeFragment.FragmentID, schema.CoreFragment.ID,
		schema.NarrativeFragment.NarrativeID, schema.CoreNarrative.ID,
		schema.CoreNarrative.UpdatedAt,
		schema.CoreNarrative.ID,
	)
	if _, err := tx.Exec(context, durationQuery, narrativeID); err != nil {
		return dberr.Wrap(err, "recompute_narrative_duration")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_set_narrative_fragments")
	}
	return nil
}
