// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package tag

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	cQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.TagCategory.ID, schema.TagCategory.SortOrder,
		schema.TagCategory.Table, schema.TagCategory.SortOrder)

	cRows, err := repository.db.Query(context, cQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tag_categories")
	}
	defer cRows.Close()

	categories := make([]*Category, 0)
	categoryMap := make(map[int]*Category)

	for cRows.Next() {
		c := &Category{Names: make([]localized.Text, 0), Tags: make([]Tag, 0)}
		if err := cRows.Scan(&c.ID, &c.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_category")
		}
		categories = append(categories, c)
		categoryMap[c.ID] = c
	}
	cRows.Close()

	cnQuery := fmt.Sprintf(`
		SELECT n.%s, n.%s, l.%s, n.%s
		FROM %s n
		JOIN %s l ON n.%s = l.%s
	`,
		schema.TagCategoryName.CategoryID, schema.TagCategoryName.LanguageID,
		schema.CoreLanguage.Code, schema.TagCategoryName.Name,
		schema.TagCategoryName.Table, schema.CoreLanguage.Table,
		schema.TagCategoryName.LanguageID, schema.CoreLanguage.ID,
	)

	cnRows, err := repository.db.Query(context, cnQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tag_category_names")
	}
	defer cnRows.Close()

	for cnRows.Next() {
		var categoryID int
		text := localized.Text{}
		if err := cnRows.Scan(&categoryID, &text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_category_name")
		}
		if c, ok := categoryMap[categoryID]; ok {
			c.Names = append(c.Names, text)
		}
	}
	cnRows.Close()

	tQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreTag.ID, schema.CoreTag.CategoryID,
		schema.CoreTag.Table, schema.CoreTag.ID)

	tRows, err := repository.db.Query(context, tQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer tRows.Close()

	tagMap := make(map[int]*Tag)
	tagOrder := make([]int, 0)
	tagCategory := make(map[int]int)

	for tRows.Next() {
		t := &Tag{Names: make([]localized.Text, 0)}
		if err := tRows.Scan(&t.ID, &t.CategoryID); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tagMap[t.ID] = t
		tagOrder = append(tagOrder, t.ID)
		tagCategory[t.ID] = t.CategoryID
	}
	tRows.Close()

	tnQuery := fmt.Sprintf(`
		SELECT n.%s, n.%s, l.%s, n.%s
		FROM %s n
		JOIN %s l ON n.%s = l.%s
	`,
		schema.TagName.TagID, schema.TagName.LanguageID,
		schema.CoreLanguage.Code, schema.TagName.Name,
		schema.TagName.Table, schema.CoreLanguage.Table,
		schema.TagName.LanguageID, schema.CoreLanguage.ID,
	)

	tnRows, err := repository.db.Query(context, tnQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tag_names")
	}
	defer tnRows.Close()

	for tnRows.Next() {
		var tagID int
		text := localized.Text{}
		if err := tnRows.Scan(&tagID, &text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_name")
		}
		if t, ok := tagMap[tagID]; ok {
			t.Names = append(t.Names, text)
		}
	}

	for _, id := range tagOrder {
		if c, ok := categoryMap[tagCategory[id]]; ok {
			c.Tags = append(c.Tags, *tagMap[id])
		}
	}

	return categories, nil
}

func (repository *PostgresRepository) GetTagByID(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CoreTag.ID, schema.CoreTag.CategoryID,
		schema.CoreTag.Table, schema.CoreTag.ID)

	t := &Tag{Names: make([]localized.Text, 0)}
	if err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.CategoryID); err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_id")
	}

	nQuery := fmt.Sprintf(`
		SELECT n.%s, l.%s, n.%s
		FROM %s n
		JOIN %s l ON n.%s = l.%s
		WHERE n.%s = $1
	`,
		schema.TagName.LanguageID, schema.CoreLanguage.Code, schema.TagName.Name,
		schema.TagName.Table, schema.CoreLanguage.Table,
		schema.TagName.LanguageID, schema.CoreLanguage.ID,
		schema.TagName.TagID,
	)

	rows, err := repository.db.Query(context, nQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_names")
	}
	defer rows.Close()

	for rows.Next() {
		text := localized.Text{}
		if err := rows.Scan(&text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_name")
		}
		t.Names = append(t.Names, text)
	}

	return t, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.TagCategory.Table, schema.TagCategory.SortOrder, schema.TagCategory.ID)

	err := repository.db.QueryRow(context, query, category.SortOrder).Scan(&category.ID)
	return dberr.Wrap(err, "create_tag_category")
}

func (repository *PostgresRepository) CreateTag(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CoreTag.Table, schema.CoreTag.CategoryID, schema.CoreTag.ID)

	err := repository.db.QueryRow(context, query, tag.CategoryID).Scan(&tag.ID)
	return dberr.Wrap(err, "create_tag")
}

func (repository *PostgresRepository) SetCategoryName(context context.Context, categoryID, languageID int, name string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.TagCategoryName.Table,
		schema.TagCategoryName.CategoryID, schema.TagCategoryName.LanguageID, schema.TagCategoryName.Name,
		schema.TagCategoryName.CategoryID, schema.TagCategoryName.LanguageID,
		schema.TagCategoryName.Name, schema.TagCategoryName.Name,
	)

	_, err := repository.db.Exec(context, query, categoryID, languageID, name)
	return dberr.Wrap(err, "set_tag_category_name")
}

func (repository *PostgresRepository) SetTagName(context context.Context, tagID, languageID int, name string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.TagName.Table,
		schema.TagName.TagID, schema.TagName.LanguageID, schema.TagName.Name,
		schema.TagName.TagID, schema.TagName.LanguageID,
		schema.TagName.Name, schema.TagName.Name,
	)

	_, err := repository.db.Exec(context, query, tagID, languageID, name)
	return dberr.Wrap(err, "set_tag_name")
}

func (repository *PostgresRepository) DeleteTag(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreTag.Table, schema.CoreTag.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
