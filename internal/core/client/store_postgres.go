// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/memora-app/memora/internal/core/localized"
	"github.com/memora-app/memora/internal/platform/database/schema"
	"github.com/memora-app/memora/internal/platform/dberr"
)

// PostgresReadStore implements [ReadStore] on the shared connection pool.
//
// Localized text variants are aggregated in SQL (json_agg in a lateral
// join) so each relation side of a batch stays a single query.
type PostgresReadStore struct {
	db *pgxpool.Pool
}

func NewPostgresReadStore(db *pgxpool.Pool) *PostgresReadStore {
	return &PostgresReadStore{db: db}
}

// textsJSON unmarshals a json_agg payload into localized text variants.
// A SQL NULL (no variants) yields an empty slice.
func textsJSON(raw []byte) ([]localized.Text, error) {
	if len(raw) == 0 {
		return []localized.Text{}, nil
	}
	texts := make([]localized.Text, 0)
	if err := json.Unmarshal(raw, &texts); err != nil {
		return nil, fmt.Errorf("client: decode localized texts: %w", err)
	}
	return texts, nil
}

// aggTexts builds the lateral json_agg subquery for one localized-text table.
func aggTexts(table, ownerCol, langCol, valueCol, ownerRef string) string {
	return fmt.Sprintf(`
		SELECT json_agg(json_build_object(
			'language_id', t.%s,
			'language_code', l.%s,
			'value', t.%s
		)) AS texts
		FROM %s t
		JOIN %s l ON t.%s = l.%s
		WHERE t.%s = %s
	`,
		langCol, schema.CoreLanguage.Code, valueCol,
		table, schema.CoreLanguage.Table,
		langCol, schema.CoreLanguage.ID,
		ownerCol, ownerRef,
	)
}

func (store *PostgresReadStore) FragmentPage(context context.Context, tagID *int, offset, limit int) ([]string, int, error) {
	filterJoin := ""
	args := []any{offset, limit}
	if tagID != nil {
		filterJoin = fmt.Sprintf(`JOIN %s ft ON ft.%s = f.%s AND ft.%s = $3`,
			schema.FragmentTag.Table, schema.FragmentTag.FragmentID, schema.CoreFragment.ID,
			schema.FragmentTag.TagID)
		args = append(args, *tagID)
	}

	query := fmt.Sprintf(`
		SELECT f.%s, COUNT(*) OVER() AS total
		FROM %s f
		%s
		WHERE f.%s IS NULL
		ORDER BY lower(f.%s) ASC, f.%s ASC
		OFFSET $1 LIMIT $2
	`,
		schema.CoreFragment.ID,
		schema.CoreFragment.Table,
		filterJoin,
		schema.CoreFragment.DeletedAt,
		schema.CoreFragment.Title, schema.CoreFragment.ID,
	)

	rows, err := store.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "fragment_page")
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	total := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_fragment_page")
		}
		ids = append(ids, id)
	}

	return ids, total, nil
}

func (store *PostgresReadStore) NarrativePage(context context.Context, offset, limit int) ([]string, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC
		OFFSET $1 LIMIT $2
	`,
		schema.CoreNarrative.ID,
		schema.CoreNarrative.Table,
		schema.CoreNarrative.DeletedAt,
		schema.CoreNarrative.Slug,
	)

	rows, err := store.db.Query(context, query, offset, limit)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "narrative_page")
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	total := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_narrative_page")
		}
		ids = append(ids, id)
	}

	return ids, total, nil
}

func (store *PostgresReadStore) TagIDByName(context context.Context, name string) (int, bool, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE lower(%s) = lower($1)
		LIMIT 1
	`,
		schema.TagName.TagID,
		schema.TagName.Table,
		schema.TagName.Name,
	)

	var id int
	err := store.db.QueryRow(context, query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, dberr.Wrap(err, "tag_id_by_name")
	}

	return id, true, nil
}

func (store *PostgresReadStore) FragmentsByIDs(context context.Context, ids []string) ([]*FragmentRecord, error) {
	if len(ids) == 0 {
		return []*FragmentRecord{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1) AND %s IS NULL
	`,
		schema.CoreFragment.ID, schema.CoreFragment.Title, schema.CoreFragment.Duration,
		schema.CoreFragment.PlayerURL, schema.CoreFragment.ThumbnailURL, schema.CoreFragment.PersonID,
		schema.CoreFragment.Table,
		schema.CoreFragment.ID, schema.CoreFragment.DeletedAt,
	)

	rows, err := store.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "fragments_by_ids")
	}
	defer rows.Close()

	byID := make(map[string]*FragmentRecord, len(ids))
	for rows.Next() {
		r := &FragmentRecord{}
		if err := rows.Scan(&r.ID, &r.Title, &r.Duration, &r.PlayerURL, &r.ThumbnailURL, &r.PersonID); err != nil {
			return nil, dberr.Wrap(err, "scan_fragment_record")
		}
		byID[r.ID] = r
	}

	// Preserve the resolved page order.
	records := make([]*FragmentRecord, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			records = append(records, r)
		}
	}

	return records, nil
}

func (store *PostgresReadStore) PersonsForFragments(context context.Context, fragmentIDs []string) (map[string]*PersonRecord, error) {
	persons := make(map[string]*PersonRecord, len(fragmentIDs))
	if len(fragmentIDs) == 0 {
		return persons, nil
	}

	bioAgg := aggTexts(schema.PersonBio.Table, schema.PersonBio.PersonID,
		schema.PersonBio.LanguageID, schema.PersonBio.Bio, "p."+schema.CorePerson.ID)
	countryAgg := aggTexts(schema.CountryName.Table, schema.CountryName.CountryID,
		schema.CountryName.LanguageID, schema.CountryName.Name, "c."+schema.CoreCountry.ID)

	query := fmt.Sprintf(`
		SELECT f.%s, p.%s, p.%s,
		       c.%s, c.%s,
		       bios.texts, cnames.texts
		FROM %s f
		JOIN %s p ON f.%s = p.%s
		LEFT JOIN %s c ON p.%s = c.%s
		LEFT JOIN LATERAL (%s) bios ON true
		LEFT JOIN LATERAL (%s) cnames ON true
		WHERE f.%s = ANY($1)
	`,
		schema.CoreFragment.ID, schema.CorePerson.ID, schema.CorePerson.Name,
		schema.CoreCountry.ID, schema.CoreCountry.Code,
		schema.CoreFragment.Table,
		schema.CorePerson.Table, schema.CoreFragment.PersonID, schema.CorePerson.ID,
		schema.CoreCountry.Table, schema.CorePerson.CountryID, schema.CoreCountry.ID,
		bioAgg, countryAgg,
		schema.CoreFragment.ID,
	)

	rows, err := store.db.Query(context, query, fragmentIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "persons_for_fragments")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			fragmentID  string
			person      PersonRecord
			countryID   *int
			countryCode *string
			rawBios     []byte
			rawNames    []byte
		)
		if err := rows.Scan(&fragmentID, &person.ID, &person.Name,
			&countryID, &countryCode, &rawBios, &rawNames); err != nil {
			return nil, dberr.Wrap(err, "scan_person_record")
		}

		bios, err := textsJSON(rawBios)
		if err != nil {
			return nil, dberr.Wrap(err, "decode_person_bios")
		}
		person.Bios = bios

		if countryID != nil && countryCode != nil {
			names, err := textsJSON(rawNames)
			if err != nil {
				return nil, dberr.Wrap(err, "decode_country_names")
			}
			person.Country = &CountryRecord{ID: *countryID, Code: *countryCode, Names: names}
		}

		p := person
		persons[fragmentID] = &p
	}

	return persons, nil
}

func (store *PostgresReadStore) TagsForFragments(context context.Context, fragmentIDs []string) (map[string][]TagRecord, error) {
	tags := make(map[string][]TagRecord, len(fragmentIDs))
	if len(fragmentIDs) == 0 {
		return tags, nil
	}

	nameAgg := aggTexts(schema.TagName.Table, schema.TagName.TagID,
		schema.TagName.LanguageID, schema.TagName.Name, "t."+schema.CoreTag.ID)

	query := fmt.Sprintf(`
		SELECT ft.%s, t.%s, t.%s, names.texts
		FROM %s ft
		JOIN %s t ON ft.%s = t.%s
		LEFT JOIN LATERAL (%s) names ON true
		WHERE ft.%s = ANY($1)
		ORDER BY ft.%s, t.%s
	`,
		schema.FragmentTag.FragmentID, schema.CoreTag.ID, schema.CoreTag.CategoryID,
		schema.FragmentTag.Table,
		schema.CoreTag.Table, schema.FragmentTag.TagID, schema.CoreTag.ID,
		nameAgg,
		schema.FragmentTag.FragmentID,
		schema.FragmentTag.FragmentID, schema.CoreTag.ID,
	)

	rows, err := store.db.Query(context, query, fragmentIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "tags_for_fragments")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			fragmentID string
			tag        TagRecord
			rawNames   []byte
		)
		if err := rows.Scan(&fragmentID, &tag.ID, &tag.CategoryID, &rawNames); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_record")
		}

		names, err := textsJSON(rawNames)
		if err != nil {
			return nil, dberr.Wrap(err, "decode_tag_names")
		}
		tag.Names = names

		tags[fragmentID] = append(tags[fragmentID], tag)
	}

	return tags, nil
}

func (store *PostgresReadStore) NarrativesByIDs(context context.Context, ids []string) ([]*NarrativeRecord, error) {
	if len(ids) == 0 {
		return []*NarrativeRecord{}, nil
	}

	titleAgg := aggTexts(schema.NarrativeTitle.Table, schema.NarrativeTitle.NarrativeID,
		schema.NarrativeTitle.LanguageID, schema.NarrativeTitle.Title, "n."+schema.CoreNarrative.ID)
	descAgg := aggTexts(schema.NarrativeDescription.Table, schema.NarrativeDescription.NarrativeID,
		schema.NarrativeDescription.LanguageID, schema.NarrativeDescription.Description, "n."+schema.CoreNarrative.ID)

	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, titles.texts, descriptions.texts
		FROM %s n
		LEFT JOIN LATERAL (%s) titles ON true
		LEFT JOIN LATERAL (%s) descriptions ON true
		WHERE n.%s = ANY($1) AND n.%s IS NULL
	`,
		schema.CoreNarrative.ID, schema.CoreNarrative.Slug, schema.CoreNarrative.TotalDuration,
		schema.CoreNarrative.Table,
		titleAgg, descAgg,
		schema.CoreNarrative.ID, schema.CoreNarrative.DeletedAt,
	)

	rows, err := store.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "narratives_by_ids")
	}
	defer rows.Close()

	byID := make(map[string]*NarrativeRecord, len(ids))
	for rows.Next() {
		r := &NarrativeRecord{FragmentIDs: make([]string, 0)}
		var rawTitles, rawDescriptions []byte
		if err := rows.Scan(&r.ID, &r.Slug, &r.TotalDuration, &rawTitles, &rawDescriptions); err != nil {
			return nil, dberr.Wrap(err, "scan_narrative_record")
		}

		if r.Titles, err = textsJSON(rawTitles); err != nil {
			return nil, dberr.Wrap(err, "decode_narrative_titles")
		}
		if r.Descriptions, err = textsJSON(rawDescriptions); err != nil {
			return nil, dberr.Wrap(err, "decode_narrative_descriptions")
		}

		byID[r.ID] = r
	}
	rows.Close()

	seqQuery := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s ASC
	`,
		schema.NarrativeFragment.NarrativeID, schema.NarrativeFragment.FragmentID,
		schema.NarrativeFragment.Table,
		schema.NarrativeFragment.NarrativeID,
		schema.NarrativeFragment.NarrativeID, schema.NarrativeFragment.Sequence,
	)

	seqRows, err := store.db.Query(context, seqQuery, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "narrative_sequences")
	}
	defer seqRows.Close()

	for seqRows.Next() {
		var narrativeID, fragmentID string
		if err := seqRows.Scan(&narrativeID, &fragmentID); err != nil {
			return nil, dberr.Wrap(err, "scan_narrative_sequence")
		}
		if r, ok := byID[narrativeID]; ok {
			r.FragmentIDs = append(r.FragmentIDs, fragmentID)
		}
	}

	records := make([]*NarrativeRecord, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			records = append(records, r)
		}
	}

	return records, nil
}

func (store *PostgresReadStore) NarrativeLinks(context context.Context, fragmentIDs []string) ([]NarrativeLink, error) {
	if len(fragmentIDs) == 0 {
		return []NarrativeLink{}, nil
	}

	query := fmt.Sprintf(`
		SELECT nf.%s, nf.%s
		FROM %s nf
		JOIN %s n ON nf.%s = n.%s
		WHERE nf.%s = ANY($1) AND n.%s IS NULL
		ORDER BY nf.%s, n.%s ASC
	`,
		schema.NarrativeFragment.FragmentID, schema.NarrativeFragment.NarrativeID,
		schema.NarrativeFragment.Table,
		schema.CoreNarrative.Table, schema.NarrativeFragment.NarrativeID, schema.CoreNarrative.ID,
		schema.NarrativeFragment.FragmentID, schema.CoreNarrative.DeletedAt,
		schema.NarrativeFragment.FragmentID, schema.CoreNarrative.Slug,
	)

	rows, err := store.db.Query(context, query, fragmentIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "narrative_links")
	}
	defer rows.Close()

	links := make([]NarrativeLink, 0)
	for rows.Next() {
		var link NarrativeLink
		if err := rows.Scan(&link.FragmentID, &link.NarrativeID); err != nil {
			return nil, dberr.Wrap(err, "scan_narrative_link")
		}
		links = append(links, link)
	}

	return links, nil
}

func (store *PostgresReadStore) NarrativeTitles(context context.Context, narrativeIDs []string) (map[string][]localized.Text, error) {
	titles := make(map[string][]localized.Text, len(narrativeIDs))
	if len(narrativeIDs) == 0 {
		return titles, nil
	}

	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, l.%s, t.%s
		FROM %s t
		JOIN %s l ON t.%s = l.%s
		WHERE t.%s = ANY($1)
	`,
		schema.NarrativeTitle.NarrativeID, schema.NarrativeTitle.LanguageID,
		schema.CoreLanguage.Code, schema.NarrativeTitle.Title,
		schema.NarrativeTitle.Table, schema.CoreLanguage.Table,
		schema.NarrativeTitle.LanguageID, schema.CoreLanguage.ID,
		schema.NarrativeTitle.NarrativeID,
	)

	rows, err := store.db.Query(context, query, narrativeIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "narrative_titles")
	}
	defer rows.Close()

	for rows.Next() {
		var narrativeID string
		text := localized.Text{}
		if err := rows.Scan(&narrativeID, &text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_narrative_title")
		}
		titles[narrativeID] = append(titles[narrativeID], text)
	}

	return titles, nil
}

func (store *PostgresReadStore) TagCategories(context context.Context) ([]*TagCategoryRecord, error) {
	nameAgg := aggTexts(schema.TagCategoryName.Table, schema.TagCategoryName.CategoryID,
		schema.TagCategoryName.LanguageID, schema.TagCategoryName.Name, "c."+schema.TagCategory.ID)

	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, names.texts
		FROM %s c
		LEFT JOIN LATERAL (%s) names ON true
		ORDER BY c.%s ASC
	`,
		schema.TagCategory.ID, schema.TagCategory.SortOrder,
		schema.TagCategory.Table,
		nameAgg,
		schema.TagCategory.SortOrder,
	)

	rows, err := store.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_categories")
	}
	defer rows.Close()

	categories := make([]*TagCategoryRecord, 0)
	byID := make(map[int]*TagCategoryRecord)
	for rows.Next() {
		r := &TagCategoryRecord{Tags: make([]TagRecord, 0)}
		var rawNames []byte
		if err := rows.Scan(&r.ID, &r.SortOrder, &rawNames); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_category")
		}
		if r.Names, err = textsJSON(rawNames); err != nil {
			return nil, dberr.Wrap(err, "decode_tag_category_names")
		}
		categories = append(categories, r)
		byID[r.ID] = r
	}
	rows.Close()

	tagAgg := aggTexts(schema.TagName.Table, schema.TagName.TagID,
		schema.TagName.LanguageID, schema.TagName.Name, "t."+schema.CoreTag.ID)

	tagQuery := fmt.Sprintf(`
		SELECT t.%s, t.%s, names.texts
		FROM %s t
		LEFT JOIN LATERAL (%s) names ON true
		ORDER BY t.%s ASC
	`,
		schema.CoreTag.ID, schema.CoreTag.CategoryID,
		schema.CoreTag.Table,
		tagAgg,
		schema.CoreTag.ID,
	)

	tagRows, err := store.db.Query(context, tagQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_category_tags")
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var tag TagRecord
		var rawNames []byte
		if err := tagRows.Scan(&tag.ID, &tag.CategoryID, &rawNames); err != nil {
			return nil, dberr.Wrap(err, "scan_category_tag")
		}
		if tag.Names, err = textsJSON(rawNames); err != nil {
			return nil, dberr.Wrap(err, "decode_category_tag_names")
		}
		if c, ok := byID[tag.CategoryID]; ok {
			c.Tags = append(c.Tags, tag)
		}
	}

	return categories, nil
}
