// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package person

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

func (repository *PostgresRepository) ListPersons(context context.Context, offset, limit int) ([]*Person, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		ORDER BY %s ASC
		OFFSET $1 LIMIT $2
	`,
		schema.CorePerson.ID, schema.CorePerson.Name, schema.CorePerson.CountryID, schema.CorePerson.CreatedAt,
		schema.CorePerson.Table, schema.CorePerson.Name,
	)

	rows, err := repository.db.Query(context, query, offset, limit)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_persons")
	}
	defer rows.Close()

	persons := make([]*Person, 0)
	total := 0
	for rows.Next() {
		p := &Person{Bios: make([]localized.Text, 0)}
		if err := rows.Scan(&p.ID, &p.Name, &p.CountryID, &p.CreatedAt, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		persons = append(persons, p)
	}

	return persons, total, nil
}

func (repository *PostgresRepository) GetPersonByID(context context.Context, id string) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CorePerson.ID, schema.CorePerson.Name, schema.CorePerson.CountryID, schema.CorePerson.CreatedAt,
		schema.CorePerson.Table, schema.CorePerson.ID,
	)

	p := &Person{Bios: make([]localized.Text, 0)}
	err := repository.db.QueryRow(context, query, id).Scan(&p.ID, &p.Name, &p.CountryID, &p.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_person_by_id")
	}

	bioQuery := fmt.Sprintf(`
		SELECT b.%s, l.%s, b.%s
		FROM %s b
		JOIN %s l ON b.%s = l.%s
		WHERE b.%s = $1
	`,
		schema.PersonBio.LanguageID, schema.CoreLanguage.Code, schema.PersonBio.Bio,
		schema.PersonBio.Table, schema.CoreLanguage.Table,
		schema.PersonBio.LanguageID, schema.CoreLanguage.ID,
		schema.PersonBio.PersonID,
	)

	rows, err := repository.db.Query(context, bioQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_person_bios")
	}
	defer rows.Close()

	for rows.Next() {
		text := localized.Text{}
		if err := rows.Scan(&text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_person_bio")
		}
		p.Bios = append(p.Bios, text)
	}

	if p.CountryID != nil {
		country, err := repository.getCountry(context, *p.CountryID)
		if err != nil {
			return nil, err
		}
		p.Country = country
	}

	return p, nil
}

func (repository *PostgresRepository) getCountry(context context.Context, id int) (*Country, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CoreCountry.ID, schema.CoreCountry.Code,
		schema.CoreCountry.Table, schema.CoreCountry.ID)

	c := &Country{Names: make([]localized.Text, 0)}
	if err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Code); err != nil {
		return nil, dberr.Wrap(err, "get_country")
	}

	nQuery := fmt.Sprintf(`
		SELECT n.%s, l.%s, n.%s
		FROM %s n
		JOIN %s l ON n.%s = l.%s
		WHERE n.%s = $1
	`,
		schema.CountryName.LanguageID, schema.CoreLanguage.Code, schema.CountryName.Name,
		schema.CountryName.Table, schema.CoreLanguage.Table,
		schema.CountryName.LanguageID, schema.CoreLanguage.ID,
		schema.CountryName.CountryID,
	)

	rows, err := repository.db.Query(context, nQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_country_names")
	}
	defer rows.Close()

	for rows.Next() {
		text := localized.Text{}
		if err := rows.Scan(&text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_country_name")
		}
		c.Names = append(c.Names, text)
	}

	return c, nil
}

func (repository *PostgresRepository) CreatePerson(context context.Context, person *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
	`,
		schema.CorePerson.Table,
		schema.CorePerson.ID, schema.CorePerson.Name, schema.CorePerson.CountryID,
	)

	_, err := repository.db.Exec(context, query, person.ID, person.Name, person.CountryID)
	return dberr.Wrap(err, "create_person")
}

func (repository *PostgresRepository) UpdatePerson(context context.Context, person *Person) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2
		WHERE %s = $3
	`,
		schema.CorePerson.Table,
		schema.CorePerson.Name, schema.CorePerson.CountryID,
		schema.CorePerson.ID,
	)

	tag, err := repository.db.Exec(context, query, person.Name, person.CountryID, person.ID)
	if err != nil {
		return dberr.Wrap(err, "update_person")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPersonBio(context context.Context, personID string, languageID int, bio string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.PersonBio.Table,
		schema.PersonBio.PersonID, schema.PersonBio.LanguageID, schema.PersonBio.Bio,
		schema.PersonBio.PersonID, schema.PersonBio.LanguageID,
		schema.PersonBio.Bio, schema.PersonBio.Bio,
	)

	_, err := repository.db.Exec(context, query, personID, languageID, bio)
	return dberr.Wrap(err, "set_person_bio")
}

func (repository *PostgresRepository) ListCountries(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreCountry.ID, schema.CoreCountry.Code,
		schema.CoreCountry.Table, schema.CoreCountry.Code)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	countries := make([]*Country, 0)
	countryMap := make(map[int]*Country)
	for rows.Next() {
		c := &Country{Names: make([]localized.Text, 0)}
		if err := rows.Scan(&c.ID, &c.Code); err != nil {
			return nil, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, c)
		countryMap[c.ID] = c
	}
	rows.Close()

	nQuery := fmt.Sprintf(`
		SELECT n.%s, n.%s, l.%s, n.%s
		FROM %s n
		JOIN %s l ON n.%s = l.%s
	`,
		schema.CountryName.CountryID, schema.CountryName.LanguageID,
		schema.CoreLanguage.Code, schema.CountryName.Name,
		schema.CountryName.Table, schema.CoreLanguage.Table,
		schema.CountryName.LanguageID, schema.CoreLanguage.ID,
	)

	nRows, err := repository.db.Query(context, nQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_country_names")
	}
	defer nRows.Close()

	for nRows.Next() {
		var countryID int
		text := localized.Text{}
		if err := nRows.Scan(&countryID, &text.LanguageID, &text.LanguageCode, &text.Value); err != nil {
			return nil, dberr.Wrap(err, "scan_country_name")
		}
		if c, ok := countryMap[countryID]; ok {
			c.Names = append(c.Names, text)
		}
	}

	return countries, nil
}

func (repository *PostgresRepository) CreateCountry(context context.Context, country *Country) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CoreCountry.Table, schema.CoreCountry.Code, schema.CoreCountry.ID)

	err := repository.db.QueryRow(context, query, country.Code).Scan(&country.ID)
	return dberr.Wrap(err, "create_country")
}

func (repository *PostgresRepository) SetCountryName(context context.Context, countryID, languageID int, name string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.CountryName.Table,
		schema.CountryName.CountryID, schema.CountryName.LanguageID, schema.CountryName.Name,
		schema.CountryName.CountryID, schema.CountryName.LanguageID,
		schema.CountryName.Name, schema.CountryName.Name,
	)

	_, err := repository.db.Exec(context, query, countryID, languageID, name)
	return dberr.Wrap(err, "set_country_name")
}
