// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package person

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/validate"
	"github.com/memora-app/memora/pkg/pagination"
	"github.com/memora-app/memora/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListPersons(context context.Context, params pagination.Params) ([]*Person, pagination.Meta, error) {
	persons, total, err := service.repo.ListPersons(context, params.Offset(), params.Limit)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return persons, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetPerson(context context.Context, id string) (*Person, error) {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetPersonByID(context, id)
}

func (service *Service) CreatePerson(context context.Context, name string, countryID *int) (*Person, error) {
	validator := validate.New().
		Required("name", name).
		MaxLen("name", name, 200)
	if countryID != nil {
		validator.Custom("country_id", *countryID <= 0, "Must reference an existing country")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	person := &Person{
		ID:        uuidv7.New(),
		Name:      name,
		CountryID: countryID,
	}
	if err := service.repo.CreatePerson(context, person); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "person_created", "id", person.ID, "name", name)
	return person, nil
}

func (service *Service) UpdatePerson(context context.Context, id, name string, countryID *int) (*Person, error) {
	validator := validate.New().
		UUID("id", id).
		Required("name", name).
		MaxLen("name", name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	person := &Person{ID: id, Name: name, CountryID: countryID}
	if err := service.repo.UpdatePerson(context, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (service *Service) SetPersonBio(context context.Context, personID string, languageID int, bio string) error {
	validator := validate.New().
		UUID("person_id", personID).
		Required("bio", bio).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetPersonBio(context, personID, languageID, bio)
}

func (service *Service) ListCountries(context context.Context) ([]*Country, error) {
	return service.repo.ListCountries(context)
}

func (service *Service) CreateCountry(context context.Context, code string) (*Country, error) {
	validator := validate.New().
		Required("code", code).
		MinLen("code", code, 2).
		MaxLen("code", code, 3)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	country := &Country{Code: code}
	if err := service.repo.CreateCountry(context, country); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "country_created", "id", country.ID, "code", code)
	return country, nil
}

func (service *Service) SetCountryName(context context.Context, countryID, languageID int, name string) error {
	validator := validate.New().
		Required("name", name).
		MaxLen("name", name, 100).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetCountryName(context, countryID, languageID, name)
}
