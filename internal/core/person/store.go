// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package person

import "context"

type Repository interface {
	ListPersons(context context.Context, offset, limit int) ([]*Person, int, error)
	GetPersonByID(context context.Context, id string) (*Person, error)
	CreatePerson(context context.Context, person *Person) error
	UpdatePerson(context context.Context, person *Person) error
	SetPersonBio(context context.Context, personID string, languageID int, bio string) error

	ListCountries(context context.Context) ([]*Country, error)
	CreateCountry(context context.Context, country *Country) error
	SetCountryName(context context.Context, countryID, languageID int, name string) error
}
