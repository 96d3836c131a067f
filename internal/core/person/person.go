// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package person manages the people featured in fragments, their localized
// biographies, and the country reference data they link to.
package person

import (
	"time"

	"github.com/memora-app/memora/internal/core/localized"
)

// Person represents an individual featured in video fragments.
type Person struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CountryID *int             `json:"country_id,omitempty"`
	Country   *Country         `json:"country,omitempty"`
	Bios      []localized.Text `json:"bios"`
	CreatedAt time.Time        `json:"-"`
}

// Country is reference data a person may be associated with.
type Country struct {
	ID    int              `json:"id"`
	Code  string           `json:"code"`
	Names []localized.Text `json:"names"`
}
