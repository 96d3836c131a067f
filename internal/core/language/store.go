// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListLanguages(context context.Context) ([]*Language, error)
	GetLanguageByCode(context context.Context, code string) (*Language, error)
	CreateLanguage(context context.Context, lang *Language) error
	UpdateLanguage(context context.Context, lang *Language) error
}
