// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/validate"
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

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListLanguages(context)
}

func (service *Service) GetLanguage(context context.Context, code string) (*Language, error) {
	return service.repo.GetLanguageByCode(context, code)
}

func (service *Service) CreateLanguage(context context.Context, code, name string) (*Language, error) {
	validator := validate.New().
		Required("code", code).
		LanguageCode("code", code).
		Required("name", name).
		MaxLen("name", name, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	lang := &Language{Code: NormalizeCode(code), Name: name}
	if err := service.repo.CreateLanguage(context, lang); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "language_created", "code", lang.Code, "id", lang.ID)
	return lang, nil
}

func (service *Service) UpdateLanguage(context context.Context, id int, code, name string) (*Language, error) {
	validator := validate.New().
		Required("code", code).
		LanguageCode("code", code).
		Required("name", name).
		MaxLen("name", name, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	lang := &Language{ID: id, Code: NormalizeCode(code), Name: name}
	if err := service.repo.UpdateLanguage(context, lang); err != nil {
		return nil, err
	}
	return lang, nil
}
