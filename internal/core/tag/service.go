// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package tag

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

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetTag(context context.Context, id int) (*Tag, error) {
	return service.repo.GetTagByID(context, id)
}

func (service *Service) CreateCategory(context context.Context, sortOrder int) (*Category, error) {
	category := &Category{SortOrder: sortOrder}
	if err := service.repo.CreateCategory(context, category); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_category_created", "id", category.ID)
	return category, nil
}

func (service *Service) CreateTag(context context.Context, categoryID int) (*Tag, error) {
	validator := validate.New().
		Custom("category_id", categoryID <= 0, "Must reference an existing category")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	tag := &Tag{CategoryID: categoryID}
	if err := service.repo.CreateTag(context, tag); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_created", "id", tag.ID, "category_id", categoryID)
	return tag, nil
}

func (service *Service) SetCategoryName(context context.Context, categoryID, languageID int, name string) error {
	validator := validate.New().
		Required("name", name).
		MaxLen("name", name, 100).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetCategoryName(context, categoryID, languageID, name)
}

func (service *Service) SetTagName(context context.Context, tagID, languageID int, name string) error {
	validator := validate.New().
		Required("name", name).
		MaxLen("name", name, 100).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetTagName(context, tagID, languageID, name)
}

func (service *Service) DeleteTag(context context.Context, id int) error {
	if err := service.repo.DeleteTag(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "tag_deleted", "id", id)
	return nil
}
