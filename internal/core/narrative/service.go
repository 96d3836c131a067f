// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package narrative

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/core/localized"
	"github.com/memora-app/memora/internal/platform/validate"
	"github.com/memora-app/memora/pkg/slug"
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

func (service *Service) GetNarrative(context context.Context, id string) (*Narrative, error) {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetNarrativeByID(context, id)
}

// CreateNarrative creates a narrative shell. The slug is derived from the
// supplied working title; localized titles are attached separately.
func (service *Service) CreateNarrative(context context.Context, workingTitle string) (*Narrative, error) {
	validator := validate.New().
		Required("title", workingTitle).
		MaxLen("title", workingTitle, 300)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	narrative := &Narrative{
		ID:           uuidv7.New(),
		Slug:         slug.From(workingTitle),
		Titles:       make([]localized.Text, 0),
		Descriptions: make([]localized.Text, 0),
		FragmentIDs:  make([]string, 0),
	}
	if err := service.repo.CreateNarrative(context, narrative); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "narrative_created", "id", narrative.ID, "slug", narrative.Slug)
	return narrative, nil
}

func (service *Service) UpdateNarrativeSlug(context context.Context, id, newSlug string) error {
	validator := validate.New().
		UUID("id", id).
		Required("slug", newSlug).
		Slug("slug", newSlug)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.UpdateNarrativeSlug(context, id, newSlug)
}

func (service *Service) DeleteNarrative(context context.Context, id string) error {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return err
	}
	if err := service.repo.SoftDeleteNarrative(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "narrative_deleted", "id", id)
	return nil
}

func (service *Service) SetNarrativeTitle(context context.Context, id string, languageID int, title string) error {
	validator := validate.New().
		UUID("id", id).
		Required("title", title).
		MaxLen("title", title, 300).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetNarrativeTitle(context, id, languageID, title)
}

func (service *Service) SetNarrativeDescription(context context.Context, id string, languageID int, description string) error {
	validator := validate.New().
		UUID("id", id).
		Required("description", description).
		Custom("language_id", languageID <= 0, "Must reference an existing language")
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetNarrativeDescription(context, id, languageID, description)
}

func (service *Service) SetNarrativeFragments(context context.Context, id string, fragmentIDs []string) error {
	validator := validate.New().UUID("id", id)
	for _, fragmentID := range fragmentIDs {
		validator.UUID("fragment_ids", fragmentID)
		if validator.HasErrors() {
			break
		}
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetNarrativeFragments(context, id, fragmentIDs)
}
