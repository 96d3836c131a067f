// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package fragment

import (
	"context"
	"log/slog"

	"github.com/memora-app/memora/internal/platform/validate"
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

// Input carries the caller-supplied fields for create and update.
type Input struct {
	Title        string  `json:"title"`
	Duration     int     `json:"duration"`
	PlayerURL    string  `json:"player_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	PersonID     *string `json:"person_id"`
}

func (input Input) validate() error {
	validator := validate.New().
		Required("title", input.Title).
		MaxLen("title", input.Title, 300).
		Custom("duration", input.Duration < 0, "Must not be negative").
		Required("player_url", input.PlayerURL).
		MaxLen("player_url", input.PlayerURL, 2000).
		MaxLen("thumbnail_url", input.ThumbnailURL, 2000)
	if input.PersonID != nil {
		validator.UUID("person_id", *input.PersonID)
	}
	return validator.Err()
}

func (service *Service) GetFragment(context context.Context, id string) (*Fragment, error) {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetFragmentByID(context, id)
}

func (service *Service) CreateFragment(context context.Context, input Input) (*Fragment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	fragment := &Fragment{
		ID:           uuidv7.New(),
		Title:        input.Title,
		Duration:     input.Duration,
		PlayerURL:    input.PlayerURL,
		ThumbnailURL: input.ThumbnailURL,
		PersonID:     input.PersonID,
		TagIDs:       make([]int, 0),
	}
	if err := service.repo.CreateFragment(context, fragment); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "fragment_created", "id", fragment.ID, "title", fragment.Title)
	return fragment, nil
}

func (service *Service) UpdateFragment(context context.Context, id string, input Input) (*Fragment, error) {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	fragment := &Fragment{
		ID:           id,
		Title:        input.Title,
		Duration:     input.Duration,
		PlayerURL:    input.PlayerURL,
		ThumbnailURL: input.ThumbnailURL,
		PersonID:     input.PersonID,
	}
	if err := service.repo.UpdateFragment(context, fragment); err != nil {
		return nil, err
	}
	return fragment, nil
}

func (service *Service) DeleteFragment(context context.Context, id string) error {
	if err := validate.New().UUID("id", id).Err(); err != nil {
		return err
	}
	if err := service.repo.SoftDeleteFragment(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "fragment_deleted", "id", id)
	return nil
}

func (service *Service) SetFragmentTags(context context.Context, id string, tagIDs []int) error {
	validator := validate.New().UUID("id", id)
	for _, tagID := range tagIDs {
		if tagID <= 0 {
			validator.Custom("tag_ids", true, "Must reference existing tags")
			break
		}
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.SetFragmentTags(context, id, tagIDs)
}
