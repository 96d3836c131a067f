// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package narrative

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memora-app/memora/internal/platform/middleware"
	requestutil "github.com/memora-app/memora/internal/platform/request"
	"github.com/memora-app/memora/internal/platform/respond"
	"github.com/memora-app/memora/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type textPayload struct {
	LanguageID int    `json:"language_id"`
	Value      string `json:"value"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.getNarrative)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/", handler.createNarrative)
		admin.Put("/{id}/slug", handler.updateSlug)
		admin.Delete("/{id}", handler.deleteNarrative)
		admin.Put("/{id}/titles", handler.setTitle)
		admin.Put("/{id}/descriptions", handler.setDescription)
		admin.Put("/{id}/fragments", handler.setFragments)
	})
}

func (handler *Handler) getNarrative(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	narrative, err := handler.service.GetNarrative(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, narrative)
}

func (handler *Handler) createNarrative(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Title string `json:"title"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	narrative, err := handler.service.CreateNarrative(request.Context(), payload.Title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, narrative)
}

func (handler *Handler) updateSlug(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload struct {
		Slug string `json:"slug"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateNarrativeSlug(request.Context(), id, payload.Slug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteNarrative(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	if err := handler.service.DeleteNarrative(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setTitle(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload textPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetNarrativeTitle(request.Context(), id, payload.LanguageID, payload.Value); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setDescription(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload textPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetNarrativeDescription(request.Context(), id, payload.LanguageID, payload.Value); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setFragments(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload struct {
		FragmentIDs []string `json:"fragment_ids"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetNarrativeFragments(request.Context(), id, payload.FragmentIDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
