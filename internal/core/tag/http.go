// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package tag

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/memora-app/memora/internal/platform/apperr"
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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getTag)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/categories", handler.createCategory)
		admin.Put("/categories/{id}/names", handler.setCategoryName)
		admin.Post("/", handler.createTag)
		admin.Put("/{id}/names", handler.setTagName)
		admin.Delete("/{id}", handler.deleteTag)
	})
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid tag id"))
		return
	}

	tag, err := handler.service.GetTag(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		SortOrder int `json:"sort_order"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), payload.SortOrder)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		CategoryID int `json:"category_id"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag, err := handler.service.CreateTag(request.Context(), payload.CategoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, tag)
}

type namePayload struct {
	LanguageID int    `json:"language_id"`
	Name       string `json:"name"`
}

func (handler *Handler) setCategoryName(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid category id"))
		return
	}

	var payload namePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetCategoryName(request.Context(), id, payload.LanguageID, payload.Name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setTagName(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid tag id"))
		return
	}

	var payload namePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetTagName(request.Context(), id, payload.LanguageID, payload.Name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid tag id"))
		return
	}

	if err := handler.service.DeleteTag(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
