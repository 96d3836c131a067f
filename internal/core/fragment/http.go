// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package fragment

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.getFragment)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/", handler.createFragment)
		admin.Put("/{id}", handler.updateFragment)
		admin.Delete("/{id}", handler.deleteFragment)
		admin.Put("/{id}/tags", handler.setFragmentTags)
	})
}

func (handler *Handler) getFragment(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	fragment, err := handler.service.GetFragment(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, fragment)
}

func (handler *Handler) createFragment(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	fragment, err := handler.service.CreateFragment(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, fragment)
}

func (handler *Handler) updateFragment(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	fragment, err := handler.service.UpdateFragment(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, fragment)
}

func (handler *Handler) deleteFragment(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	if err := handler.service.DeleteFragment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setFragmentTags(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload struct {
		TagIDs []int `json:"tag_ids"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetFragmentTags(request.Context(), id, payload.TagIDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
