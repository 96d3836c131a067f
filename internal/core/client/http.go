// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memora-app/memora/internal/platform/middleware"
	"github.com/memora-app/memora/internal/platform/respond"
	"github.com/memora-app/memora/internal/platform/sec"
	"github.com/memora-app/memora/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/fragments", handler.getFragments)
	router.Get("/narratives", handler.getNarratives)
	router.Get("/tag-categories", handler.getTagCategories)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/cache/purge", handler.purgeCaches)
	})
}

func (handler *Handler) getFragments(writer http.ResponseWriter, request *http.Request) {
	lang := request.URL.Query().Get("lang")
	tag := request.URL.Query().Get("tag")
	params := pagination.FromRequest(request)

	view, err := handler.service.GetClientFragments(request.Context(), lang, tag, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, view.Fragments, view.Meta)
}

func (handler *Handler) getNarratives(writer http.ResponseWriter, request *http.Request) {
	lang := request.URL.Query().Get("lang")
	params := pagination.FromRequest(request)

	view, err := handler.service.GetClientNarratives(request.Context(), lang, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, view.Narratives, view.Meta)
}

func (handler *Handler) getTagCategories(writer http.ResponseWriter, request *http.Request) {
	lang := request.URL.Query().Get("lang")

	views, err := handler.service.GetClientTagCategories(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

func (handler *Handler) purgeCaches(writer http.ResponseWriter, request *http.Request) {
	handler.service.PurgeCaches()
	respond.NoContent(writer)
}
