// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

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

type languagePayload struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
	router.Get("/{code}", handler.getLanguage)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/", handler.createLanguage)
		admin.Put("/{id}", handler.updateLanguage)
	})
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	langs, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, langs)
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	code := chi.URLParam(request, "code")

	lang, err := handler.service.GetLanguage(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}

func (handler *Handler) createLanguage(writer http.ResponseWriter, request *http.Request) {
	var payload languagePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang, err := handler.service.CreateLanguage(request.Context(), payload.Code, payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, lang)
}

func (handler *Handler) updateLanguage(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid language id"))
		return
	}

	var payload languagePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lang, err := handler.service.UpdateLanguage(request.Context(), id, payload.Code, payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}
