// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package person

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/memora-app/memora/internal/platform/apperr"
	"github.com/memora-app/memora/internal/platform/middleware"
	requestutil "github.com/memora-app/memora/internal/platform/request"
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

type personPayload struct {
	Name      string `json:"name"`
	CountryID *int   `json:"country_id"`
}

type bioPayload struct {
	LanguageID int    `json:"language_id"`
	Bio        string `json:"bio"`
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPersons)
	router.Get("/countries", handler.listCountries)
	router.Get("/{id}", handler.getPerson)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/", handler.createPerson)
		admin.Put("/{id}", handler.updatePerson)
		admin.Put("/{id}/bios", handler.setPersonBio)
		admin.Post("/countries", handler.createCountry)
		admin.Put("/countries/{id}/names", handler.setCountryName)
	})
}

func (handler *Handler) listPersons(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	persons, meta, err := handler.service.ListPersons(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, persons, meta)
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	person, err := handler.service.GetPerson(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

func (handler *Handler) createPerson(writer http.ResponseWriter, request *http.Request) {
	var payload personPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.CreatePerson(request.Context(), payload.Name, payload.CountryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, person)
}

func (handler *Handler) updatePerson(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload personPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.UpdatePerson(request.Context(), id, payload.Name, payload.CountryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person)
}

func (handler *Handler) setPersonBio(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var payload bioPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetPersonBio(request.Context(), id, payload.LanguageID, payload.Bio); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.ListCountries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.CreateCountry(request.Context(), payload.Code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, country)
}

func (handler *Handler) setCountryName(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid country id"))
		return
	}

	var payload struct {
		LanguageID int    `json:"language_id"`
		Name       string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetCountryName(request.Context(), id, payload.LanguageID, payload.Name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
