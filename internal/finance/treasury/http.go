// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package treasury

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dmarchetti/fiscora/internal/platform/request"
	"github.com/dmarchetti/fiscora/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the treasury endpoints.
//
// # Endpoints
//   - GET /accounts      : All accounts plus combined balance.
//   - GET /accounts/{id} : A single account by identifier.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/accounts", handler.position)
	router.Get("/accounts/{id}", handler.get)
	return router
}

func (handler *Handler) position(writer http.ResponseWriter, request *http.Request) {
	position, err := handler.service.Position(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, position)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	account, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}
