// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package budget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarchetti/fiscora/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the budget endpoints.
//
// # Endpoints
//   - GET /             : Budget lines for a period.
//   - GET /utilization  : Spend-versus-plan view for a period.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Get("/utilization", handler.utilization)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	lines, err := handler.service.List(request.Context(), request.URL.Query().Get("period"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"lines": lines})
}

func (handler *Handler) utilization(writer http.ResponseWriter, request *http.Request) {
	utilization, err := handler.service.Utilization(request.Context(), request.URL.Query().Get("period"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, utilization)
}
