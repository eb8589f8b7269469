// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package report

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmarchetti/fiscora/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the report endpoints.
//
// # Endpoints
//   - GET /overview : Cross-domain snapshot for a trailing window.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/overview", handler.overview)
	return router
}

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	months := 0
	if raw := request.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			months = parsed
		}
	}

	overview, err := handler.service.Overview(request.Context(), months)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, overview)
}
