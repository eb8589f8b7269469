// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package revenue

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

// Routes returns a [chi.Router] with the revenue endpoints.
//
// # Endpoints
//   - GET /         : Entries for an inclusive month range.
//   - GET /summary  : KPI block over a trailing window.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Get("/summary", handler.summary)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	entries, err := handler.service.List(request.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"entries": entries})
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	months := 0
	if raw := request.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			months = parsed
		}
	}

	summary, err := handler.service.Summarize(request.Context(), months)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
