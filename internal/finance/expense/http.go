// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package expense

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dmarchetti/fiscora/internal/platform/request"
	"github.com/dmarchetti/fiscora/internal/platform/respond"
	"github.com/dmarchetti/fiscora/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the expense endpoints.
//
// # Endpoints
//   - GET  /           : Entries for an inclusive date range.
//   - GET  /breakdown  : Per-category totals with shares.
//   - POST /           : Record a new expense.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Get("/breakdown", handler.breakdown)
	router.Post("/", handler.create)
	return router
}

type createRequest struct {
	Category    string `json:"category"`
	IncurredOn  string `json:"incurred_on"`
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note"`
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

func (handler *Handler) breakdown(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	totals, err := handler.service.Breakdown(request.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"categories": totals})
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("category", input.Category).
		MaxLen("category", input.Category, 80).
		Required("incurred_on", input.IncurredOn).
		Positive("amount_cents", input.AmountCents).
		MaxLen("note", input.Note, 500)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Create(request.Context(), CreateInput{
		Category:    input.Category,
		IncurredOn:  input.IncurredOn,
		AmountCents: input.AmountCents,
		Note:        input.Note,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}
