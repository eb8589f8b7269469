// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package billing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dmarchetti/fiscora/internal/platform/request"
	"github.com/dmarchetti/fiscora/internal/platform/respond"
	"github.com/dmarchetti/fiscora/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the billing endpoints.
//
// # Endpoints
//   - GET /           : Paginated invoices, optionally filtered by status.
//   - GET /{id}       : A single invoice.
//   - POST /{id}/pay  : Transition an invoice to paid.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/{id}/pay", handler.pay)
	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	status := request.URL.Query().Get("status")

	invoices, total, err := handler.service.List(request.Context(), status, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, invoices, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	invoice, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, invoice)
}

func (handler *Handler) pay(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	invoice, err := handler.service.Pay(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, invoice)
}
