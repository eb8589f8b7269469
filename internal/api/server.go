// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmarchetti/fiscora/internal/finance/billing"
	"github.com/dmarchetti/fiscora/internal/finance/budget"
	"github.com/dmarchetti/fiscora/internal/finance/expense"
	"github.com/dmarchetti/fiscora/internal/finance/report"
	"github.com/dmarchetti/fiscora/internal/finance/revenue"
	"github.com/dmarchetti/fiscora/internal/finance/treasury"
	"github.com/dmarchetti/fiscora/internal/platform/config"
	"github.com/dmarchetti/fiscora/internal/platform/constants"
	"github.com/dmarchetti/fiscora/internal/platform/middleware"
	"github.com/dmarchetti/fiscora/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the session routes (login, logout, me).
	Auth *auth.Handler

	// Revenue serves revenue entries and KPI summaries.
	Revenue *revenue.Handler

	// Expense serves expense entries, breakdowns, and creation.
	Expense *expense.Handler

	// Treasury serves accounts and the aggregate cash position.
	Treasury *treasury.Handler

	// Budget serves budget lines and utilization.
	Budget *budget.Handler

	// Billing serves the invoice ledger and the paid transition.
	Billing *billing.Handler

	// Report serves the cached cross-domain overview.
	Report *report.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Everything under /api/v1 except /auth requires an authenticated session:
// the dashboard's financial data is never served anonymously.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth)
			private.Mount("/revenue", h.Revenue.Routes())
			private.Mount("/expenses", h.Expense.Routes())
			private.Mount("/treasury", h.Treasury.Routes())
			private.Mount("/budgets", h.Budget.Routes())
			private.Mount("/invoices", h.Billing.Routes())
			private.Mount("/reports", h.Report.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
