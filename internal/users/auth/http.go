// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

/*
Package auth provides the HTTP delivery layer for the credential authenticator.

It implements the gateway for the sign-in lifecycle: session establishment,
session teardown, and current-user resolution.

# Architecture

The handler acts as a thin mediation layer between the web and the domain service:
  - Protocol: Standard RESTful JSON interface.
  - Security: Handles session token cookie injection with HttpOnly/SameSite/Secure.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
	"github.com/dmarchetti/fiscora/internal/platform/constants"
	"github.com/dmarchetti/fiscora/internal/platform/middleware"
	requestutil "github.com/dmarchetti/fiscora/internal/platform/request"
	"github.com/dmarchetti/fiscora/internal/platform/respond"
	"github.com/dmarchetti/fiscora/internal/platform/validate"
)

// # Definitions & Constructors

// CookiePolicy carries the deployment-dependent cookie attributes.
//
// The Secure flag is explicit configuration decided at construction time
// (production deployments only), never an ad-hoc environment read inside the
// handler, so the decision is testable and deterministic.
type CookiePolicy struct {
	// Secure restricts the session cookie to HTTPS transport.
	Secure bool
}

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
	cookies     CookiePolicy
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, cookies CookiePolicy) *Handler {
	return &Handler{authService: service, cookies: cookies}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /login  : Verifies credentials and sets the session cookie.
//   - POST /logout : Clears the session cookie.
//   - GET  /me     : Returns the authenticated identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Wrong-verb requests are rejected before any credential logic runs.
	router.MethodNotAllowed(handler.methodNotAllowed)

	// Public endpoints
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the client-safe projection of an [Account].
//
// Only non-sensitive identity fields are ever echoed back; the password hash
// never leaves the server.
type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

/*
Login authenticates a user and establishes a session.

POST /api/v1/auth/login

Description: Verifies credentials and injects a signed session token cookie
into the response. The two failure causes (unknown email, wrong password)
produce byte-identical responses.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: {"user": {id, email}} plus Set-Cookie with the session token
  - 400: Missing email or password
  - 401: Invalid credentials (cause deliberately indistinguishable)
  - 500: Opaque server error (cause logged server-side only)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Missing fields are rejected immediately; no lookup is attempted.
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		respond.Error(writer, request, apperr.ValidationError("email and password required"))
		return
	}

	grant, err := handler.authService.Authenticate(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    grant.Token,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(constants.SessionTokenTTL.Seconds()),
		Secure:   handler.cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.OK(writer, map[string]any{
		FieldUser: userPayload{ID: grant.Account.ID, Email: grant.Account.Email},
	})
}

/*
Logout terminates the current session on the client.

POST /api/v1/auth/logout

Description: Clears the session cookie. Tokens are stateless (no server-side
revocation list), so teardown is purely a cookie removal and is idempotent.

Response:
  - 204: No Content: Cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   handler.cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.NoContent(writer)
}

/*
Me returns the authenticated identity.

GET /api/v1/auth/me

Description: Resolves the current user from the verified session token claims.
No database round-trip is needed; the token is self-contained.

Response:
  - 200: {"user": {id, email}}
  - 401: Authentication required
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser: userPayload{ID: claims.UserID, Email: claims.Email},
	})
}

// methodNotAllowed rejects wrong-verb requests with an explicit Allow header.
//
// Everything in this group is POST-only except /me, which is GET-only.
func (handler *Handler) methodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	allow := http.MethodPost
	if strings.HasSuffix(request.URL.Path, "/me") {
		allow = http.MethodGet
	}
	writer.Header().Set(constants.HeaderAllow, allow)

	respond.Error(writer, request, apperr.MethodNotAllowed())
}
