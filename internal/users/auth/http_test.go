// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/platform/middleware"
	"github.com/dmarchetti/fiscora/internal/platform/sec"
	"github.com/dmarchetti/fiscora/internal/users/auth"
)

const testSessionSecret = "this-is-a-test-secret-of-enough-length!!"

// newAuthRouter builds the auth routes over the given store, wrapped in the
// same cookie-authentication middleware the server applies globally.
func newAuthRouter(t *testing.T, store *spyStore, comparer *spyComparer, cookies auth.CookiePolicy) http.Handler {
	t.Helper()

	tokenService, err := sec.NewTokenService(testSessionSecret, "fiscora.test")
	require.NoError(t, err)

	service := auth.NewService(store, comparer.compare, tokenService)
	handler := auth.NewHandler(service, cookies)

	return middleware.Authenticate(tokenService)(handler.Routes())
}

func postLogin(router http.Handler, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "token" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// # Login

/*
TestLogin_Success verifies the established-session response: 200, the
user payload, and a session cookie with the full attribute set.
*/
func TestLogin_Success(t *testing.T) {
	store := &spyStore{account: storedAccount()}
	router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{Secure: false})

	recorder := postLogin(router, `{"email":"finance@fiscora.app","password":"correct horse"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"user":{"id":"01936b2a-0000-7000-8000-000000000001","email":"finance@fiscora.app"}}`,
		recorder.Body.String(),
	)

	cookie := sessionCookie(t, recorder)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

/*
TestLogin_SecureCookieInProduction verifies that the Secure attribute is
present exactly when the production cookie policy is injected.
*/
func TestLogin_SecureCookieInProduction(t *testing.T) {
	store := &spyStore{account: storedAccount()}
	router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{Secure: true})

	recorder := postLogin(router, `{"email":"finance@fiscora.app","password":"pw"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, sessionCookie(t, recorder).Secure)
}

/*
TestLogin_MissingFields verifies that absent or blank credentials are
rejected with 400 before any store lookup happens.
*/
func TestLogin_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty_object", `{}`},
		{"missing_password", `{"email":"finance@fiscora.app"}`},
		{"missing_email", `{"password":"pw"}`},
		{"blank_email", `{"email":"   ","password":"pw"}`},
		{"empty_password", `{"email":"finance@fiscora.app","password":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &spyStore{account: storedAccount()}
			router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{})

			recorder := postLogin(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.JSONEq(t, `{"error":"email and password required"}`, recorder.Body.String())
			assert.Zero(t, store.lookupCount, "no lookup may run for incomplete input")
		})
	}
}

/*
TestLogin_MalformedJSON verifies that an undecodable body is a 400, not a
500, and never reaches the store.
*/
func TestLogin_MalformedJSON(t *testing.T) {
	store := &spyStore{account: storedAccount()}
	router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{})

	recorder := postLogin(router, `{"email": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, store.lookupCount)
}

/*
TestLogin_FailureResponsesByteIdentical verifies the anti-enumeration
property at the transport level: the unknown-email and wrong-password
responses are byte-for-byte the same.
*/
func TestLogin_FailureResponsesByteIdentical(t *testing.T) {
	unknownRouter := newAuthRouter(t, &spyStore{err: auth.ErrNotFound}, &spyComparer{}, auth.CookiePolicy{})
	unknownRecorder := postLogin(unknownRouter, `{"email":"ghost@fiscora.app","password":"pw"}`)

	mismatchRouter := newAuthRouter(t, &spyStore{account: storedAccount()}, &spyComparer{result: false}, auth.CookiePolicy{})
	mismatchRecorder := postLogin(mismatchRouter, `{"email":"finance@fiscora.app","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownRecorder.Code)
	assert.Equal(t, http.StatusUnauthorized, mismatchRecorder.Code)
	assert.Equal(t, unknownRecorder.Body.Bytes(), mismatchRecorder.Body.Bytes())

	// Neither failure sets a session cookie.
	assert.Empty(t, unknownRecorder.Result().Cookies())
	assert.Empty(t, mismatchRecorder.Result().Cookies())
}

/*
TestLogin_NeverLeaksPasswordHash verifies that no response body ever
contains the stored password hash.
*/
func TestLogin_NeverLeaksPasswordHash(t *testing.T) {
	account := storedAccount()
	router := newAuthRouter(t, &spyStore{account: account}, &spyComparer{result: true}, auth.CookiePolicy{})

	recorder := postLogin(router, `{"email":"finance@fiscora.app","password":"pw"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), account.PasswordHash)
}

/*
TestLogin_WrongMethod verifies that non-POST requests are rejected with
405 and an explicit Allow header, without touching the store.
*/
func TestLogin_WrongMethod(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(strings.ToLower(method), func(t *testing.T) {
			store := &spyStore{account: storedAccount()}
			router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{})

			request := httptest.NewRequest(method, "/login", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
			assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"method not allowed"}`, recorder.Body.String())
			assert.Zero(t, store.lookupCount)
		})
	}
}

// # Logout

/*
TestLogout_ClearsCookie verifies the idempotent teardown: 204 and an
expired session cookie.
*/
func TestLogout_ClearsCookie(t *testing.T) {
	router := newAuthRouter(t, &spyStore{}, &spyComparer{}, auth.CookiePolicy{})

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)

	cookie := sessionCookie(t, recorder)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// # Me

/*
TestMe_RequiresSession verifies that the identity endpoint rejects
anonymous requests.
*/
func TestMe_RequiresSession(t *testing.T) {
	router := newAuthRouter(t, &spyStore{}, &spyComparer{}, auth.CookiePolicy{})

	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestMe_WithSessionCookie runs the full sign-in round trip: login, carry
the issued cookie, and resolve the identity from the token alone.
*/
func TestMe_WithSessionCookie(t *testing.T) {
	store := &spyStore{account: storedAccount()}
	router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{})

	loginRecorder := postLogin(router, `{"email":"finance@fiscora.app","password":"pw"}`)
	require.Equal(t, http.StatusOK, loginRecorder.Code)
	cookie := sessionCookie(t, loginRecorder)

	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"user":{"id":"01936b2a-0000-7000-8000-000000000001","email":"finance@fiscora.app"}}`,
		recorder.Body.String(),
	)

	// Identity resolution is token-only: exactly one lookup, from the login.
	assert.Equal(t, 1, store.lookupCount)
}

/*
TestMe_StaleCookieDoesNotBlockLogin verifies that a garbage session
cookie on the login request is ignored rather than rejected.
*/
func TestMe_StaleCookieDoesNotBlockLogin(t *testing.T) {
	store := &spyStore{account: storedAccount()}
	router := newAuthRouter(t, store, &spyComparer{result: true}, auth.CookiePolicy{})

	request := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"finance@fiscora.app","password":"pw"}`))
	request.Header.Set("Content-Type", "application/json")
	request.AddCookie(&http.Cookie{Name: "token", Value: "not.a.jwt"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
