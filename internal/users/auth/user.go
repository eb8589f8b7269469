// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

/*
Package auth implements the credential authenticator for the Fiscora dashboard.

It verifies a submitted email/password pair against a stored credential record
and, on success, issues a signed, time-limited session token delivered as an
HttpOnly cookie.

# Architecture

This layer is the "Truth" of the sign-in flow. The entity defined here has no
external dependencies and encapsulates all business rules related to identity
verification. Credential records are created out of band (operator seeding);
this package only ever reads them.
*/
package auth

import "time"

// # Domain Entities

// Account is a stored credential record: a unique email identity paired with
// a salted, irreversible password hash.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string    `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUser     = "user"
)
