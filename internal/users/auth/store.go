// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package auth

import (
	"context"
	"errors"
)

// ErrNotFound reports that no credential record exists for the claimed identity.
//
// The service maps it to the same generic unauthorized outcome as a password
// mismatch; it must never leak to a client as a distinct signal.
var ErrNotFound = errors.New("auth: credential record not found")

// # Credential Data Access

// CredentialStore defines the data access contract for credential records.
//
// # Why so narrow?
//
// The authenticator only ever needs "find credential record by email". Keeping
// the interface to a single method lets the store be swapped or mocked in
// tests without touching any authentication logic.
type CredentialStore interface {

	/*
		FindByEmail returns the credential record with the given email.

		Parameters:
		  - context: context.Context
		  - email: string (already normalized to lowercase)

		Returns:
		  - *Account: Hydrated credential record
		  - error: ErrNotFound when absent, otherwise retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)
}
