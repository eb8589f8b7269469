// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
	"github.com/dmarchetti/fiscora/internal/platform/constants"
	"github.com/dmarchetti/fiscora/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the contract for creating signed session tokens.
type TokenIssuer interface {
	// GenerateSessionToken creates a signed JWT string bound to the given subject.
	//
	// # Parameters
	//   - userID: The ID of the account (becomes the subject claim).
	//   - email: The email of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateSessionToken(userID, email string, timeToLive time.Duration) (string, error)
}

// PasswordComparer compares a plaintext password to a stored hash.
//
// Injected so tests can observe that the decoy comparison runs on the
// unknown-identity path.
type PasswordComparer func(plainTextPassword, existingHash string) bool

// Service implements the credential authentication use case.
//
// # Review Process
//
// This service is critical for security. Any changes to lookup, comparison,
// or token issuance logic must be reviewed by the security team.
type Service struct {
	credentialStore CredentialStore
	comparePassword PasswordComparer
	tokenIssuer     TokenIssuer
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(store CredentialStore, compare PasswordComparer, issuer TokenIssuer) *Service {
	return &Service{
		credentialStore: store,
		comparePassword: compare,
		tokenIssuer:     issuer,
	}
}

// # Authentication Flow

// SessionGrant represents a successfully established session.
type SessionGrant struct {
	Token     string
	ExpiresAt time.Time
	Account   *Account
}

/*
Authenticate verifies an email/password pair and issues a session token.

Description: Looks up the credential record, performs the password hash
comparison, and issues a signed session token on success. A session token is
issued if and only if the comparison succeeded against a stored record.

The two failure paths — unknown email and wrong password — are deliberately
indistinguishable: both return the same generic unauthorized error, and the
unknown-email path still pays for a full hash comparison against a fixed
decoy hash so response latency cannot be used to enumerate registered emails.

Parameters:
  - context: context.Context
  - email: string (normalized to lowercase before lookup)
  - password: string

Returns:
  - *SessionGrant: Signed token, expiry, and the verified account
  - err: Unauthorized on credential mismatch, wrapped internal failures otherwise
*/
func (service *Service) Authenticate(context context.Context, email, password string) (*SessionGrant, error) {

	// Identities are stored lowercase; normalize before lookup.
	account, err := service.credentialStore.FindByEmail(context, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Equalize latency with the known-identity path before responding.
			// The result is discarded: this request can never succeed.
			service.comparePassword(password, sec.DecoyHash())
			return nil, apperr.Unauthorized("invalid credentials")
		}
		// Infrastructure failure (store unreachable, query error). Surfaced
		// to the caller only as an opaque server error.
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	if !service.comparePassword(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := service.tokenIssuer.GenerateSessionToken(account.ID, account.Email, constants.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &SessionGrant{
		Token:     token,
		ExpiresAt: time.Now().Add(constants.SessionTokenTTL),
		Account:   account,
	}, nil
}
