// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// # Credential Repository

// PostgresCredentialStore implements the CredentialStore interface using pgx.
type PostgresCredentialStore struct {
	pool *pgxpool.Pool
}

// NewCredentialStore creates a new PostgreSQL implementation of the CredentialStore.
func NewCredentialStore(pool *pgxpool.Pool) *PostgresCredentialStore {
	return &PostgresCredentialStore{pool: pool}
}

/*
FindByEmail retrieves a credential record by its unique email address.

Description: Performs a lookup on the account table. Row absence is reported
as [ErrNotFound] so the service can distinguish "no such identity" from an
infrastructure failure without leaking that distinction to clients.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated credential record
  - error: ErrNotFound or database errors
*/
func (store *PostgresCredentialStore) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, displayname, createdat, updatedat
		FROM account
		WHERE email = $1`

	account := &Account{}
	err := store.pool.QueryRow(context, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.DisplayName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres_credential_store_find_by_email_failed: %w", err)
	}

	return account, nil
}
