// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package treasury

import (
	"context"
	"errors"
)

// ErrNotFound reports that no treasury account exists with the given ID.
var ErrNotFound = errors.New("treasury: account not found")

// Store defines the data access contract for treasury accounts.
type Store interface {

	/*
		ListAll returns every treasury account, ordered by balance descending.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Account: All accounts
		  - error: Database retrieval failures
	*/
	ListAll(context context.Context) ([]Account, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: ErrNotFound when absent, otherwise retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)
}
