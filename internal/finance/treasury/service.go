// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package treasury

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
)

// Service provides treasury-related operations.
type Service struct {
	store Store
}

// NewService creates a new treasury service with the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
Position returns every treasury account together with the combined
balance across all of them. Accounts are ordered by balance, largest
first, so the dashboard can render the most significant holdings at
the top.

Parameters:
  - context: The context for the operation.

Returns:
  - *Position: Accounts plus the aggregate balance in cents.
  - error: An error if the lookup fails.
*/
func (service *Service) Position(context context.Context) (*Position, error) {
	accounts, err := service.store.ListAll(context)
	if err != nil {
		return nil, fmt.Errorf("treasury_service_position_failed: %w", err)
	}

	var totalCents int64
	for _, account := range accounts {
		totalCents += account.BalanceCents
	}

	return &Position{
		Accounts:   accounts,
		TotalCents: totalCents,
	}, nil
}

/*
Get fetches a single treasury account by its identifier.

Parameters:
  - context: The context for the operation.
  - id: The account identifier.

Returns:
  - *Account: The account if found.
  - error: apperr.NotFound if no account exists, otherwise the lookup error.
*/
func (service *Service) Get(context context.Context, id string) (*Account, error) {
	account, err := service.store.FindByID(context, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Treasury account")
		}
		return nil, fmt.Errorf("treasury_service_get_failed: %w", err)
	}
	return account, nil
}
