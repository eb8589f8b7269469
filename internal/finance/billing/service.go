// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
	"github.com/dmarchetti/fiscora/pkg/pagination"
)

// Service implements the billing use cases.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a new billing [Service].
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

/*
List returns a page of invoices, optionally filtered by lifecycle status.

Parameters:
  - context: context.Context
  - status: string (empty means no filter)
  - params: pagination.Params

Returns:
  - []Invoice: The requested page, newest issue date first
  - int: Total matching invoices
  - err: Validation or storage failures
*/
func (service *Service) List(context context.Context, status string, params pagination.Params) ([]Invoice, int, error) {
	if status != "" && !ValidStatus(status) {
		return nil, 0, apperr.ValidationError("status must be one of draft, sent, paid, overdue")
	}

	invoices, total, err := service.store.List(context, status, params)
	if err != nil {
		return nil, 0, fmt.Errorf("billing_service_list_failed: %w", err)
	}

	return invoices, total, nil
}

/*
Get fetches a single invoice by its identifier.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Invoice: The invoice if found
  - err: apperr.NotFound if no invoice exists, otherwise the lookup error
*/
func (service *Service) Get(context context.Context, id string) (*Invoice, error) {
	invoice, err := service.store.FindByID(context, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Invoice")
		}
		return nil, fmt.Errorf("billing_service_get_failed: %w", err)
	}
	return invoice, nil
}

/*
Outstanding reports how many invoices are awaiting payment and their
combined amount. Sent and overdue invoices count; drafts and paid
invoices do not.

Parameters:
  - context: context.Context

Returns:
  - int: Number of outstanding invoices
  - int64: Their combined amount in cents
  - err: Storage failures
*/
func (service *Service) Outstanding(context context.Context) (int, int64, error) {
	count, amountCents, err := service.store.Outstanding(context)
	if err != nil {
		return 0, 0, fmt.Errorf("billing_service_outstanding_failed: %w", err)
	}
	return count, amountCents, nil
}

/*
Pay transitions an invoice to the paid status.

Description: Only sent and overdue invoices can be paid. Paying an
already-paid invoice is a conflict; paying a draft is semantically
invalid since the customer never received it.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Invoice: The invoice after the transition
  - err: apperr.NotFound, apperr.Conflict, apperr.Unprocessable, or storage failures
*/
func (service *Service) Pay(context context.Context, id string) (*Invoice, error) {
	invoice, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	switch invoice.Status {
	case StatusPaid:
		return nil, apperr.Conflict("invoice is already paid")
	case StatusDraft:
		return nil, apperr.Unprocessable("draft invoices cannot be paid")
	}

	paidOn := service.now().UTC()
	if err := service.store.MarkPaid(context, id, paidOn); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Invoice")
		}
		return nil, fmt.Errorf("billing_service_pay_failed: %w", err)
	}

	invoice.Status = StatusPaid
	invoice.PaidOn = &paidOn
	return invoice, nil
}
