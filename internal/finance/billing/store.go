// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package billing

import (
	"context"
	"errors"
	"time"

	"github.com/dmarchetti/fiscora/pkg/pagination"
)

// ErrNotFound signals that no invoice matched the lookup.
var ErrNotFound = errors.New("billing: invoice not found")

// Store defines the data access contract for invoices.
type Store interface {

	/*
		List returns a page of invoices, newest issue date first. An empty
		status returns every invoice; otherwise only matching invoices.

		Parameters:
		  - context: context.Context
		  - status: string (empty or a lifecycle value)
		  - params: pagination.Params

		Returns:
		  - []Invoice: The requested page
		  - int: Total matching invoices across all pages
		  - error: Database retrieval failures
	*/
	List(context context.Context, status string, params pagination.Params) ([]Invoice, int, error)

	/*
		FindByID fetches a single invoice.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Invoice: The invoice if found
		  - error: ErrNotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Invoice, error)

	/*
		Outstanding returns the count and combined amount of invoices that
		are awaiting payment (sent or overdue).

		Parameters:
		  - context: context.Context

		Returns:
		  - int: Number of outstanding invoices
		  - int64: Their combined amount in cents
		  - error: Database retrieval failures
	*/
	Outstanding(context context.Context) (int, int64, error)

	/*
		MarkPaid transitions an invoice to the paid status and stamps the
		payment time.

		Parameters:
		  - context: context.Context
		  - id: string
		  - paidOn: time.Time

		Returns:
		  - error: ErrNotFound or database update failures
	*/
	MarkPaid(context context.Context, id string, paidOn time.Time) error
}
