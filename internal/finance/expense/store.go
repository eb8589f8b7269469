// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package expense

import (
	"context"
	"time"
)

// Store defines the data access contract for expense entries.
type Store interface {

	/*
		ListByRange returns entries incurred in [from, to] inclusive,
		ordered by date descending.

		Parameters:
		  - context: context.Context
		  - from: time.Time
		  - to: time.Time

		Returns:
		  - []Entry: Matching entries
		  - error: Database retrieval failures
	*/
	ListByRange(context context.Context, from, to time.Time) ([]Entry, error)

	/*
		TotalsByCategory returns the per-category sums for [from, to] inclusive,
		ordered by total descending.

		Parameters:
		  - context: context.Context
		  - from: time.Time
		  - to: time.Time

		Returns:
		  - []CategoryTotal: Per-category totals (SharePercent left at zero)
		  - error: Database retrieval failures
	*/
	TotalsByCategory(context context.Context, from, to time.Time) ([]CategoryTotal, error)

	/*
		Create persists a new expense entry.

		Parameters:
		  - context: context.Context
		  - entry: *Entry

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, entry *Entry) error
}
