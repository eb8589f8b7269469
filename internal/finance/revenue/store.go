// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package revenue

import (
	"context"
	"time"
)

// Store defines the data access contract for revenue entries.
type Store interface {

	/*
		ListByRange returns entries whose month falls in [from, to] inclusive,
		ordered by month ascending.

		Parameters:
		  - context: context.Context
		  - from: time.Time (first day of the starting month)
		  - to: time.Time (first day of the ending month)

		Returns:
		  - []Entry: Matching entries
		  - error: Database retrieval failures
	*/
	ListByRange(context context.Context, from, to time.Time) ([]Entry, error)

	/*
		TotalBetween returns the summed amount of entries in [from, to] inclusive.

		Parameters:
		  - context: context.Context
		  - from: time.Time
		  - to: time.Time

		Returns:
		  - int64: Total amount in cents (0 when empty)
		  - error: Database retrieval failures
	*/
	TotalBetween(context context.Context, from, to time.Time) (int64, error)
}
