// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package budget

import "context"

// Store defines the data access contract for budget lines.
type Store interface {

	/*
		ListByPeriod returns every budget line for the given period,
		ordered by planned amount descending.

		Parameters:
		  - context: context.Context
		  - period: string (YYYY-MM)

		Returns:
		  - []Line: Matching lines
		  - error: Database retrieval failures
	*/
	ListByPeriod(context context.Context, period string) ([]Line, error)
}
