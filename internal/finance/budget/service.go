// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
)

// periodLayout is the wire format for budget periods.
const periodLayout = "2006-01"

// Service implements the budget use cases.
type Service struct {
	store Store
}

// NewService constructs a new budget [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
List returns the budget lines for a period.

Parameters:
  - context: context.Context
  - period: string (YYYY-MM, empty means the current month)

Returns:
  - []Line: Lines ordered by planned amount descending
  - err: Validation or storage failures
*/
func (service *Service) List(context context.Context, period string) ([]Line, error) {
	resolved, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	lines, err := service.store.ListByPeriod(context, resolved)
	if err != nil {
		return nil, fmt.Errorf("budget_service_list_failed: %w", err)
	}

	return lines, nil
}

/*
Utilization computes spend-versus-plan percentages for a period.

Description: Annotates each line with its utilization and reports the
aggregate planned, actual and overall utilization for the period. A line
with a zero plan reports zero utilization rather than a division error.

Parameters:
  - context: context.Context
  - period: string (YYYY-MM, empty means the current month)

Returns:
  - *Utilization: The full utilization view
  - err: Validation or storage failures
*/
func (service *Service) Utilization(context context.Context, period string) (*Utilization, error) {
	resolved, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	lines, err := service.store.ListByPeriod(context, resolved)
	if err != nil {
		return nil, fmt.Errorf("budget_service_utilization_failed: %w", err)
	}

	utilization := &Utilization{
		Period: resolved,
		Lines:  make([]LineUtilization, 0, len(lines)),
	}

	for _, line := range lines {
		annotated := LineUtilization{Line: line}
		if line.PlannedCents > 0 {
			annotated.UtilizationPercent = float64(line.ActualCents) / float64(line.PlannedCents) * 100
		}
		utilization.Lines = append(utilization.Lines, annotated)
		utilization.PlannedCents += line.PlannedCents
		utilization.ActualCents += line.ActualCents
	}

	if utilization.PlannedCents > 0 {
		utilization.UtilizationPercent = float64(utilization.ActualCents) / float64(utilization.PlannedCents) * 100
	}

	return utilization, nil
}

// resolvePeriod validates a YYYY-MM period, defaulting to the current month.
func resolvePeriod(period string) (string, error) {
	if period == "" {
		return time.Now().UTC().Format(periodLayout), nil
	}
	if _, err := time.Parse(periodLayout, period); err != nil {
		return "", apperr.ValidationError("period must be a month (YYYY-MM)")
	}
	return period, nil
}
