// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
)

const (
	// monthLayout is the wire format for calendar months.
	monthLayout = "2006-01"

	// DefaultListMonths is the window returned when no range is given.
	DefaultListMonths = 12

	// DefaultSummaryMonths is the KPI window when none is requested.
	DefaultSummaryMonths = 6

	// MaxSummaryMonths bounds the KPI window to keep queries cheap.
	MaxSummaryMonths = 24
)

// Service implements the revenue read use cases.
type Service struct {
	store Store
}

// NewService constructs a new revenue [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
List returns revenue entries for an inclusive month range.

Parameters:
  - context: context.Context
  - fromMonth: string (YYYY-MM, empty means 12 months back)
  - toMonth: string (YYYY-MM, empty means current month)

Returns:
  - []Entry: Entries ordered by month
  - err: Validation or storage failures
*/
func (service *Service) List(context context.Context, fromMonth, toMonth string) ([]Entry, error) {
	to := currentMonth()
	if toMonth != "" {
		parsed, err := parseMonth(toMonth)
		if err != nil {
			return nil, apperr.ValidationError("to must be a calendar month (YYYY-MM)")
		}
		to = parsed
	}

	from := to.AddDate(0, -(DefaultListMonths - 1), 0)
	if fromMonth != "" {
		parsed, err := parseMonth(fromMonth)
		if err != nil {
			return nil, apperr.ValidationError("from must be a calendar month (YYYY-MM)")
		}
		from = parsed
	}

	if from.After(to) {
		return nil, apperr.ValidationError("from must not be after to")
	}

	entries, err := service.store.ListByRange(context, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue_service_list_failed: %w", err)
	}

	return entries, nil
}

/*
Summarize computes the revenue KPI block over a trailing month window.

Description: Totals the window ending at the current month, totals the window
immediately before it, and derives the growth percentage. A zero previous
window reports 0% growth rather than dividing by zero.

Parameters:
  - context: context.Context
  - months: int (window length; 0 means DefaultSummaryMonths)

Returns:
  - *Summary: KPI figures
  - err: Validation or storage failures
*/
func (service *Service) Summarize(context context.Context, months int) (*Summary, error) {
	if months == 0 {
		months = DefaultSummaryMonths
	}
	if months < 1 || months > MaxSummaryMonths {
		return nil, apperr.ValidationError(fmt.Sprintf("months must be between 1 and %d", MaxSummaryMonths))
	}

	to := currentMonth()
	from := to.AddDate(0, -(months - 1), 0)

	total, err := service.store.TotalBetween(context, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue_service_summary_total_failed: %w", err)
	}

	previousTo := from.AddDate(0, -1, 0)
	previousFrom := previousTo.AddDate(0, -(months - 1), 0)

	previousTotal, err := service.store.TotalBetween(context, previousFrom, previousTo)
	if err != nil {
		return nil, fmt.Errorf("revenue_service_summary_previous_failed: %w", err)
	}

	growth := 0.0
	if previousTotal != 0 {
		growth = (float64(total) - float64(previousTotal)) / float64(previousTotal) * 100
	}

	return &Summary{
		Months:             months,
		TotalCents:         total,
		PreviousTotalCents: previousTotal,
		GrowthPercent:      growth,
	}, nil
}

// parseMonth parses a YYYY-MM string into the first day of that month (UTC).
func parseMonth(value string) (time.Time, error) {
	return time.Parse(monthLayout, value)
}

// currentMonth returns the first day of the current month (UTC).
func currentMonth() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
