// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarchetti/fiscora/internal/platform/apperr"
	"github.com/dmarchetti/fiscora/pkg/slug"
	"github.com/dmarchetti/fiscora/pkg/uuid"
)

const (
	// dateLayout is the wire format for expense dates.
	dateLayout = "2006-01-02"

	// DefaultListDays is the window returned when no range is given.
	DefaultListDays = 90
)

// Service implements the expense use cases.
type Service struct {
	store Store
}

// NewService constructs a new expense [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput holds the data required to record a new expense.
type CreateInput struct {
	Category    string
	IncurredOn  string // YYYY-MM-DD
	AmountCents int64
	Note        string
}

/*
List returns expense entries for an inclusive date range.

Parameters:
  - context: context.Context
  - fromDate: string (YYYY-MM-DD, empty means 90 days back)
  - toDate: string (YYYY-MM-DD, empty means today)

Returns:
  - []Entry: Entries ordered by date descending
  - err: Validation or storage failures
*/
func (service *Service) List(context context.Context, fromDate, toDate string) ([]Entry, error) {
	to := today()
	if toDate != "" {
		parsed, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return nil, apperr.ValidationError("to must be a date (YYYY-MM-DD)")
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -DefaultListDays)
	if fromDate != "" {
		parsed, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return nil, apperr.ValidationError("from must be a date (YYYY-MM-DD)")
		}
		from = parsed
	}

	if from.After(to) {
		return nil, apperr.ValidationError("from must not be after to")
	}

	entries, err := service.store.ListByRange(context, from, to)
	if err != nil {
		return nil, fmt.Errorf("expense_service_list_failed: %w", err)
	}

	return entries, nil
}

/*
Breakdown computes per-category totals with percentage shares.

Description: Aggregates expenses over the range and annotates each category
with its share of the grand total. An empty range reports an empty slice.

Parameters:
  - context: context.Context
  - fromDate: string (YYYY-MM-DD, empty means 90 days back)
  - toDate: string (YYYY-MM-DD, empty means today)

Returns:
  - []CategoryTotal: Totals ordered largest-first, shares summing to ~100
  - err: Validation or storage failures
*/
func (service *Service) Breakdown(context context.Context, fromDate, toDate string) ([]CategoryTotal, error) {
	to := today()
	if toDate != "" {
		parsed, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return nil, apperr.ValidationError("to must be a date (YYYY-MM-DD)")
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -DefaultListDays)
	if fromDate != "" {
		parsed, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return nil, apperr.ValidationError("from must be a date (YYYY-MM-DD)")
		}
		from = parsed
	}

	if from.After(to) {
		return nil, apperr.ValidationError("from must not be after to")
	}

	totals, err := service.store.TotalsByCategory(context, from, to)
	if err != nil {
		return nil, fmt.Errorf("expense_service_breakdown_failed: %w", err)
	}

	var grandTotal int64
	for _, total := range totals {
		grandTotal += total.TotalCents
	}

	if grandTotal > 0 {
		for i := range totals {
			totals[i].SharePercent = float64(totals[i].TotalCents) / float64(grandTotal) * 100
		}
	}

	return totals, nil
}

/*
Create validates and persists a brand new expense entry.

Description: Derives the category slug from the human-readable category name
and stamps a time-sortable ID.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Entry: Created entity
  - err: Validation or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Entry, error) {
	incurredOn, err := time.Parse(dateLayout, input.IncurredOn)
	if err != nil {
		return nil, apperr.ValidationError("incurred_on must be a date (YYYY-MM-DD)")
	}

	categorySlug := slug.From(input.Category)
	if categorySlug == "" {
		return nil, apperr.ValidationError("category must contain at least one letter or digit")
	}

	// Time-sortable ID to prevent PG index fragmentation.
	entry := &Entry{
		ID:           uuid.New(),
		Category:     input.Category,
		CategorySlug: categorySlug,
		IncurredOn:   incurredOn,
		AmountCents:  input.AmountCents,
		Note:         input.Note,
	}

	if err := service.store.Create(context, entry); err != nil {
		return nil, fmt.Errorf("expense_service_create_failed: %w", err)
	}

	return entry, nil
}

// today returns the current date (UTC, midnight).
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
