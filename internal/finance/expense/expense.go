// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package expense serves the expense entries and category breakdowns behind
// the dashboard's expenses page.
package expense

import "time"

// Entry is a single expense booking.
type Entry struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	CategorySlug string    `json:"category_slug"`
	IncurredOn   time.Time `json:"incurred_on"`
	AmountCents  int64     `json:"amount_cents"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// CategoryTotal is one slice of the category breakdown chart.
type CategoryTotal struct {
	Category     string  `json:"category"`
	CategorySlug string  `json:"category_slug"`
	TotalCents   int64   `json:"total_cents"`
	SharePercent float64 `json:"share_percent"`
}
