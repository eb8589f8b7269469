// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package revenue serves the revenue entries and KPI summaries behind the
// dashboard's revenue page.
package revenue

import "time"

// Entry is a single revenue booking, attributed to a calendar month.
type Entry struct {
	ID          string    `json:"id"`
	Month       time.Time `json:"month"` // First day of the month.
	Source      string    `json:"source"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"-"`
}

// Summary holds the KPI figures for the revenue cards.
type Summary struct {
	Months             int     `json:"months"`
	TotalCents         int64   `json:"total_cents"`
	PreviousTotalCents int64   `json:"previous_total_cents"`
	GrowthPercent      float64 `json:"growth_percent"`
}
