// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package budget serves the monthly budget lines and utilization figures
// behind the dashboard's budget page.
package budget

// Line is a planned-versus-actual amount for one category in one period.
type Line struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	CategorySlug string `json:"category_slug"`
	Period       string `json:"period"` // YYYY-MM
	PlannedCents int64  `json:"planned_cents"`
	ActualCents  int64  `json:"actual_cents"`
}

// LineUtilization is a budget line annotated with its spend percentage.
type LineUtilization struct {
	Line
	UtilizationPercent float64 `json:"utilization_percent"`
}

// Utilization is the full utilization view for one period.
type Utilization struct {
	Period             string            `json:"period"`
	Lines              []LineUtilization `json:"lines"`
	PlannedCents       int64             `json:"planned_cents"`
	ActualCents        int64             `json:"actual_cents"`
	UtilizationPercent float64           `json:"utilization_percent"`
}
