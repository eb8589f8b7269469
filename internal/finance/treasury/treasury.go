// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package treasury serves the cash accounts behind the dashboard's treasury page.
package treasury

import "time"

// Account is a single treasury position at a financial institution.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Institution  string    `json:"institution"`
	Currency     string    `json:"currency"` // ISO 4217 code.
	BalanceCents int64     `json:"balance_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Position is the aggregate view across all accounts.
type Position struct {
	Accounts   []Account `json:"accounts"`
	TotalCents int64     `json:"total_cents"`
}
