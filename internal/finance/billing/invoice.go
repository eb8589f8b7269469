// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package billing serves the invoice ledger behind the dashboard's
// billing page, including the paid-state transition.
package billing

import "time"

// Invoice status lifecycle.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Invoice is a single receivable tracked by the dashboard.
type Invoice struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Customer    string     `json:"customer"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	IssuedOn    time.Time  `json:"issued_on"`
	DueOn       time.Time  `json:"due_on"`
	PaidOn      *time.Time `json:"paid_on,omitempty"`
}

// ValidStatus reports whether status is one of the known lifecycle values.
func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}
