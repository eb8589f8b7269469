// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

// Package report composes the cross-domain overview snapshot behind the
// dashboard's landing page. Overviews are expensive to build, so computed
// snapshots are cached in Redis for a short window.
package report

import "time"

// Overview is the cross-domain financial snapshot for a trailing window.
type Overview struct {
	Months                  int       `json:"months"`
	GeneratedAt             time.Time `json:"generated_at"`
	RevenueCents            int64     `json:"revenue_cents"`
	RevenueGrowthPercent    float64   `json:"revenue_growth_percent"`
	ExpenseCents            int64     `json:"expense_cents"`
	NetCents                int64     `json:"net_cents"`
	CashCents               int64     `json:"cash_cents"`
	OutstandingInvoices     int       `json:"outstanding_invoices"`
	OutstandingInvoiceCents int64     `json:"outstanding_invoice_cents"`
}
