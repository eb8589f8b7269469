// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmarchetti/fiscora/internal/finance/expense"
	"github.com/dmarchetti/fiscora/internal/finance/revenue"
	"github.com/dmarchetti/fiscora/internal/finance/treasury"
	"github.com/dmarchetti/fiscora/internal/platform/constants"
)

// dateLayout is the wire format handed to the expense analyzer.
const dateLayout = "2006-01-02"

// # Upstream Contracts
//
// The overview only needs one read from each finance domain, so the service
// depends on these narrow views rather than the full concrete services.

// RevenueSummarizer supplies the revenue KPI block for a trailing window.
type RevenueSummarizer interface {
	Summarize(context context.Context, months int) (*revenue.Summary, error)
}

// ExpenseAnalyzer supplies per-category expense totals for a date range.
type ExpenseAnalyzer interface {
	Breakdown(context context.Context, fromDate, toDate string) ([]expense.CategoryTotal, error)
}

// TreasuryReader supplies the current cash position.
type TreasuryReader interface {
	Position(context context.Context) (*treasury.Position, error)
}

// ReceivablesReader supplies the outstanding invoice count and amount.
type ReceivablesReader interface {
	Outstanding(context context.Context) (int, int64, error)
}

// Service builds the cross-domain overview snapshot.
type Service struct {
	revenue     RevenueSummarizer
	expenses    ExpenseAnalyzer
	treasury    TreasuryReader
	receivables ReceivablesReader
	cache       Cache
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a new report [Service].
func NewService(
	revenueSummarizer RevenueSummarizer,
	expenseAnalyzer ExpenseAnalyzer,
	treasuryReader TreasuryReader,
	receivablesReader ReceivablesReader,
	cache Cache,
	logger *slog.Logger,
) *Service {
	return &Service{
		revenue:     revenueSummarizer,
		expenses:    expenseAnalyzer,
		treasury:    treasuryReader,
		receivables: receivablesReader,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

/*
Overview returns the cross-domain snapshot for a trailing month window.

Description: Serves a cached snapshot when one exists; otherwise composes a
fresh one from the finance domains and repopulates the cache. Cache failures
are logged and absorbed so a degraded Redis never breaks the dashboard.

Parameters:
  - context: context.Context
  - months: int (window length; 0 means the revenue default)

Returns:
  - *Overview: The snapshot
  - err: Validation or upstream storage failures
*/
func (service *Service) Overview(context context.Context, months int) (*Overview, error) {
	if months == 0 {
		months = revenue.DefaultSummaryMonths
	}

	cached, err := service.cache.Get(context, months)
	if err != nil {
		service.logger.WarnContext(context, "report_cache_read_degraded",
			slog.String("error", err.Error()),
		)
	}
	if cached != nil {
		return cached, nil
	}

	overview, err := service.build(context, months)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, overview, constants.ReportCacheTTL); err != nil {
		service.logger.WarnContext(context, "report_cache_write_degraded",
			slog.String("error", err.Error()),
		)
	}

	return overview, nil
}

// build composes a fresh overview from the finance domains.
func (service *Service) build(context context.Context, months int) (*Overview, error) {
	summary, err := service.revenue.Summarize(context, months)
	if err != nil {
		return nil, err
	}

	from := service.now().UTC().AddDate(0, -months, 0).Format(dateLayout)
	categories, err := service.expenses.Breakdown(context, from, "")
	if err != nil {
		return nil, err
	}

	var expenseCents int64
	for _, category := range categories {
		expenseCents += category.TotalCents
	}

	position, err := service.treasury.Position(context)
	if err != nil {
		return nil, err
	}

	outstandingCount, outstandingCents, err := service.receivables.Outstanding(context)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Months:                  summary.Months,
		GeneratedAt:             service.now().UTC(),
		RevenueCents:            summary.TotalCents,
		RevenueGrowthPercent:    summary.GrowthPercent,
		ExpenseCents:            expenseCents,
		NetCents:                summary.TotalCents - expenseCents,
		CashCents:               position.TotalCents,
		OutstandingInvoices:     outstandingCount,
		OutstandingInvoiceCents: outstandingCents,
	}, nil
}
