// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package report_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/finance/expense"
	"github.com/dmarchetti/fiscora/internal/finance/report"
	"github.com/dmarchetti/fiscora/internal/finance/revenue"
	"github.com/dmarchetti/fiscora/internal/finance/treasury"
)

// # Test Doubles

type fakeRevenue struct {
	summary *revenue.Summary
	err     error
	calls   int
}

func (f *fakeRevenue) Summarize(_ context.Context, months int) (*revenue.Summary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	summary := *f.summary
	summary.Months = months
	return &summary, nil
}

type fakeExpenses struct {
	totals []expense.CategoryTotal
}

func (f *fakeExpenses) Breakdown(_ context.Context, _, _ string) ([]expense.CategoryTotal, error) {
	return f.totals, nil
}

type fakeTreasury struct {
	position *treasury.Position
}

func (f *fakeTreasury) Position(_ context.Context) (*treasury.Position, error) {
	return f.position, nil
}

type fakeReceivables struct {
	count  int
	amount int64
}

func (f *fakeReceivables) Outstanding(_ context.Context) (int, int64, error) {
	return f.count, f.amount, nil
}

// fakeCache is an in-memory Cache that can simulate failures.
type fakeCache struct {
	entries map[int]*report.Overview
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[int]*report.Overview{}}
}

func (cache *fakeCache) Get(_ context.Context, months int) (*report.Overview, error) {
	if cache.getErr != nil {
		return nil, cache.getErr
	}
	return cache.entries[months], nil
}

func (cache *fakeCache) Set(_ context.Context, overview *report.Overview, _ time.Duration) error {
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.sets++
	cache.entries[overview.Months] = overview
	return nil
}

func newTestService(cache report.Cache) (*report.Service, *fakeRevenue) {
	revenueSummarizer := &fakeRevenue{summary: &revenue.Summary{
		TotalCents:    500_000,
		GrowthPercent: 12.5,
	}}

	return report.NewService(
		revenueSummarizer,
		&fakeExpenses{totals: []expense.CategoryTotal{
			{Category: "Payroll", TotalCents: 200_000},
			{Category: "Hosting", TotalCents: 50_000},
		}},
		&fakeTreasury{position: &treasury.Position{TotalCents: 3_000_000}},
		&fakeReceivables{count: 4, amount: 180_000},
		cache,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	), revenueSummarizer
}

// # Tests

/*
TestService_Overview_Composition verifies the cross-domain math on a
cache miss: revenue, summed expenses, net, cash, and receivables.
*/
func TestService_Overview_Composition(t *testing.T) {
	cache := newFakeCache()
	service, _ := newTestService(cache)

	overview, err := service.Overview(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, 6, overview.Months)
	assert.Equal(t, int64(500_000), overview.RevenueCents)
	assert.InDelta(t, 12.5, overview.RevenueGrowthPercent, 0.001)
	assert.Equal(t, int64(250_000), overview.ExpenseCents)
	assert.Equal(t, int64(250_000), overview.NetCents)
	assert.Equal(t, int64(3_000_000), overview.CashCents)
	assert.Equal(t, 4, overview.OutstandingInvoices)
	assert.Equal(t, int64(180_000), overview.OutstandingInvoiceCents)
	assert.WithinDuration(t, time.Now(), overview.GeneratedAt, 5*time.Second)

	// The rebuilt snapshot must have been cached.
	assert.Equal(t, 1, cache.sets)
}

/*
TestService_Overview_CacheHit verifies that a cached snapshot is served
without recomputing from the upstream domains.
*/
func TestService_Overview_CacheHit(t *testing.T) {
	cache := newFakeCache()
	cached := &report.Overview{Months: 6, RevenueCents: 111}
	cache.entries[6] = cached

	service, revenueSummarizer := newTestService(cache)

	overview, err := service.Overview(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, cached, overview)
	assert.Zero(t, revenueSummarizer.calls, "cache hit must not recompute")
}

/*
TestService_Overview_CacheFailuresDegrade verifies that a broken cache
never fails the request: both read and write errors fall back to a live
rebuild.
*/
func TestService_Overview_CacheFailuresDegrade(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = errors.New("redis: connection refused")

	service, revenueSummarizer := newTestService(cache)

	overview, err := service.Overview(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, int64(500_000), overview.RevenueCents)
	assert.Equal(t, 1, revenueSummarizer.calls)
}

/*
TestService_Overview_DefaultWindow verifies the months fallback.
*/
func TestService_Overview_DefaultWindow(t *testing.T) {
	service, _ := newTestService(newFakeCache())

	overview, err := service.Overview(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, revenue.DefaultSummaryMonths, overview.Months)
}

/*
TestService_Overview_UpstreamFailure verifies that domain errors
propagate instead of being masked by the cache layer.
*/
func TestService_Overview_UpstreamFailure(t *testing.T) {
	cache := newFakeCache()
	service, revenueSummarizer := newTestService(cache)
	revenueSummarizer.err = errors.New("postgres down")

	_, err := service.Overview(context.Background(), 6)
	require.Error(t, err)
	assert.Zero(t, cache.sets, "failed rebuilds are never cached")
}
