// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/finance/budget"
	"github.com/dmarchetti/fiscora/internal/platform/apperr"
)

type fakeStore struct {
	lines   []budget.Line
	periods []string
}

func (store *fakeStore) ListByPeriod(_ context.Context, period string) ([]budget.Line, error) {
	store.periods = append(store.periods, period)
	return store.lines, nil
}

/*
TestService_List_DefaultsToCurrentMonth verifies the period fallback.
*/
func TestService_List_DefaultsToCurrentMonth(t *testing.T) {
	store := &fakeStore{}
	service := budget.NewService(store)

	_, err := service.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, store.periods, 1)
	assert.Equal(t, time.Now().UTC().Format("2006-01"), store.periods[0])
}

/*
TestService_List_RejectsMalformedPeriod verifies period validation.
*/
func TestService_List_RejectsMalformedPeriod(t *testing.T) {
	service := budget.NewService(&fakeStore{})

	for _, raw := range []string{"2026", "08-2026", "2026-13", "august"} {
		_, err := service.List(context.Background(), raw)
		require.Error(t, err, raw)
		assert.NotNil(t, apperr.As(err))
	}
}

/*
TestService_Utilization verifies per-line and overall utilization math,
including the zero-plan guard.
*/
func TestService_Utilization(t *testing.T) {
	store := &fakeStore{lines: []budget.Line{
		{ID: "a", Category: "Payroll", PlannedCents: 100_000, ActualCents: 75_000},
		{ID: "b", Category: "Marketing", PlannedCents: 50_000, ActualCents: 60_000},
		{ID: "c", Category: "Unplanned", PlannedCents: 0, ActualCents: 5_000},
	}}
	service := budget.NewService(store)

	utilization, err := service.Utilization(context.Background(), "2026-08")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", utilization.Period)
	require.Len(t, utilization.Lines, 3)

	assert.InDelta(t, 75.0, utilization.Lines[0].UtilizationPercent, 0.001)
	assert.InDelta(t, 120.0, utilization.Lines[1].UtilizationPercent, 0.001)
	// A line without a plan reports zero utilization, not a division error.
	assert.Zero(t, utilization.Lines[2].UtilizationPercent)

	assert.Equal(t, int64(150_000), utilization.PlannedCents)
	assert.Equal(t, int64(140_000), utilization.ActualCents)
	assert.InDelta(t, 93.333, utilization.UtilizationPercent, 0.001)
}

/*
TestService_Utilization_EmptyPeriod verifies the zero state for a period
with no budget lines.
*/
func TestService_Utilization_EmptyPeriod(t *testing.T) {
	service := budget.NewService(&fakeStore{lines: []budget.Line{}})

	utilization, err := service.Utilization(context.Background(), "2026-01")
	require.NoError(t, err)

	assert.Empty(t, utilization.Lines)
	assert.Zero(t, utilization.PlannedCents)
	assert.Zero(t, utilization.ActualCents)
	assert.Zero(t, utilization.UtilizationPercent)
}
