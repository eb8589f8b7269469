// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/finance/expense"
	"github.com/dmarchetti/fiscora/internal/platform/apperr"
)

type fakeStore struct {
	entries []expense.Entry
	totals  []expense.CategoryTotal
	created []*expense.Entry
}

func (store *fakeStore) ListByRange(_ context.Context, _, _ time.Time) ([]expense.Entry, error) {
	return store.entries, nil
}

func (store *fakeStore) TotalsByCategory(_ context.Context, _, _ time.Time) ([]expense.CategoryTotal, error) {
	return store.totals, nil
}

func (store *fakeStore) Create(_ context.Context, entry *expense.Entry) error {
	store.created = append(store.created, entry)
	return nil
}

/*
TestService_Breakdown_Shares verifies the percentage share math across
categories, summing to roughly one hundred.
*/
func TestService_Breakdown_Shares(t *testing.T) {
	store := &fakeStore{totals: []expense.CategoryTotal{
		{Category: "Payroll", CategorySlug: "payroll", TotalCents: 60_000},
		{Category: "Cloud Hosting", CategorySlug: "cloud-hosting", TotalCents: 30_000},
		{Category: "Travel", CategorySlug: "travel", TotalCents: 10_000},
	}}
	service := expense.NewService(store)

	totals, err := service.Breakdown(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.InDelta(t, 60.0, totals[0].SharePercent, 0.001)
	assert.InDelta(t, 30.0, totals[1].SharePercent, 0.001)
	assert.InDelta(t, 10.0, totals[2].SharePercent, 0.001)
}

/*
TestService_Breakdown_EmptyRange verifies that a range with no expenses
produces an empty slice rather than a division error.
*/
func TestService_Breakdown_EmptyRange(t *testing.T) {
	service := expense.NewService(&fakeStore{totals: []expense.CategoryTotal{}})

	totals, err := service.Breakdown(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, totals)
}

/*
TestService_List_RejectsInvertedRange verifies the date range ordering rule.
*/
func TestService_List_RejectsInvertedRange(t *testing.T) {
	service := expense.NewService(&fakeStore{})

	_, err := service.List(context.Background(), "2026-08-31", "2026-01-01")
	require.Error(t, err)
	assert.NotNil(t, apperr.As(err))
}

/*
TestService_Create verifies slug derivation and persistence of a new entry.
*/
func TestService_Create(t *testing.T) {
	store := &fakeStore{}
	service := expense.NewService(store)

	entry, err := service.Create(context.Background(), expense.CreateInput{
		Category:    "Café & Catering",
		IncurredOn:  "2026-08-15",
		AmountCents: 4250,
		Note:        "team offsite",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Café & Catering", entry.Category)
	assert.Equal(t, "cafe-catering", entry.CategorySlug)
	assert.Equal(t, int64(4250), entry.AmountCents)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), entry.IncurredOn)

	require.Len(t, store.created, 1)
	assert.Same(t, entry, store.created[0])
}

/*
TestService_Create_Rejections verifies input validation on creation.
*/
func TestService_Create_Rejections(t *testing.T) {
	service := expense.NewService(&fakeStore{})

	// Unparseable date.
	_, err := service.Create(context.Background(), expense.CreateInput{
		Category:    "Travel",
		IncurredOn:  "15/08/2026",
		AmountCents: 100,
	})
	assert.Error(t, err)

	// Category with no sluggable characters.
	_, err = service.Create(context.Background(), expense.CreateInput{
		Category:    "!!!",
		IncurredOn:  "2026-08-15",
		AmountCents: 100,
	})
	assert.Error(t, err)
}
