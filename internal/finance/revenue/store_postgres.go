// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the revenue Store.
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) ListByRange(context context.Context, from, to time.Time) ([]Entry, error) {
	const query = `
		SELECT id, month, source, amountcents, createdat
		FROM revenue_entry
		WHERE month >= $1 AND month <= $2
		ORDER BY month ASC, source ASC`

	rows, err := store.pool.Query(context, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres_revenue_store_list_failed: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Month, &entry.Source, &entry.AmountCents, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres_revenue_store_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_revenue_store_rows_failed: %w", err)
	}

	return entries, nil
}

func (store *PostgresStore) TotalBetween(context context.Context, from, to time.Time) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(amountcents), 0)
		FROM revenue_entry
		WHERE month >= $1 AND month <= $2`

	var total int64
	if err := store.pool.QueryRow(context, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres_revenue_store_total_failed: %w", err)
	}

	return total, nil
}
