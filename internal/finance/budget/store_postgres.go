// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package budget

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the budget Store.
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) ListByPeriod(context context.Context, period string) ([]Line, error) {
	const query = `
		SELECT id, category, categoryslug, period, plannedcents, actualcents
		FROM budget_line
		WHERE period = $1
		ORDER BY plannedcents DESC, category ASC`

	rows, err := store.pool.Query(context, query, period)
	if err != nil {
		return nil, fmt.Errorf("postgres_budget_store_list_failed: %w", err)
	}
	defer rows.Close()

	lines := make([]Line, 0)
	for rows.Next() {
		var line Line
		if err := rows.Scan(
			&line.ID,
			&line.Category,
			&line.CategorySlug,
			&line.Period,
			&line.PlannedCents,
			&line.ActualCents,
		); err != nil {
			return nil, fmt.Errorf("postgres_budget_store_scan_failed: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_budget_store_rows_failed: %w", err)
	}

	return lines, nil
}
