// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package expense

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

// NewStore creates a new PostgreSQL implementation of the expense Store.
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) ListByRange(context context.Context, from, to time.Time) ([]Entry, error) {
	const query = `
		SELECT id, category, categoryslug, incurredon, amountcents, note, createdat
		FROM expense_entry
		WHERE incurredon >= $1 AND incurredon <= $2
		ORDER BY incurredon DESC, createdat DESC`

	rows, err := store.pool.Query(context, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres_expense_store_list_failed: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.Category,
			&entry.CategorySlug,
			&entry.IncurredOn,
			&entry.AmountCents,
			&entry.Note,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_expense_store_scan_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_expense_store_rows_failed: %w", err)
	}

	return entries, nil
}

func (store *PostgresStore) TotalsByCategory(context context.Context, from, to time.Time) ([]CategoryTotal, error) {
	const query = `
		SELECT category, categoryslug, COALESCE(SUM(amountcents), 0) AS total
		FROM expense_entry
		WHERE incurredon >= $1 AND incurredon <= $2
		GROUP BY category, categoryslug
		ORDER BY total DESC`

	rows, err := store.pool.Query(context, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres_expense_store_totals_failed: %w", err)
	}
	defer rows.Close()

	totals := make([]CategoryTotal, 0)
	for rows.Next() {
		var total CategoryTotal
		if err := rows.Scan(&total.Category, &total.CategorySlug, &total.TotalCents); err != nil {
			return nil, fmt.Errorf("postgres_expense_store_totals_scan_failed: %w", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_expense_store_totals_rows_failed: %w", err)
	}

	return totals, nil
}

func (store *PostgresStore) Create(context context.Context, entry *Entry) error {
	const query = `
		INSERT INTO expense_entry (
			id, category, categoryslug, incurredon, amountcents, note, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(context, query,
		entry.ID,
		entry.Category,
		entry.CategorySlug,
		entry.IncurredOn,
		entry.AmountCents,
		entry.Note,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_expense_store_create_failed: %w", err)
	}

	return nil
}
