// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmarchetti/fiscora/pkg/pagination"
)

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the billing Store.
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) List(context context.Context, status string, params pagination.Params) ([]Invoice, int, error) {
	// Status doubles as the filter switch: an empty string matches every row.
	const countQuery = `
		SELECT COUNT(*)
		FROM invoice
		WHERE ($1 = '' OR status = $1)`

	var total int
	if err := store.pool.QueryRow(context, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_billing_store_count_failed: %w", err)
	}

	const listQuery = `
		SELECT id, number, customer, amountcents, status, issuedon, dueon, paidon
		FROM invoice
		WHERE ($1 = '' OR status = $1)
		ORDER BY issuedon DESC, number DESC
		LIMIT $2 OFFSET $3`

	rows, err := store.pool.Query(context, listQuery, status, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_billing_store_list_failed: %w", err)
	}
	defer rows.Close()

	invoices := make([]Invoice, 0, params.Limit)
	for rows.Next() {
		var invoice Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.Number,
			&invoice.Customer,
			&invoice.AmountCents,
			&invoice.Status,
			&invoice.IssuedOn,
			&invoice.DueOn,
			&invoice.PaidOn,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_billing_store_scan_failed: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_billing_store_rows_failed: %w", err)
	}

	return invoices, total, nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Invoice, error) {
	const query = `
		SELECT id, number, customer, amountcents, status, issuedon, dueon, paidon
		FROM invoice
		WHERE id = $1`

	invoice := &Invoice{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&invoice.ID,
		&invoice.Number,
		&invoice.Customer,
		&invoice.AmountCents,
		&invoice.Status,
		&invoice.IssuedOn,
		&invoice.DueOn,
		&invoice.PaidOn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres_billing_store_find_failed: %w", err)
	}

	return invoice, nil
}

func (store *PostgresStore) Outstanding(context context.Context) (int, int64, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(amountcents), 0)
		FROM invoice
		WHERE status IN ('sent', 'overdue')`

	var count int
	var amountCents int64
	if err := store.pool.QueryRow(context, query).Scan(&count, &amountCents); err != nil {
		return 0, 0, fmt.Errorf("postgres_billing_store_outstanding_failed: %w", err)
	}

	return count, amountCents, nil
}

func (store *PostgresStore) MarkPaid(context context.Context, id string, paidOn time.Time) error {
	const query = `
		UPDATE invoice
		SET status = 'paid', paidon = $2
		WHERE id = $1`

	tag, err := store.pool.Exec(context, query, id, paidOn)
	if err != nil {
		return fmt.Errorf("postgres_billing_store_mark_paid_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
