// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package treasury

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the treasury Store.
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) ListAll(context context.Context) ([]Account, error) {
	const query = `
		SELECT id, name, institution, currency, balancecents, updatedat
		FROM treasury_account
		ORDER BY balancecents DESC, name ASC`

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_treasury_store_list_failed: %w", err)
	}
	defer rows.Close()

	accounts := make([]Account, 0)
	for rows.Next() {
		var account Account
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Institution,
			&account.Currency,
			&account.BalanceCents,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_treasury_store_scan_failed: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_treasury_store_rows_failed: %w", err)
	}

	return accounts, nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, name, institution, currency, balancecents, updatedat
		FROM treasury_account
		WHERE id = $1`

	account := &Account{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Institution,
		&account.Currency,
		&account.BalanceCents,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres_treasury_store_find_failed: %w", err)
	}

	return account, nil
}
