// ABOUTME: Data access facade: the four query primitives every service
// ABOUTME: builds on, plus transactions for multi-statement groups.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means a facade call arrived before the store
	// was opened. Retryable once initialization completes.
	ErrStoreUnavailable = errors.New("store not initialized")

	// ErrNoRows means a FetchFirst query matched nothing.
	ErrNoRows = errors.New("no matching rows")
)

// Row is the scanning subset of database/sql rows handed to fetch
// callbacks. Values are always bound as parameters, never interpolated
// into query text.
type Row interface {
	Scan(dest ...any) error
}

// Querier is implemented by both Store and Tx so service queries can
// run inside or outside a transaction.
type Querier interface {
	Execute(ctx context.Context, query string, args ...any) error
	ExecuteResult(ctx context.Context, query string, args ...any) (int64, error)
	FetchFirst(ctx context.Context, scan func(Row) error, query string, args ...any) error
	FetchAll(ctx context.Context, scan func(Row) error, query string, args ...any) error
}

// runner is the shared database/sql surface of *sql.DB and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) runner() (runner, error) {
	if s == nil || s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db, nil
}

// Execute runs a statement expecting no result rows.
func (s *Store) Execute(ctx context.Context, query string, args ...any) error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	return execute(ctx, r, query, args...)
}

// ExecuteResult runs a statement and reports the affected row count.
func (s *Store) ExecuteResult(ctx context.Context, query string, args ...any) (int64, error) {
	r, err := s.runner()
	if err != nil {
		return 0, err
	}
	return executeResult(ctx, r, query, args...)
}

// FetchFirst runs a query and scans the first matching row, or returns
// ErrNoRows if none match.
func (s *Store) FetchFirst(ctx context.Context, scan func(Row) error, query string, args ...any) error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	return fetchFirst(ctx, r, scan, query, args...)
}

// FetchAll runs a query and invokes scan once per matching row, in
// store-native order unless the statement specifies ORDER BY.
func (s *Store) FetchAll(ctx context.Context, scan func(Row) error, query string, args ...any) error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	return fetchAll(ctx, r, scan, query, args...)
}

// Tx exposes the facade primitives inside a transaction.
type Tx struct {
	tx *sql.Tx
}

// WithTx runs fn inside a single transaction, committing on nil error
// and rolling back otherwise. Multi-statement sequences (registration,
// stats save plus bodyweight log, session finish, account deletion) go
// through here so partial failure cannot leave orphaned rows.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	if s == nil || s.db == nil {
		return ErrStoreUnavailable
	}
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&Tx{tx: sqlTx}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Execute runs a statement expecting no result rows.
func (t *Tx) Execute(ctx context.Context, query string, args ...any) error {
	return execute(ctx, t.tx, query, args...)
}

// ExecuteResult runs a statement and reports the affected row count.
func (t *Tx) ExecuteResult(ctx context.Context, query string, args ...any) (int64, error) {
	return executeResult(ctx, t.tx, query, args...)
}

// FetchFirst runs a query and scans the first matching row.
func (t *Tx) FetchFirst(ctx context.Context, scan func(Row) error, query string, args ...any) error {
	return fetchFirst(ctx, t.tx, scan, query, args...)
}

// FetchAll runs a query and invokes scan once per matching row.
func (t *Tx) FetchAll(ctx context.Context, scan func(Row) error, query string, args ...any) error {
	return fetchAll(ctx, t.tx, scan, query, args...)
}

func execute(ctx context.Context, r runner, query string, args ...any) error {
	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func executeResult(ctx context.Context, r runner, query string, args ...any) (int64, error) {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("execute: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

func fetchFirst(ctx context.Context, r runner, scan func(Row) error, query string, args ...any) error {
	row := r.QueryRowContext(ctx, query, args...)
	if err := scan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRows
		}
		return fmt.Errorf("fetch first: %w", err)
	}
	return nil
}

func fetchAll(ctx context.Context, r runner, scan func(Row) error, query string, args ...any) error {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("fetch all: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	return rows.Err()
}
