//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubDB records the last statement and answers with canned results.
type stubDB struct {
	execTag pgconn.CommandTag
	execErr error
	rowErr  error

	lastSQL  string
	lastArgs []any
}

func (d *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.lastSQL, d.lastArgs = sql, args
	return d.execTag, d.execErr
}

func (d *stubDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.lastSQL, d.lastArgs = sql, args
	return nil, d.rowErr
}

func (d *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.lastSQL, d.lastArgs = sql, args
	return stubRow{err: d.rowErr}
}

type stubRow struct {
	err error
}

func (r stubRow) Scan(...any) error {
	return r.err
}
