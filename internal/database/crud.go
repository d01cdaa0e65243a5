// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/metrics"
)

// record observes one statement. No-row outcomes are not errors here.
func record(operation string, table query.Table, start time.Time, err error) {
	if isNoRows(err) {
		err = nil
	}
	metrics.RecordDBQuery(operation, string(table), time.Since(start), err)
}

// selectQuery renders "SELECT cols FROM table".
func selectQuery(table query.Table, cols []query.Column) string {
	return fmt.Sprintf("SELECT %s FROM %s", query.JoinColumns(cols), table)
}

// getOne loads a single row matching where, or ErrNotFound.
func getOne[T any](ctx context.Context, db *DB, table query.Table, cols []query.Column, where query.Column, arg interface{}) (*T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	q := fmt.Sprintf("%s WHERE %s = ?", selectQuery(table, cols), where)

	start := time.Now()
	var row T
	err := sqlx.GetContext(ctx, db.conn, &row, db.conn.Rebind(q), arg)
	record("select", table, start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", table, err)
	}
	return &row, nil
}

// selectRows runs q and scans every row. An empty result is an empty,
// non-nil slice so it encodes as [].
func selectRows[T any](ctx context.Context, db *DB, table query.Table, q string, args ...interface{}) ([]T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows := []T{}
	err := sqlx.SelectContext(ctx, db.conn, &rows, db.conn.Rebind(q), args...)
	record("select", table, start, err)

	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return rows, nil
}

// listAll returns every row of table ordered by id.
func listAll[T any](ctx context.Context, db *DB, table query.Table, cols []query.Column) ([]T, error) {
	return selectRows[T](ctx, db, table, selectQuery(table, cols)+" ORDER BY id")
}

// listWhere returns the rows matching a filter builder, ordered by id.
// A builder with no filters fails with query.ErrValidation before any
// statement is issued.
func listWhere[T any](ctx context.Context, db *DB, table query.Table, cols []query.Column, filter *query.Builder) ([]T, error) {
	where, args, err := filter.Build()
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf("%s WHERE %s ORDER BY id", selectQuery(table, cols), where)
	return selectRows[T](ctx, db, table, q, args...)
}

// insert adds one row and returns its generated id.
func (db *DB) insert(ctx context.Context, ext sqlx.ExtContext, table query.Table, cols []query.Column, args []interface{}) (int64, error) {
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, query.JoinColumns(cols), query.Placeholders(len(cols)))
	id, err := db.insertReturningID(ctx, ext, table, stmt, args)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

// insertReturningID executes an INSERT and reports the new id. A statement
// that inserts nothing (INSERT ... SELECT with no source row) returns
// ErrParentNotFound.
func (db *DB) insertReturningID(ctx context.Context, ext sqlx.ExtContext, table query.Table, stmt string, args []interface{}) (id int64, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { record("insert", table, start, err) }()

	if db.dialect.supportsReturning() {
		err = ext.QueryRowxContext(ctx, ext.Rebind(stmt+" RETURNING id"), args...).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrParentNotFound
		}
		return id, err
	}

	result, err := ext.ExecContext(ctx, ext.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return 0, ErrParentNotFound
	}
	return result.LastInsertId()
}

// exec runs a statement that must touch at least one row.
func (db *DB) exec(ctx context.Context, operation string, table query.Table, stmt string, args ...interface{}) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	result, err := db.conn.ExecContext(ctx, db.conn.Rebind(stmt), args...)
	record(operation, table, start, err)
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", operation, table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// updateWhere applies a partial update built in update mode to the row
// where col = arg.
func (db *DB) updateWhere(ctx context.Context, table query.Table, set *query.Builder, where query.Column, arg interface{}) error {
	return db.updateMatching(ctx, table, set, query.NewFilter().Set(where, arg))
}

// updateMatching applies set to the rows matching filter. No fields fails
// with query.ErrValidation without touching the store; no matching row
// returns ErrNotFound.
func (db *DB) updateMatching(ctx context.Context, table query.Table, set, filter *query.Builder) error {
	setClause, args, err := set.Build()
	if err != nil {
		return err
	}
	where, whereArgs, err := filter.Build()
	if err != nil {
		return err
	}
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, setClause, where)
	return db.exec(ctx, "update", table, stmt, append(args, whereArgs...)...)
}

// deleteWhere removes the rows where col = arg, or ErrNotFound.
func (db *DB) deleteWhere(ctx context.Context, table query.Table, where query.Column, arg interface{}) error {
	return db.deleteMatching(ctx, table, query.NewFilter().Set(where, arg))
}

// deleteMatching removes the rows matching filter, or ErrNotFound.
func (db *DB) deleteMatching(ctx context.Context, table query.Table, filter *query.Builder) error {
	where, args, err := filter.Build()
	if err != nil {
		return err
	}
	return db.exec(ctx, "delete", table, fmt.Sprintf("DELETE FROM %s WHERE %s", table, where), args...)
}

// exists reports whether table has a row with the given id.
func (db *DB) exists(ctx context.Context, q sqlx.QueryerContext, table query.Table, id int64) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var one int
	err := q.QueryRowxContext(ctx, db.conn.Rebind(fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table)), id).Scan(&one)
	record("select", table, start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return true, nil
}

// insertBuilt inserts the column/value pairs collected by b.
func (db *DB) insertBuilt(ctx context.Context, table query.Table, b *query.Builder) (int64, error) {
	return db.insert(ctx, db.conn, table, b.Columns(), b.Args())
}

// Exists reports whether table has a row with the given id.
func (db *DB) Exists(ctx context.Context, table query.Table, id int64) (bool, error) {
	return db.exists(ctx, db.conn, table, id)
}
