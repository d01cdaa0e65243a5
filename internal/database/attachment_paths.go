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
)

// AttachmentPath returns the stored file name in column of row id. A row
// with no file returns ("", nil); a missing row returns ErrNotFound.
func (db *DB) AttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64) (string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", column, table)

	start := time.Now()
	var path sql.NullString
	err := sqlx.GetContext(ctx, db.conn, &path, db.conn.Rebind(q), id)
	record("select", table, start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s.%s: %w", table, column, err)
	}
	return path.String, nil
}

// SetAttachmentPath records path in column of row id. Zero affected rows
// returns ErrNotFound.
func (db *DB) SetAttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64, path string) error {
	return db.updateWhere(ctx, table, query.NewUpdate().Set(column, path), query.ColID, id)
}

// ClearAttachmentPath sets column of row id to NULL.
func (db *DB) ClearAttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64) error {
	return db.updateWhere(ctx, table, query.NewUpdate().Set(column, nil), query.ColID, id)
}
