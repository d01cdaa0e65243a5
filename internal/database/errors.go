// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"database/sql"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when no row matches a lookup, update or delete.
	ErrNotFound = errors.New("record not found")

	// ErrParentNotFound is returned when a child row references a parent
	// that does not exist.
	ErrParentNotFound = errors.New("parent record not found")
)

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

// isNoRows reports whether err means the statement matched nothing. Such
// results are not counted as query errors.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrParentNotFound)
}
