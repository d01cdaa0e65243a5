// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tomtom215/labormarket/internal/config"
)

// Dialect identifies the SQL engine behind the store.
type Dialect string

const (
	DialectDuckDB   Dialect = "duckdb"
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

func init() {
	// sqlx has no bindvar entry for duckdb
	sqlx.BindDriver("duckdb", sqlx.QUESTION)
}

// ParseDialect returns the Dialect named by s.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case DialectDuckDB, DialectSQLite, DialectMySQL, DialectPostgres:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", s)
	}
}

// DriverName returns the database/sql driver name registered for d.
func (d Dialect) DriverName() string {
	switch d {
	case DialectSQLite:
		return "sqlite3"
	case DialectMySQL:
		return "mysql"
	case DialectPostgres:
		return "postgres"
	default:
		return "duckdb"
	}
}

// Embedded reports whether the dialect stores data in a local file.
func (d Dialect) Embedded() bool {
	return d == DialectDuckDB || d == DialectSQLite
}

// supportsReturning reports whether INSERT ... RETURNING id is available.
func (d Dialect) supportsReturning() bool {
	return d != DialectMySQL
}

// dataSource renders the driver connection string for cfg.
func (d Dialect) dataSource(cfg *config.DatabaseConfig) (string, error) {
	switch d {
	case DialectDuckDB:
		return cfg.Path + "?access_mode=read_write", nil
	case DialectSQLite:
		return cfg.Path + "?_busy_timeout=5000", nil
	case DialectMySQL:
		// Timestamps must scan into time.Time, and an update that matches a
		// row without changing it must still report one affected row.
		mc, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("failed to parse mysql dsn: %w", err)
		}
		mc.ParseTime = true
		mc.ClientFoundRows = true
		return mc.FormatDSN(), nil
	case DialectPostgres:
		return cfg.DSN, nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", d)
	}
}
