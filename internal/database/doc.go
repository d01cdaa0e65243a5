// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package database is the record store of the labor market API.

It wraps a jmoiron/sqlx connection pool over one of four drivers, selected
by configuration:

	dialect    driver                       data source
	duckdb     github.com/duckdb/duckdb-go  database.path (embedded, default)
	sqlite     github.com/mattn/go-sqlite3  database.path (embedded)
	mysql      github.com/go-sql-driver     database.dsn
	postgres   github.com/lib/pq            database.dsn

SQL is written with '?' placeholders and rebound per driver with
sqlx.Rebind. Column names only ever come from the query package's closed
enumeration; request values only travel as arguments.

# Error Handling

Lookups that match no row return ErrNotFound. Child inserts whose parent row
does not exist return ErrParentNotFound. Every other failure is the driver
error wrapped with "failed to ...: %w".

# Schema

Bootstrap creates missing tables (CREATE TABLE IF NOT EXISTS) with DDL
rendered for the configured dialect. It never alters an existing table.

# Concurrency

A DB is safe for concurrent use. Connections are taken per statement and
every call runs under a deadline (database.query_timeout, 30s by default).
*/
package database
