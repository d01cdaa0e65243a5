// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/logging"
)

const defaultQueryTimeout = 30 * time.Second

// DB wraps the sqlx connection pool and provides data access methods
type DB struct {
	conn    *sqlx.DB
	dialect Dialect
	cfg     *config.DatabaseConfig
}

// New opens the configured database and, when enabled, bootstraps the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialect, err := ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	if dialect.Embedded() {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	dsn, err := dialect.dataSource(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, dialect: dialect, cfg: cfg}
	db.configureConnectionPool()

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect, err)
	}

	if cfg.BootstrapSchema {
		if err := db.Bootstrap(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	logging.Info().
		Str("dialect", string(dialect)).
		Bool("bootstrap_schema", cfg.BootstrapSchema).
		Msg("Database connection established")

	return db, nil
}

// NewWithConn wraps an already open connection. Tests use it with sqlmock.
func NewWithConn(conn *sql.DB, dialect Dialect, cfg *config.DatabaseConfig) *DB {
	if cfg == nil {
		cfg = &config.DatabaseConfig{Dialect: string(dialect)}
	}
	return &DB{
		conn:    sqlx.NewDb(conn, dialect.DriverName()),
		dialect: dialect,
		cfg:     cfg,
	}
}

// configureConnectionPool applies pool limits. Embedded engines get a
// single writer connection.
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if db.dialect == DialectSQLite {
		maxOpen = 1
	}
	if maxOpen > 0 {
		db.conn.SetMaxOpenConns(maxOpen)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	if db.cfg.ConnMaxLifetime > 0 {
		db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	}
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Dialect returns the configured SQL dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// ensureContext applies the query timeout when ctx carries no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if db.cfg != nil && db.cfg.QueryTimeout > 0 {
		timeout = db.cfg.QueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	return ctx, func() {}
}

// inTx runs fn inside a transaction, rolling back when fn fails.
func (db *DB) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logging.Warn().Err(rbErr).Msg("Transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
