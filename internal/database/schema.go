// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
schema.go - Bootstrap Schema

Tables are declared once with two dialect placeholders:

  - {{id}}: the auto-assigned integer primary key
  - {{ts}}: a timestamp column defaulting to the insert time

DuckDB has no auto-increment column type, so each table gets a sequence and
an id defaulting to nextval. Parent references are plain BIGINT columns
without FOREIGN KEY constraints; reference integrity is checked by the
handlers and by the child-insert statements.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/logging"
)

type tableDef struct {
	name    query.Table
	columns string
	indexes []query.Column
}

var tableDefs = []tableDef{
	{
		name: query.TableIndicators,
		columns: `
	id {{id}},
	name VARCHAR(255) NOT NULL,
	description TEXT,
	value DOUBLE PRECISION,
	unit VARCHAR(50),
	image_url TEXT,
	category VARCHAR(255),
	source TEXT,
	date_collected VARCHAR(32),
	trend VARCHAR(255),
	visualization_type VARCHAR(255),
	related_indicators TEXT`,
	},
	{
		name: query.TableSectors,
		columns: `
	id {{id}},
	name VARCHAR(255) NOT NULL,
	description TEXT,
	indicator_id BIGINT,
	image_url TEXT`,
		indexes: []query.Column{query.ColIndicatorID},
	},
	{
		name: query.TableSectorFiles,
		columns: `
	id {{id}},
	sector_id BIGINT NOT NULL,
	title TEXT,
	file_name VARCHAR(512) NOT NULL,
	file_path TEXT NOT NULL,
	created_at {{ts}}`,
		indexes: []query.Column{query.ColSectorID, query.ColFileName},
	},
	{
		name: query.TableSectorData,
		columns: `
	id {{id}},
	sector_id BIGINT NOT NULL,
	source_file VARCHAR(512) NOT NULL,
	row_num INTEGER NOT NULL,
	row_data TEXT NOT NULL,
	created_at {{ts}}`,
		indexes: []query.Column{query.ColSectorID},
	},
	{
		name: query.TableStates,
		columns: `
	id {{id}},
	name VARCHAR(255) NOT NULL,
	description TEXT,
	image_url TEXT,
	population BIGINT,
	num_universities BIGINT,
	num_schools BIGINT,
	labor_force BIGINT,
	sector_id BIGINT,
	indicator_id BIGINT`,
	},
	{
		name: query.TableOccupations,
		columns: `
	id {{id}},
	name VARCHAR(255) NOT NULL,
	description TEXT,
	category VARCHAR(255),
	average_salary DOUBLE PRECISION,
	growth_rate DOUBLE PRECISION,
	image_url TEXT`,
	},
	{
		name: query.TableKeyFacts,
		columns: `
	id {{id}},
	state_id BIGINT,
	sector_id BIGINT,
	occupation_id BIGINT,
	indicator_id BIGINT,
	fact TEXT NOT NULL`,
		indexes: []query.Column{query.ColStateID, query.ColSectorID, query.ColIndicatorID},
	},
	{
		name: query.TableSubIndicators,
		columns: `
	id {{id}},
	indicator_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	value DOUBLE PRECISION,
	unit VARCHAR(50),
	description TEXT,
	image_url TEXT`,
		indexes: []query.Column{query.ColIndicatorID},
	},
	{
		name: query.TableIndicatorDetails,
		columns: `
	id {{id}},
	indicator_id BIGINT,
	sector_id BIGINT,
	state_id BIGINT,
	key_fact_id BIGINT,
	detail_description TEXT`,
	},
	{
		name: query.TableDataInsights,
		columns: `
	id {{id}},
	data_category VARCHAR(32) NOT NULL,
	indicator_id BIGINT,
	sector_id BIGINT,
	occupation_id BIGINT,
	state_id BIGINT,
	keyfacts_id BIGINT,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	value TEXT,
	created_at {{ts}},
	updated_at {{ts}}`,
		indexes: []query.Column{query.ColDataCategory},
	},
	{
		name: query.TableAbout,
		columns: `
	id {{id}},
	section_name VARCHAR(255) NOT NULL UNIQUE,
	content TEXT NOT NULL`,
	},
}

// SchemaStatements returns the DDL that Bootstrap executes for dialect d,
// in order. Every statement is idempotent.
func SchemaStatements(d Dialect) []string {
	var stmts []string
	var indexes []string

	for _, t := range tableDefs {
		idCol := "BIGSERIAL PRIMARY KEY"
		suffix := ""
		switch d {
		case DialectDuckDB:
			seq := "seq_" + string(t.name)
			stmts = append(stmts, fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s START 1", seq))
			idCol = fmt.Sprintf("BIGINT PRIMARY KEY DEFAULT nextval('%s')", seq)
		case DialectSQLite:
			idCol = "INTEGER PRIMARY KEY AUTOINCREMENT"
		case DialectMySQL:
			idCol = "BIGINT AUTO_INCREMENT PRIMARY KEY"
			suffix = " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
		}

		cols := strings.NewReplacer(
			"{{id}}", idCol,
			"{{ts}}", "TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
		).Replace(t.columns)
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s\n)%s", t.name, cols, suffix))

		// MySQL has no CREATE INDEX IF NOT EXISTS
		if d == DialectMySQL {
			continue
		}
		for _, col := range t.indexes {
			indexes = append(indexes, fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)", t.name, col, t.name, col))
		}
	}

	return append(stmts, indexes...)
}

// Bootstrap creates any missing tables and indexes.
func (db *DB) Bootstrap(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	stmts := SchemaStatements(db.dialect)
	for _, stmt := range stmts {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %s: %w", firstLine(stmt), err)
		}
	}

	logging.Debug().Int("statements", len(stmts)).Str("dialect", string(db.dialect)).Msg("Schema bootstrapped")
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
