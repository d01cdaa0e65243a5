// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

var sectorDataColumns = []query.Column{
	query.ColID, query.ColSectorID, query.ColSourceFile, query.ColRowNumber,
	query.ColRowData, query.ColCreatedAt,
}

var sectorDataInsertColumns = []query.Column{
	query.ColSectorID, query.ColSourceFile, query.ColRowNumber, query.ColRowData,
}

// ImportError reports a spreadsheet import that stopped at Row (1-based,
// counting data rows). Inserted rows remain unless the import ran in a
// transaction, in which case Inserted is 0 and RolledBack is set.
type ImportError struct {
	Inserted   int
	Row        int
	RolledBack bool
	Err        error
}

func (e *ImportError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("import failed at row %d, rolled back: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("import failed at row %d after %d rows inserted: %v", e.Row, e.Inserted, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// SectorData lists the imported rows of a sector in import order.
func (db *DB) SectorData(ctx context.Context, sectorID int64) ([]models.SectorDataRow, error) {
	b := query.NewFilter().Set(query.ColSectorID, sectorID)
	return listWhere[models.SectorDataRow](ctx, db, query.TableSectorData, sectorDataColumns, b)
}

// InsertSectorData inserts one sector_data row per element of rows, in
// order. The caller checks that the sector exists.
//
// Without transactional, rows are inserted one statement at a time and a
// failure leaves the earlier rows in place. With transactional, the batch
// runs in one transaction and a failure rolls it back.
func (db *DB) InsertSectorData(ctx context.Context, sectorID int64, sourceFile string, rows []models.RawJSON, transactional bool) (int, error) {
	if !transactional {
		return db.insertSectorRows(ctx, db.conn, sectorID, sourceFile, rows)
	}

	var inserted int
	err := db.inTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		inserted, err = db.insertSectorRows(ctx, tx, sectorID, sourceFile, rows)
		return err
	})
	if err != nil {
		var ie *ImportError
		if errors.As(err, &ie) {
			ie.Inserted = 0
			ie.RolledBack = true
		}
		return 0, err
	}
	return inserted, nil
}

func (db *DB) insertSectorRows(ctx context.Context, ext sqlx.ExtContext, sectorID int64, sourceFile string, rows []models.RawJSON) (int, error) {
	for i, row := range rows {
		rowNum := i + 1
		_, err := db.insert(ctx, ext, query.TableSectorData, sectorDataInsertColumns,
			[]interface{}{sectorID, sourceFile, rowNum, string(row)})
		if err != nil {
			return i, &ImportError{Inserted: i, Row: rowNum, Err: err}
		}
	}
	return len(rows), nil
}
