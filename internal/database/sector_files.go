// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

var sectorFileColumns = []query.Column{
	query.ColID, query.ColSectorID, query.ColTitle, query.ColFileName,
	query.ColFilePath, query.ColCreatedAt,
}

// AddSectorFile records a document for a sector in one statement that only
// inserts when the sector exists. A missing sector returns
// ErrParentNotFound and leaves no row behind.
func (db *DB) AddSectorFile(ctx context.Context, sectorID int64, title *string, fileName, filePath string) (int64, error) {
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT id, ?, ?, ? FROM %s WHERE id = ?",
		query.TableSectorFiles,
		query.JoinColumns([]query.Column{query.ColSectorID, query.ColTitle, query.ColFileName, query.ColFilePath}),
		query.TableSectors,
	)

	var titleArg interface{}
	if title != nil {
		titleArg = *title
	}

	id, err := db.insertReturningID(ctx, db.conn, query.TableSectorFiles, stmt,
		[]interface{}{titleArg, fileName, filePath, sectorID})
	if err != nil {
		if isNoRows(err) {
			return 0, ErrParentNotFound
		}
		return 0, fmt.Errorf("failed to insert into %s: %w", query.TableSectorFiles, err)
	}
	return id, nil
}

// SectorFiles lists the documents of a sector, oldest first.
func (db *DB) SectorFiles(ctx context.Context, sectorID int64) ([]models.SectorFile, error) {
	b := query.NewFilter().Set(query.ColSectorID, sectorID)
	return listWhere[models.SectorFile](ctx, db, query.TableSectorFiles, sectorFileColumns, b)
}

// LatestSectorFile returns the most recently added document of a sector,
// or ErrNotFound.
func (db *DB) LatestSectorFile(ctx context.Context, sectorID int64) (*models.SectorFile, error) {
	q := fmt.Sprintf("%s WHERE sector_id = ? ORDER BY id DESC LIMIT 1",
		selectQuery(query.TableSectorFiles, sectorFileColumns))
	rows, err := selectRows[models.SectorFile](ctx, db, query.TableSectorFiles, q, sectorID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// SectorFileByName returns the document stored under fileName, or
// ErrNotFound when no sector references that name.
func (db *DB) SectorFileByName(ctx context.Context, fileName string) (*models.SectorFile, error) {
	return getOne[models.SectorFile](ctx, db, query.TableSectorFiles, sectorFileColumns, query.ColFileName, fileName)
}

// GetSectorFile returns one document of a sector, or ErrNotFound.
func (db *DB) GetSectorFile(ctx context.Context, sectorID, fileID int64) (*models.SectorFile, error) {
	b := query.NewFilter().
		Set(query.ColID, fileID).
		Set(query.ColSectorID, sectorID)
	rows, err := listWhere[models.SectorFile](ctx, db, query.TableSectorFiles, sectorFileColumns, b)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// DeleteSectorFile removes a document row, or returns ErrNotFound.
func (db *DB) DeleteSectorFile(ctx context.Context, sectorID, fileID int64) error {
	return db.deleteMatching(ctx, query.TableSectorFiles, query.NewFilter().
		Set(query.ColID, fileID).
		Set(query.ColSectorID, sectorID))
}
