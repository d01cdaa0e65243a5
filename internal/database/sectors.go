// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

var sectorColumns = []query.Column{
	query.ColID, query.ColName, query.ColDescription, query.ColIndicatorID, query.ColImageURL,
}

// ListSectors returns all sectors.
func (db *DB) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return listAll[models.Sector](ctx, db, query.TableSectors, sectorColumns)
}

// GetSector returns one sector or ErrNotFound.
func (db *DB) GetSector(ctx context.Context, id int64) (*models.Sector, error) {
	return getOne[models.Sector](ctx, db, query.TableSectors, sectorColumns, query.ColID, id)
}

// CreateSector inserts a sector and returns its id.
func (db *DB) CreateSector(ctx context.Context, req *models.CreateSectorRequest) (int64, error) {
	b := query.NewUpdate().Set(query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColImageURL, req.ImageURL)
	return db.insertBuilt(ctx, query.TableSectors, b)
}

// UpdateSector applies the fields present in req.
func (db *DB) UpdateSector(ctx context.Context, id int64, req *models.UpdateSectorRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColImageURL, req.ImageURL)
	return db.updateWhere(ctx, query.TableSectors, b, query.ColID, id)
}

// DeleteSector removes a sector or returns ErrNotFound. Its documents and
// imported rows are left for the attachment layer to clean up.
func (db *DB) DeleteSector(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableSectors, query.ColID, id)
}
