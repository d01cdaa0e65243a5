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

var indicatorDetailColumns = []query.Column{
	query.ColID, query.ColIndicatorID, query.ColSectorID, query.ColStateID,
	query.ColKeyFactID, query.ColDetailDescription,
}

// GetIndicatorDetail returns one indicator detail or ErrNotFound.
func (db *DB) GetIndicatorDetail(ctx context.Context, id int64) (*models.IndicatorDetail, error) {
	return getOne[models.IndicatorDetail](ctx, db, query.TableIndicatorDetails, indicatorDetailColumns, query.ColID, id)
}

// FilterIndicatorDetails returns the details matching every non-nil filter.
// No filters at all fails with query.ErrValidation.
func (db *DB) FilterIndicatorDetails(ctx context.Context, f models.IndicatorDetailFilter) ([]models.IndicatorDetail, error) {
	b := query.NewFilter()
	query.SetOptional(b, query.ColIndicatorID, f.IndicatorID)
	query.SetOptional(b, query.ColSectorID, f.SectorID)
	query.SetOptional(b, query.ColStateID, f.StateID)
	query.SetOptional(b, query.ColKeyFactID, f.KeyFactID)
	return listWhere[models.IndicatorDetail](ctx, db, query.TableIndicatorDetails, indicatorDetailColumns, b)
}

// CreateIndicatorDetail inserts a detail and returns its id.
func (db *DB) CreateIndicatorDetail(ctx context.Context, req *models.CreateIndicatorDetailRequest) (int64, error) {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColSectorID, req.SectorID)
	query.SetOptional(b, query.ColStateID, req.StateID)
	query.SetOptional(b, query.ColKeyFactID, req.KeyFactID)
	query.SetOptional(b, query.ColDetailDescription, req.DetailDescription)
	return db.insertBuilt(ctx, query.TableIndicatorDetails, b)
}

// UpdateIndicatorDetail applies the fields present in req.
func (db *DB) UpdateIndicatorDetail(ctx context.Context, id int64, req *models.UpdateIndicatorDetailRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColSectorID, req.SectorID)
	query.SetOptional(b, query.ColStateID, req.StateID)
	query.SetOptional(b, query.ColKeyFactID, req.KeyFactID)
	query.SetOptional(b, query.ColDetailDescription, req.DetailDescription)
	return db.updateWhere(ctx, query.TableIndicatorDetails, b, query.ColID, id)
}

// DeleteIndicatorDetail removes a detail or returns ErrNotFound.
func (db *DB) DeleteIndicatorDetail(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableIndicatorDetails, query.ColID, id)
}
