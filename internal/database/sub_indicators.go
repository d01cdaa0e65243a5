// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

var subIndicatorColumns = []query.Column{
	query.ColID, query.ColIndicatorID, query.ColName, query.ColValue,
	query.ColUnit, query.ColDescription, query.ColImageURL,
}

// ListSubIndicators returns all sub-indicators, or only those of one
// indicator when indicatorID is set. An empty result is not an error.
func (db *DB) ListSubIndicators(ctx context.Context, indicatorID *int64) ([]models.SubIndicator, error) {
	if indicatorID == nil {
		return listAll[models.SubIndicator](ctx, db, query.TableSubIndicators, subIndicatorColumns)
	}
	b := query.NewFilter().Set(query.ColIndicatorID, *indicatorID)
	return listWhere[models.SubIndicator](ctx, db, query.TableSubIndicators, subIndicatorColumns, b)
}

// GetSubIndicator returns one sub-indicator or ErrNotFound.
func (db *DB) GetSubIndicator(ctx context.Context, id int64) (*models.SubIndicator, error) {
	return getOne[models.SubIndicator](ctx, db, query.TableSubIndicators, subIndicatorColumns, query.ColID, id)
}

// CreateSubIndicator inserts a sub-indicator under an existing indicator
// and returns its id. A missing indicator returns ErrParentNotFound.
func (db *DB) CreateSubIndicator(ctx context.Context, req *models.CreateSubIndicatorRequest) (int64, error) {
	b := query.NewUpdate().
		Set(query.ColIndicatorID, req.IndicatorID).
		Set(query.ColName, req.Name)
	query.SetOptional(b, query.ColValue, req.Value)
	query.SetOptional(b, query.ColUnit, req.Unit)
	query.SetOptional(b, query.ColDescription, req.Description)

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var id int64
	err := db.inTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := db.exists(ctx, tx, query.TableIndicators, req.IndicatorID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrParentNotFound
		}
		id, err = db.insert(ctx, tx, query.TableSubIndicators, b.Columns(), b.Args())
		return err
	})
	return id, err
}

// UpdateSubIndicator applies the fields present in req.
func (db *DB) UpdateSubIndicator(ctx context.Context, id int64, req *models.UpdateSubIndicatorRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColName, req.Name)
	query.SetOptional(b, query.ColValue, req.Value)
	query.SetOptional(b, query.ColUnit, req.Unit)
	query.SetOptional(b, query.ColDescription, req.Description)
	return db.updateWhere(ctx, query.TableSubIndicators, b, query.ColID, id)
}

// DeleteSubIndicator removes a sub-indicator or returns ErrNotFound.
func (db *DB) DeleteSubIndicator(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableSubIndicators, query.ColID, id)
}
