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

var keyFactColumns = []query.Column{
	query.ColID, query.ColStateID, query.ColSectorID, query.ColOccupationID,
	query.ColIndicatorID, query.ColFact,
}

// ListKeyFacts returns all key facts.
func (db *DB) ListKeyFacts(ctx context.Context) ([]models.KeyFact, error) {
	return listAll[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns)
}

// GetKeyFact returns one key fact or ErrNotFound.
func (db *DB) GetKeyFact(ctx context.Context, id int64) (*models.KeyFact, error) {
	return getOne[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns, query.ColID, id)
}

// FilterKeyFacts returns the key facts matching every non-nil filter.
// No filters at all fails with query.ErrValidation.
func (db *DB) FilterKeyFacts(ctx context.Context, f models.KeyFactFilter) ([]models.KeyFact, error) {
	b := query.NewFilter()
	query.SetOptional(b, query.ColStateID, f.StateID)
	query.SetOptional(b, query.ColSectorID, f.SectorID)
	query.SetOptional(b, query.ColOccupationID, f.OccupationID)
	query.SetOptional(b, query.ColIndicatorID, f.IndicatorID)
	return listWhere[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns, b)
}

// KeyFactsByReference returns the key facts whose idType column (state_id,
// sector_id, occupation_id or indicator_id) equals id. Unknown id types
// fail with query.ErrInvalidCategory.
func (db *DB) KeyFactsByReference(ctx context.Context, idType string, id int64) ([]models.KeyFact, error) {
	col, err := query.ReferenceColumn(idType)
	if err != nil {
		return nil, err
	}
	b := query.NewFilter().Set(col, id)
	return listWhere[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns, b)
}

// KeyFactsByStateAndIndicator returns the key facts of one state and indicator.
func (db *DB) KeyFactsByStateAndIndicator(ctx context.Context, stateID, indicatorID int64) ([]models.KeyFact, error) {
	b := query.NewFilter().
		Set(query.ColStateID, stateID).
		Set(query.ColIndicatorID, indicatorID)
	return listWhere[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns, b)
}

// KeyFactsByStateAndSector returns the key facts of one state and sector.
func (db *DB) KeyFactsByStateAndSector(ctx context.Context, stateID, sectorID int64) ([]models.KeyFact, error) {
	b := query.NewFilter().
		Set(query.ColStateID, stateID).
		Set(query.ColSectorID, sectorID)
	return listWhere[models.KeyFact](ctx, db, query.TableKeyFacts, keyFactColumns, b)
}

// CreateKeyFact inserts a key fact and returns its id.
func (db *DB) CreateKeyFact(ctx context.Context, req *models.CreateKeyFactRequest) (int64, error) {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColStateID, req.StateID)
	query.SetOptional(b, query.ColSectorID, req.SectorID)
	query.SetOptional(b, query.ColOccupationID, req.OccupationID)
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	b.Set(query.ColFact, req.Fact)
	return db.insertBuilt(ctx, query.TableKeyFacts, b)
}

// UpdateKeyFact applies the fields present in req. Absent references keep
// their stored values.
func (db *DB) UpdateKeyFact(ctx context.Context, id int64, req *models.UpdateKeyFactRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColStateID, req.StateID)
	query.SetOptional(b, query.ColSectorID, req.SectorID)
	query.SetOptional(b, query.ColOccupationID, req.OccupationID)
	query.SetOptional(b, query.ColIndicatorID, req.IndicatorID)
	query.SetOptional(b, query.ColFact, req.Fact)
	return db.updateWhere(ctx, query.TableKeyFacts, b, query.ColID, id)
}

// DeleteKeyFact removes a key fact or returns ErrNotFound.
func (db *DB) DeleteKeyFact(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableKeyFacts, query.ColID, id)
}
