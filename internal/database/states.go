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

var stateColumns = []query.Column{
	query.ColID, query.ColName, query.ColDescription, query.ColImageURL, query.ColPopulation,
	query.ColNumUniversities, query.ColNumSchools, query.ColLaborForce,
	query.ColSectorID, query.ColIndicatorID,
}

// ListStates returns all states.
func (db *DB) ListStates(ctx context.Context) ([]models.State, error) {
	return listAll[models.State](ctx, db, query.TableStates, stateColumns)
}

// GetState returns one state or ErrNotFound.
func (db *DB) GetState(ctx context.Context, id int64) (*models.State, error) {
	return getOne[models.State](ctx, db, query.TableStates, stateColumns, query.ColID, id)
}

// CreateState inserts a state and returns its id.
func (db *DB) CreateState(ctx context.Context, req *models.CreateStateRequest) (int64, error) {
	b := query.NewUpdate().Set(query.ColName, req.Name)
	stateFields(b, req.Description, req.ImageURL, req.Population, req.NumUniversities,
		req.NumSchools, req.LaborForce, req.SectorID, req.IndicatorID)
	return db.insertBuilt(ctx, query.TableStates, b)
}

// UpdateState applies the fields present in req.
func (db *DB) UpdateState(ctx context.Context, id int64, req *models.UpdateStateRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColName, req.Name)
	stateFields(b, req.Description, req.ImageURL, req.Population, req.NumUniversities,
		req.NumSchools, req.LaborForce, req.SectorID, req.IndicatorID)
	return db.updateWhere(ctx, query.TableStates, b, query.ColID, id)
}

// DeleteState removes a state or returns ErrNotFound.
func (db *DB) DeleteState(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableStates, query.ColID, id)
}

func stateFields(b *query.Builder, description, imageURL *string,
	population, numUniversities, numSchools, laborForce, sectorID, indicatorID *int64) {
	query.SetOptional(b, query.ColDescription, description)
	query.SetOptional(b, query.ColImageURL, imageURL)
	query.SetOptional(b, query.ColPopulation, population)
	query.SetOptional(b, query.ColNumUniversities, numUniversities)
	query.SetOptional(b, query.ColNumSchools, numSchools)
	query.SetOptional(b, query.ColLaborForce, laborForce)
	query.SetOptional(b, query.ColSectorID, sectorID)
	query.SetOptional(b, query.ColIndicatorID, indicatorID)
}
