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

var occupationColumns = []query.Column{
	query.ColID, query.ColName, query.ColDescription, query.ColCategory,
	query.ColAverageSalary, query.ColGrowthRate, query.ColImageURL,
}

// ListOccupations returns all occupations.
func (db *DB) ListOccupations(ctx context.Context) ([]models.Occupation, error) {
	return listAll[models.Occupation](ctx, db, query.TableOccupations, occupationColumns)
}

// GetOccupation returns one occupation or ErrNotFound.
func (db *DB) GetOccupation(ctx context.Context, id int64) (*models.Occupation, error) {
	return getOne[models.Occupation](ctx, db, query.TableOccupations, occupationColumns, query.ColID, id)
}

// CreateOccupation inserts an occupation and returns its id.
func (db *DB) CreateOccupation(ctx context.Context, req *models.CreateOccupationRequest) (int64, error) {
	b := query.NewUpdate().Set(query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	query.SetOptional(b, query.ColCategory, req.Category)
	query.SetOptional(b, query.ColAverageSalary, req.AverageSalary)
	query.SetOptional(b, query.ColGrowthRate, req.GrowthRate)
	return db.insertBuilt(ctx, query.TableOccupations, b)
}

// UpdateOccupation applies the fields present in req.
func (db *DB) UpdateOccupation(ctx context.Context, id int64, req *models.UpdateOccupationRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	query.SetOptional(b, query.ColCategory, req.Category)
	query.SetOptional(b, query.ColAverageSalary, req.AverageSalary)
	query.SetOptional(b, query.ColGrowthRate, req.GrowthRate)
	return db.updateWhere(ctx, query.TableOccupations, b, query.ColID, id)
}

// DeleteOccupation removes an occupation or returns ErrNotFound.
func (db *DB) DeleteOccupation(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableOccupations, query.ColID, id)
}
