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

var indicatorColumns = []query.Column{
	query.ColID, query.ColName, query.ColDescription, query.ColValue, query.ColUnit,
	query.ColImageURL, query.ColCategory, query.ColSource, query.ColDateCollected,
	query.ColTrend, query.ColVisualizationType, query.ColRelatedIndicators,
}

// ListIndicators returns all indicators.
func (db *DB) ListIndicators(ctx context.Context) ([]models.Indicator, error) {
	return listAll[models.Indicator](ctx, db, query.TableIndicators, indicatorColumns)
}

// GetIndicator returns one indicator or ErrNotFound.
func (db *DB) GetIndicator(ctx context.Context, id int64) (*models.Indicator, error) {
	return getOne[models.Indicator](ctx, db, query.TableIndicators, indicatorColumns, query.ColID, id)
}

// CreateIndicator inserts an indicator and returns its id.
func (db *DB) CreateIndicator(ctx context.Context, req *models.CreateIndicatorRequest) (int64, error) {
	b := query.NewUpdate().Set(query.ColName, req.Name)
	indicatorFields(b, req.Description, req.Value, req.Unit, req.ImageURL, req.Category,
		req.Source, req.DateCollected, req.Trend, req.VisualizationType, req.RelatedIndicators)
	return db.insertBuilt(ctx, query.TableIndicators, b)
}

// UpdateIndicator applies the fields present in req.
func (db *DB) UpdateIndicator(ctx context.Context, id int64, req *models.UpdateIndicatorRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColName, req.Name)
	indicatorFields(b, req.Description, req.Value, req.Unit, req.ImageURL, req.Category,
		req.Source, req.DateCollected, req.Trend, req.VisualizationType, req.RelatedIndicators)
	return db.updateWhere(ctx, query.TableIndicators, b, query.ColID, id)
}

// DeleteIndicator removes an indicator or returns ErrNotFound.
func (db *DB) DeleteIndicator(ctx context.Context, id int64) error {
	return db.deleteWhere(ctx, query.TableIndicators, query.ColID, id)
}

func indicatorFields(b *query.Builder, description *string, value *float64, unit, imageURL, category,
	source, dateCollected, trend, visualizationType, relatedIndicators *string) {
	query.SetOptional(b, query.ColDescription, description)
	query.SetOptional(b, query.ColValue, value)
	query.SetOptional(b, query.ColUnit, unit)
	query.SetOptional(b, query.ColImageURL, imageURL)
	query.SetOptional(b, query.ColCategory, category)
	query.SetOptional(b, query.ColSource, source)
	query.SetOptional(b, query.ColDateCollected, dateCollected)
	query.SetOptional(b, query.ColTrend, trend)
	query.SetOptional(b, query.ColVisualizationType, visualizationType)
	query.SetOptional(b, query.ColRelatedIndicators, relatedIndicators)
}
