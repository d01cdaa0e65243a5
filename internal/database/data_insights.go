// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

var dataInsightColumns = []query.Column{
	query.ColID, query.ColDataCategory, query.ColIndicatorID, query.ColSectorID,
	query.ColOccupationID, query.ColStateID, query.ColKeyFactsID, query.ColName,
	query.ColDescription, query.ColValue, query.ColCreatedAt, query.ColUpdatedAt,
}

const newestFirst = " ORDER BY created_at DESC, id DESC"

// ListDataInsights returns all data insights, newest first.
func (db *DB) ListDataInsights(ctx context.Context) ([]models.DataInsight, error) {
	return selectRows[models.DataInsight](ctx, db, query.TableDataInsights,
		selectQuery(query.TableDataInsights, dataInsightColumns)+newestFirst)
}

// DataInsightsFor returns the insights attached to one entity, newest first.
// An unknown category fails with query.ErrInvalidCategory before any
// statement is issued.
func (db *DB) DataInsightsFor(ctx context.Context, category string, categoryID int64) ([]models.DataInsight, error) {
	filter, err := categoryFilter(category, categoryID)
	if err != nil {
		return nil, err
	}
	where, args, err := filter.Build()
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf("%s WHERE %s%s", selectQuery(query.TableDataInsights, dataInsightColumns), where, newestFirst)
	return selectRows[models.DataInsight](ctx, db, query.TableDataInsights, q, args...)
}

// CreateDataInsight inserts an insight, storing categoryID in the column
// selected by the category.
func (db *DB) CreateDataInsight(ctx context.Context, req *models.CreateDataInsightRequest) (int64, error) {
	col, err := query.CategoryColumn(req.DataCategory)
	if err != nil {
		return 0, err
	}

	b := query.NewUpdate().
		Set(query.ColDataCategory, req.DataCategory).
		Set(col, req.CategoryID).
		Set(query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	if req.Value != nil {
		b.Set(query.ColValue, req.Value.String())
	}
	now := time.Now().UTC()
	b.Set(query.ColCreatedAt, now).Set(query.ColUpdatedAt, now)

	return db.insertBuilt(ctx, query.TableDataInsights, b)
}

// UpdateDataInsights applies the fields present in req to the insights of
// one entity and bumps updated_at.
func (db *DB) UpdateDataInsights(ctx context.Context, category string, categoryID int64, req *models.UpdateDataInsightRequest) error {
	filter, err := categoryFilter(category, categoryID)
	if err != nil {
		return err
	}

	b := query.NewUpdate()
	query.SetOptional(b, query.ColName, req.Name)
	query.SetOptional(b, query.ColDescription, req.Description)
	if req.Value != nil {
		b.Set(query.ColValue, req.Value.String())
	}
	if !b.IsEmpty() {
		b.Set(query.ColUpdatedAt, time.Now().UTC())
	}
	return db.updateMatching(ctx, query.TableDataInsights, b, filter)
}

// DeleteDataInsights removes the insights of one entity, or ErrNotFound.
func (db *DB) DeleteDataInsights(ctx context.Context, category string, categoryID int64) error {
	filter, err := categoryFilter(category, categoryID)
	if err != nil {
		return err
	}
	return db.deleteMatching(ctx, query.TableDataInsights, filter)
}

// categoryFilter matches data_category and the reference column it selects.
func categoryFilter(category string, categoryID int64) (*query.Builder, error) {
	col, err := query.CategoryColumn(category)
	if err != nil {
		return nil, err
	}
	return query.NewFilter().
		Set(query.ColDataCategory, category).
		Set(col, categoryID), nil
}
