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

var aboutColumns = []query.Column{query.ColID, query.ColSectionName, query.ColContent}

// ListAboutSections returns all about sections.
func (db *DB) ListAboutSections(ctx context.Context) ([]models.AboutSection, error) {
	return listAll[models.AboutSection](ctx, db, query.TableAbout, aboutColumns)
}

// GetAboutSection returns the section with the given name or ErrNotFound.
func (db *DB) GetAboutSection(ctx context.Context, name string) (*models.AboutSection, error) {
	return getOne[models.AboutSection](ctx, db, query.TableAbout, aboutColumns, query.ColSectionName, name)
}

// CreateAboutSection inserts a section and returns its id.
func (db *DB) CreateAboutSection(ctx context.Context, req *models.CreateAboutSectionRequest) (int64, error) {
	b := query.NewUpdate().
		Set(query.ColSectionName, req.SectionName).
		Set(query.ColContent, req.Content)
	return db.insertBuilt(ctx, query.TableAbout, b)
}

// UpdateAboutSection replaces the content of a named section.
func (db *DB) UpdateAboutSection(ctx context.Context, name string, req *models.UpdateAboutSectionRequest) error {
	b := query.NewUpdate()
	query.SetOptional(b, query.ColContent, req.Content)
	return db.updateWhere(ctx, query.TableAbout, b, query.ColSectionName, name)
}

// DeleteAboutSection removes a named section or returns ErrNotFound.
func (db *DB) DeleteAboutSection(ctx context.Context, name string) error {
	return db.deleteWhere(ctx, query.TableAbout, query.ColSectionName, name)
}
