// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package models

import "time"

// Indicator is a headline labor market measure such as unemployment rate.
type Indicator struct {
	ID                int64    `json:"id" db:"id"`
	Name              string   `json:"name" db:"name"`
	Description       *string  `json:"description" db:"description"`
	Value             *float64 `json:"value" db:"value"`
	Unit              *string  `json:"unit" db:"unit"`
	ImageURL          *string  `json:"image_url" db:"image_url"`
	Category          *string  `json:"category" db:"category"`
	Source            *string  `json:"source" db:"source"`
	DateCollected     *string  `json:"date_collected" db:"date_collected"`
	Trend             *string  `json:"trend" db:"trend"`
	VisualizationType *string  `json:"visualization_type" db:"visualization_type"`
	RelatedIndicators *string  `json:"related_indicators" db:"related_indicators"`
}

// Sector is an industry sector, optionally tied to an indicator.
type Sector struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	IndicatorID *int64  `json:"indicator_id" db:"indicator_id"`
	ImageURL    *string `json:"image_url" db:"image_url"`
}

// SectorFile is a document attached to a sector. A sector may have many.
type SectorFile struct {
	ID        int64     `json:"id" db:"id"`
	SectorID  int64     `json:"sector_id" db:"sector_id"`
	Title     *string   `json:"title" db:"title"`
	FileName  string    `json:"file_name" db:"file_name"`
	FilePath  string    `json:"file_path" db:"file_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SectorDataRow is one spreadsheet row imported for a sector. RowData holds
// the row as a JSON object keyed by the sheet's header cells.
type SectorDataRow struct {
	ID         int64     `json:"id" db:"id"`
	SectorID   int64     `json:"sector_id" db:"sector_id"`
	SourceFile string    `json:"source_file" db:"source_file"`
	RowNumber  int       `json:"row_number" db:"row_num"`
	RowData    RawJSON   `json:"row_data" db:"row_data"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// State is a state with its demographic and labor force figures.
type State struct {
	ID              int64   `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Description     *string `json:"description" db:"description"`
	ImageURL        *string `json:"image_url" db:"image_url"`
	Population      *int64  `json:"population" db:"population"`
	NumUniversities *int64  `json:"num_universities" db:"num_universities"`
	NumSchools      *int64  `json:"num_schools" db:"num_schools"`
	LaborForce      *int64  `json:"labor_force" db:"labor_force"`
	SectorID        *int64  `json:"sector_id" db:"sector_id"`
	IndicatorID     *int64  `json:"indicator_id" db:"indicator_id"`
}

// Occupation is a job family with salary and growth figures.
type Occupation struct {
	ID            int64    `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Description   *string  `json:"description" db:"description"`
	Category      *string  `json:"category" db:"category"`
	AverageSalary *float64 `json:"average_salary" db:"average_salary"`
	GrowthRate    *float64 `json:"growth_rate" db:"growth_rate"`
	ImageURL      *string  `json:"image_url" db:"image_url"`
}

// KeyFact is a short fact tied to at least one state, sector, occupation
// or indicator.
type KeyFact struct {
	ID           int64  `json:"id" db:"id"`
	StateID      *int64 `json:"state_id" db:"state_id"`
	SectorID     *int64 `json:"sector_id" db:"sector_id"`
	OccupationID *int64 `json:"occupation_id" db:"occupation_id"`
	IndicatorID  *int64 `json:"indicator_id" db:"indicator_id"`
	Fact         string `json:"fact" db:"fact"`
}

// SubIndicator breaks an indicator down into a named category.
type SubIndicator struct {
	ID          int64    `json:"id" db:"id"`
	IndicatorID int64    `json:"indicator_id" db:"indicator_id"`
	Name        string   `json:"name" db:"name"`
	Value       *float64 `json:"value" db:"value"`
	Unit        *string  `json:"unit" db:"unit"`
	Description *string  `json:"description" db:"description"`
	ImageURL    *string  `json:"image_url" db:"image_url"`
}

// IndicatorDetail is free text tied to at least one indicator, sector,
// state or key fact.
type IndicatorDetail struct {
	ID                int64   `json:"id" db:"id"`
	IndicatorID       *int64  `json:"indicator_id" db:"indicator_id"`
	SectorID          *int64  `json:"sector_id" db:"sector_id"`
	StateID           *int64  `json:"state_id" db:"state_id"`
	KeyFactID         *int64  `json:"key_fact_id" db:"key_fact_id"`
	DetailDescription *string `json:"detail_description" db:"detail_description"`
}

// DataInsight is a named value attached to one entity. DataCategory decides
// which single reference column is populated.
type DataInsight struct {
	ID           int64     `json:"id" db:"id"`
	DataCategory string    `json:"data_category" db:"data_category"`
	IndicatorID  *int64    `json:"indicator_id" db:"indicator_id"`
	SectorID     *int64    `json:"sector_id" db:"sector_id"`
	OccupationID *int64    `json:"occupation_id" db:"occupation_id"`
	StateID      *int64    `json:"state_id" db:"state_id"`
	KeyFactsID   *int64    `json:"keyfacts_id" db:"keyfacts_id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description" db:"description"`
	Value        *string   `json:"value" db:"value"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AboutSection is a named block of content for the about page.
type AboutSection struct {
	ID          int64  `json:"id" db:"id"`
	SectionName string `json:"section_name" db:"section_name"`
	Content     string `json:"content" db:"content"`
}
