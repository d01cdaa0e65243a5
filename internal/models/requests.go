// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package models

// CreateIndicatorRequest is the body of POST /indicators.
type CreateIndicatorRequest struct {
	Name              string   `json:"name" validate:"required,max=255"`
	Description       *string  `json:"description"`
	Value             *float64 `json:"value"`
	Unit              *string  `json:"unit" validate:"omitempty,max=50"`
	ImageURL          *string  `json:"image_url"`
	Category          *string  `json:"category"`
	Source            *string  `json:"source"`
	DateCollected     *string  `json:"date_collected" validate:"omitempty,max=32"`
	Trend             *string  `json:"trend"`
	VisualizationType *string  `json:"visualization_type"`
	RelatedIndicators *string  `json:"related_indicators"`
}

// UpdateIndicatorRequest is the body of PUT /indicators/{id}.
type UpdateIndicatorRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description       *string  `json:"description"`
	Value             *float64 `json:"value"`
	Unit              *string  `json:"unit" validate:"omitempty,max=50"`
	ImageURL          *string  `json:"image_url"`
	Category          *string  `json:"category"`
	Source            *string  `json:"source"`
	DateCollected     *string  `json:"date_collected" validate:"omitempty,max=32"`
	Trend             *string  `json:"trend"`
	VisualizationType *string  `json:"visualization_type"`
	RelatedIndicators *string  `json:"related_indicators"`
}

// CreateSectorRequest is the body of POST /sectors.
type CreateSectorRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	IndicatorID *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
	ImageURL    *string `json:"image_url"`
}

// UpdateSectorRequest is the body of PUT /sectors/{id}.
type UpdateSectorRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	IndicatorID *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
	ImageURL    *string `json:"image_url"`
}

// CreateStateRequest is the body of POST /states.
type CreateStateRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
	Population      *int64  `json:"population" validate:"omitempty,gte=0"`
	NumUniversities *int64  `json:"num_universities" validate:"omitempty,gte=0"`
	NumSchools      *int64  `json:"num_schools" validate:"omitempty,gte=0"`
	LaborForce      *int64  `json:"labor_force" validate:"omitempty,gte=0"`
	SectorID        *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	IndicatorID     *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
}

// UpdateStateRequest is the body of PUT /states/{id}.
type UpdateStateRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
	Population      *int64  `json:"population" validate:"omitempty,gte=0"`
	NumUniversities *int64  `json:"num_universities" validate:"omitempty,gte=0"`
	NumSchools      *int64  `json:"num_schools" validate:"omitempty,gte=0"`
	LaborForce      *int64  `json:"labor_force" validate:"omitempty,gte=0"`
	SectorID        *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	IndicatorID     *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
}

// CreateOccupationRequest is the body of POST /occupations.
type CreateOccupationRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	AverageSalary *float64 `json:"average_salary" validate:"omitempty,gte=0"`
	GrowthRate    *float64 `json:"growth_rate"`
}

// UpdateOccupationRequest is the body of PUT /occupations/{id}.
type UpdateOccupationRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	AverageSalary *float64 `json:"average_salary" validate:"omitempty,gte=0"`
	GrowthRate    *float64 `json:"growth_rate"`
}

// CreateKeyFactRequest is the body of POST /keyfacts. At least one
// reference must be set.
type CreateKeyFactRequest struct {
	StateID      *int64 `json:"state_id" validate:"required_without_all=SectorID OccupationID IndicatorID,omitempty,gt=0"`
	SectorID     *int64 `json:"sector_id" validate:"omitempty,gt=0"`
	OccupationID *int64 `json:"occupation_id" validate:"omitempty,gt=0"`
	IndicatorID  *int64 `json:"indicator_id" validate:"omitempty,gt=0"`
	Fact         string `json:"fact" validate:"required"`
}

// UpdateKeyFactRequest is the body of PUT /keyfacts/{id}.
type UpdateKeyFactRequest struct {
	StateID      *int64  `json:"state_id" validate:"omitempty,gt=0"`
	SectorID     *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	OccupationID *int64  `json:"occupation_id" validate:"omitempty,gt=0"`
	IndicatorID  *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
	Fact         *string `json:"fact" validate:"omitempty,min=1"`
}

// KeyFactFilter holds the optional query-string filters of GET /keyfacts/filter.
type KeyFactFilter struct {
	StateID      *int64
	SectorID     *int64
	OccupationID *int64
	IndicatorID  *int64
}

// CreateSubIndicatorRequest is the body of POST /subIndicators.
type CreateSubIndicatorRequest struct {
	IndicatorID int64    `json:"indicator_id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required,max=255"`
	Value       *float64 `json:"value"`
	Unit        *string  `json:"unit" validate:"omitempty,max=50"`
	Description *string  `json:"description"`
}

// UpdateSubIndicatorRequest is the body of PUT /subIndicators/{id}.
type UpdateSubIndicatorRequest struct {
	IndicatorID *int64   `json:"indicator_id" validate:"omitempty,gt=0"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Value       *float64 `json:"value"`
	Unit        *string  `json:"unit" validate:"omitempty,max=50"`
	Description *string  `json:"description"`
}

// CreateIndicatorDetailRequest is the body of POST /indicatorDetails. At
// least one reference must be set.
type CreateIndicatorDetailRequest struct {
	IndicatorID       *int64  `json:"indicator_id" validate:"required_without_all=SectorID StateID KeyFactID,omitempty,gt=0"`
	SectorID          *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	StateID           *int64  `json:"state_id" validate:"omitempty,gt=0"`
	KeyFactID         *int64  `json:"key_fact_id" validate:"omitempty,gt=0"`
	DetailDescription *string `json:"detail_description"`
}

// UpdateIndicatorDetailRequest is the body of PUT /indicatorDetails/{id}.
type UpdateIndicatorDetailRequest struct {
	IndicatorID       *int64  `json:"indicator_id" validate:"omitempty,gt=0"`
	SectorID          *int64  `json:"sector_id" validate:"omitempty,gt=0"`
	StateID           *int64  `json:"state_id" validate:"omitempty,gt=0"`
	KeyFactID         *int64  `json:"key_fact_id" validate:"omitempty,gt=0"`
	DetailDescription *string `json:"detail_description"`
}

// IndicatorDetailFilter holds the query-string filters of GET /indicatorDetails.
type IndicatorDetailFilter struct {
	IndicatorID *int64
	SectorID    *int64
	StateID     *int64
	KeyFactID   *int64
}

// CreateDataInsightRequest is the body of POST /dataInsights. The category
// is checked against the known set by the database layer, which reports
// an invalid category distinctly from missing fields.
type CreateDataInsightRequest struct {
	DataCategory string      `json:"data_category" validate:"required"`
	CategoryID   int64       `json:"category_id" validate:"required,gt=0"`
	Name         string      `json:"name" validate:"required,max=255"`
	Description  *string     `json:"description"`
	Value        *FlexString `json:"value"`
}

// UpdateDataInsightRequest is the body of PUT /dataInsights/{category}/{id}.
type UpdateDataInsightRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string     `json:"description"`
	Value       *FlexString `json:"value"`
}

// CreateAboutSectionRequest is the body of POST /about.
type CreateAboutSectionRequest struct {
	SectionName string `json:"section_name" validate:"required,max=255"`
	Content     string `json:"content" validate:"required"`
}

// UpdateAboutSectionRequest is the body of PUT /about/{section_name}.
type UpdateAboutSectionRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
}
