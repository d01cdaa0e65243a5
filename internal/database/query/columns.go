// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package query

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a table name the service may write into SQL text.
type Table string

const (
	TableIndicators       Table = "indicators"
	TableSectors          Table = "sectors"
	TableSectorFiles      Table = "sector_files"
	TableSectorData       Table = "sector_data"
	TableStates           Table = "states"
	TableOccupations      Table = "occupations"
	TableKeyFacts         Table = "keyfacts"
	TableSubIndicators    Table = "sub_indicators"
	TableIndicatorDetails Table = "indicator_details"
	TableDataInsights     Table = "data_insights"
	TableAbout            Table = "about"
)

// Column is a column name the service may write into SQL text.
type Column string

const (
	ColID Column = "id"

	// shared
	ColName        Column = "name"
	ColDescription Column = "description"
	ColValue       Column = "value"
	ColUnit        Column = "unit"
	ColCategory    Column = "category"
	ColImageURL    Column = "image_url"
	ColCreatedAt   Column = "created_at"
	ColUpdatedAt   Column = "updated_at"

	// references
	ColIndicatorID  Column = "indicator_id"
	ColSectorID     Column = "sector_id"
	ColStateID      Column = "state_id"
	ColOccupationID Column = "occupation_id"
	ColKeyFactID    Column = "key_fact_id"
	ColKeyFactsID   Column = "keyfacts_id"

	// indicators
	ColSource            Column = "source"
	ColDateCollected     Column = "date_collected"
	ColTrend             Column = "trend"
	ColVisualizationType Column = "visualization_type"
	ColRelatedIndicators Column = "related_indicators"

	// states
	ColPopulation      Column = "population"
	ColNumUniversities Column = "num_universities"
	ColNumSchools      Column = "num_schools"
	ColLaborForce      Column = "labor_force"

	// occupations
	ColAverageSalary Column = "average_salary"
	ColGrowthRate    Column = "growth_rate"

	// keyfacts, indicator_details
	ColFact              Column = "fact"
	ColDetailDescription Column = "detail_description"

	// data_insights
	ColDataCategory Column = "data_category"

	// about
	ColSectionName Column = "section_name"
	ColContent     Column = "content"

	// sector_files, sector_data
	ColTitle      Column = "title"
	ColFileName   Column = "file_name"
	ColFilePath   Column = "file_path"
	ColSourceFile Column = "source_file"
	ColRowNumber  Column = "row_num"
	ColRowData    Column = "row_data"
)

// Data insight categories.
const (
	CategoryIndicator  = "indicator"
	CategorySector     = "sector"
	CategoryOccupation = "occupation"
	CategoryState      = "state"
	CategoryKeyFacts   = "key_facts"
)

var categoryColumns = map[string]Column{
	CategoryIndicator:  ColIndicatorID,
	CategorySector:     ColSectorID,
	CategoryOccupation: ColOccupationID,
	CategoryState:      ColStateID,
	CategoryKeyFacts:   ColKeyFactsID,
}

// keyfacts may be looked up by any one of these reference columns.
var referenceColumns = map[string]Column{
	string(ColStateID):      ColStateID,
	string(ColSectorID):     ColSectorID,
	string(ColOccupationID): ColOccupationID,
	string(ColIndicatorID):  ColIndicatorID,
}

// CategoryColumn returns the data_insights reference column for a data
// category, or ErrInvalidCategory.
func CategoryColumn(category string) (Column, error) {
	col, ok := categoryColumns[category]
	if !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidCategory, category, strings.Join(Categories(), ", "))
	}
	return col, nil
}

// Categories returns the known data categories in sorted order.
func Categories() []string {
	out := make([]string, 0, len(categoryColumns))
	for c := range categoryColumns {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ReferenceColumn returns the keyfacts column for an id type such as
// "state_id", or ErrInvalidCategory.
func ReferenceColumn(idType string) (Column, error) {
	col, ok := referenceColumns[idType]
	if !ok {
		return "", fmt.Errorf("%w: invalid ID type %q", ErrInvalidCategory, idType)
	}
	return col, nil
}

// JoinColumns renders cols as a comma separated list.
func JoinColumns(cols []Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
