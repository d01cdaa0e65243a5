// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package models defines the rows and request payloads of the labor market API.

Row types carry both `db` tags (scanned by sqlx) and `json` tags (written to
clients). Nullable columns are pointers so that NULL round-trips as JSON
null.

Request types are decoded from JSON bodies and validated with the
validation package:

  - Create*Request: required fields are non-pointer or tagged `required`
  - Update*Request: every field is a pointer; nil means "leave unchanged"

Entities:

  - Indicator, SubIndicator, IndicatorDetail
  - Sector, SectorFile (documents), SectorDataRow (imported spreadsheet rows)
  - State, Occupation, KeyFact
  - DataInsight (tagged by data_category)
  - AboutSection (keyed by section_name)
*/
package models
