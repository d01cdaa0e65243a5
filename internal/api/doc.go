// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package api serves the labor market REST API over a chi router.

Handler methods are split by resource:

  - handlers.go: Handler struct and constructor
  - handlers_health.go: /test, /health
  - handlers_indicators.go, handlers_sectors.go, handlers_states.go,
    handlers_occupations.go, handlers_sub_indicators.go: entity CRUD
  - handlers_keyfacts.go, handlers_indicator_details.go: CRUD plus filtered
    lookups
  - handlers_data_insights.go: insights keyed by (data_category, category_id)
  - handlers_about.go: about sections keyed by section_name
  - handlers_attachments.go: image slots, sector documents, spreadsheet
    import and static /uploads serving

Successful responses are the row, list or message object itself. Errors
are always

	{"message": "...", "error": {"code": "...", "request_id": "..."}}

and are produced by one classification function (errors.go) so every
route maps the same failure to the same status.
*/
package api
