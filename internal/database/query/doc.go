// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

// Package query builds the parameterized SET and WHERE fragments used by the
// database package.
//
// # Overview
//
// A Builder collects (column, value) pairs and renders them as
// "col = ?" clauses. Filter builders join clauses with AND and constrain
// a SELECT or DELETE; update builders join them with commas and form the
// SET list of a partial UPDATE:
//
//	b := query.NewUpdate()
//	query.SetOptional(b, query.ColFact, req.Fact)
//	query.SetOptional(b, query.ColStateID, req.StateID)
//	set, args, err := b.Build()
//	// set:  "fact = ?, state_id = ?"   (absent fields are skipped)
//	// args: ["updated", 4]
//
// # Column Safety
//
// Only Column and Table values are ever written into SQL text. Both are
// closed enumerations declared in this package; request input reaches a
// Column only through the fixed lookup tables CategoryColumn and
// ReferenceColumn. Values always travel through the argument list.
//
// # Empty Builders
//
// Build fails with ErrValidation when no pair was added. In filter mode
// this refuses an unconstrained scan the caller did not ask for; in update
// mode it refuses an UPDATE that would change nothing.
//
// # Placeholders
//
// Fragments use '?' placeholders. The database package rebinds them for
// the configured driver (for example $1, $2 on PostgreSQL).
package query
