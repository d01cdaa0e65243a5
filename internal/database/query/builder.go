// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package query

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is returned when a builder has nothing to render.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned for an unknown category or id type.
	ErrInvalidCategory = errors.New("invalid category")
)

// Mode selects how a Builder joins its clauses.
type Mode int

const (
	// ModeFilter joins clauses with AND for a WHERE clause.
	ModeFilter Mode = iota
	// ModeUpdate joins clauses with commas for a SET list.
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "filter"
}

// Builder constructs a parameterized fragment from column/value pairs.
// The zero value is not usable; use NewFilter or NewUpdate.
type Builder struct {
	mode    Mode
	columns []Column
	args    []interface{}
}

// NewFilter creates a builder for WHERE clauses.
func NewFilter() *Builder {
	return &Builder{mode: ModeFilter}
}

// NewUpdate creates a builder for partial UPDATE SET lists.
func NewUpdate() *Builder {
	return &Builder{mode: ModeUpdate}
}

// Mode returns the builder's mode.
func (b *Builder) Mode() Mode {
	return b.mode
}

// Set adds "col = ?" with value.
func (b *Builder) Set(col Column, value interface{}) *Builder {
	b.columns = append(b.columns, col)
	b.args = append(b.args, value)
	return b
}

// SetOptional adds col only when value is non-nil. Absent fields are never
// written as NULL.
func SetOptional[T any](b *Builder, col Column, value *T) *Builder {
	if value != nil {
		b.Set(col, *value)
	}
	return b
}

// Len returns the number of pairs added so far.
func (b *Builder) Len() int {
	return len(b.columns)
}

// IsEmpty returns true if no pairs have been added.
func (b *Builder) IsEmpty() bool {
	return len(b.columns) == 0
}

// Columns returns a copy of the columns added so far, in order.
func (b *Builder) Columns() []Column {
	out := make([]Column, len(b.columns))
	copy(out, b.columns)
	return out
}

// Args returns a copy of the values added so far, in column order.
func (b *Builder) Args() []interface{} {
	out := make([]interface{}, len(b.args))
	copy(out, b.args)
	return out
}

// Build renders the fragment and its arguments. The argument slice is a
// copy, so callers may append WHERE arguments to it.
func (b *Builder) Build() (string, []interface{}, error) {
	if b.IsEmpty() {
		if b.mode == ModeUpdate {
			return "", nil, validationError("at least one field is required to update")
		}
		return "", nil, validationError("at least one filter is required")
	}

	sep := " AND "
	if b.mode == ModeUpdate {
		sep = ", "
	}

	var sb strings.Builder
	for i, col := range b.columns {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(col))
		sb.WriteString(" = ?")
	}

	args := make([]interface{}, len(b.args), len(b.args)+1)
	copy(args, b.args)
	return sb.String(), args, nil
}

// Placeholders returns n comma separated '?' placeholders.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

type validationErr struct{ msg string }

func (e *validationErr) Error() string { return e.msg }
func (e *validationErr) Unwrap() error { return ErrValidation }

func validationError(msg string) error {
	return &validationErr{msg: msg}
}
