// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import "errors"

var (
	// ErrMissingFile is returned when an upload carries no file, an empty
	// file name, or zero bytes.
	ErrMissingFile = errors.New("no file uploaded")

	// ErrNotFound is returned when no file is recorded for the request.
	ErrNotFound = errors.New("file not found")

	// ErrParentNotFound is returned when the record a file belongs to does
	// not exist.
	ErrParentNotFound = errors.New("parent record not found")

	// ErrStorageInconsistency is returned when the record store and the
	// blob store disagree: a recorded name with no blob, or an orphaned
	// blob that could not be cleaned up.
	ErrStorageInconsistency = errors.New("storage inconsistency")

	// ErrInvalidSpreadsheet is returned when an import upload cannot be
	// decoded.
	ErrInvalidSpreadsheet = errors.New("invalid spreadsheet")

	// ErrBlobNotFound is returned by a Store for a name it does not hold.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidName is returned by a Store for names that are not a single
	// path element.
	ErrInvalidName = errors.New("invalid blob name")
)
