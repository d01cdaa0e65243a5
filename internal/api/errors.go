// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeInvalidCategory      = "INVALID_CATEGORY"
	ErrCodeMissingFile          = "MISSING_FILE"
	ErrCodeInvalidSpreadsheet   = "INVALID_SPREADSHEET"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeParentNotFound       = "PARENT_NOT_FOUND"
	ErrCodeStorageInconsistency = "STORAGE_INCONSISTENCY"
	ErrCodeImportFailed         = "IMPORT_FAILED"
	ErrCodeDatabase             = "DATABASE_ERROR"
	ErrCodeRateLimited          = "TOO_MANY_REQUESTS"
)

// errBadRequest marks malformed input caught before validation: bad JSON,
// non-numeric ids, unparsable forms.
var errBadRequest = errors.New("bad request")

// apiError is a classified error ready to be written.
type apiError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
}

// classify maps err to a status and code. notFound is the message used
// when the error means the addressed row or file does not exist.
func classify(err error, notFound string) apiError {
	var (
		verr *validation.RequestValidationError
		ierr *database.ImportError
	)

	switch {
	case errors.As(err, &verr):
		ae := verr.ToAPIError()
		return apiError{http.StatusBadRequest, ae.Code, ae.Message, ae.Details}
	case errors.Is(err, errBadRequest), errors.Is(err, query.ErrValidation):
		return apiError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: err.Error()}
	case errors.Is(err, query.ErrInvalidCategory):
		return apiError{Status: http.StatusBadRequest, Code: ErrCodeInvalidCategory, Message: err.Error()}
	case errors.Is(err, attachments.ErrMissingFile):
		return apiError{Status: http.StatusBadRequest, Code: ErrCodeMissingFile, Message: "No file uploaded"}
	case errors.Is(err, attachments.ErrInvalidSpreadsheet):
		return apiError{Status: http.StatusBadRequest, Code: ErrCodeInvalidSpreadsheet, Message: err.Error()}
	// an inconsistency wraps its cause and must win over it
	case errors.Is(err, attachments.ErrStorageInconsistency):
		return apiError{Status: http.StatusInternalServerError, Code: ErrCodeStorageInconsistency, Message: err.Error()}
	case errors.Is(err, attachments.ErrParentNotFound), errors.Is(err, database.ErrParentNotFound):
		return apiError{Status: http.StatusNotFound, Code: ErrCodeParentNotFound, Message: notFound}
	case errors.Is(err, database.ErrNotFound), errors.Is(err, attachments.ErrNotFound):
		return apiError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: notFound}
	case errors.As(err, &ierr):
		return apiError{
			Status:  http.StatusInternalServerError,
			Code:    ErrCodeImportFailed,
			Message: err.Error(),
			Details: map[string]interface{}{
				"inserted":    ierr.Inserted,
				"row":         ierr.Row,
				"rolled_back": ierr.RolledBack,
			},
		}
	default:
		return apiError{Status: http.StatusInternalServerError, Code: ErrCodeDatabase, Message: err.Error()}
	}
}
