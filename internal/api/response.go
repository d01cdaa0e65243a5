// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/logging"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string      `json:"message"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string                 `json:"code"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// messageBody is the JSON shape of plain acknowledgements.
type messageBody struct {
	Message string `json:"message"`
}

// listSpec controls how a list route treats an empty result.
type listSpec struct {
	emptyIsNotFound bool
	notFound        string
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageBody{Message: message})
}

// respondCreated answers a create with 201, the message and the new id under
// key ("indicatorId", "sectorId", ...).
func respondCreated(w http.ResponseWriter, message, key string, id int64) {
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": message,
		key:       id,
	})
}

// respondError writes an error body with an explicit status and code.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, errorBody{
		Message: message,
		Error: errorDetail{
			Code:      code,
			RequestID: logging.RequestIDFromContext(r.Context()),
			Details:   details,
		},
	})
}

// respondErr classifies err and writes it. Server errors are logged.
func respondErr(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	ae := classify(err, notFound)
	if ae.Status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().
			Str("code", ae.Code).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}
	respondError(w, r, ae.Status, ae.Code, ae.Message, ae.Details)
}

// respondList writes rows, or a 404 when the route treats an empty result
// as not found.
func respondList[T any](w http.ResponseWriter, r *http.Request, rows []T, err error, spec listSpec) {
	if err != nil {
		respondErr(w, r, err, spec.notFound)
		return
	}
	if len(rows) == 0 && spec.emptyIsNotFound {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, spec.notFound, nil)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	respondJSON(w, http.StatusOK, rows)
}

// respondObject streams a stored blob.
func respondObject(w http.ResponseWriter, r *http.Request, obj *attachments.Object) {
	defer func() {
		if err := obj.Close(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("file", obj.Name).Msg("Failed to close attachment")
		}
	}()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	if !obj.ModTime.IsZero() {
		w.Header().Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", obj.Name))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("file", obj.Name).Msg("Failed to stream attachment")
	}
}
