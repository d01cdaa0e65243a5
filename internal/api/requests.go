// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/validation"
)

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// decodeJSON reads one JSON object from the body into dst and validates it.
// Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", errBadRequest)
		}
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errBadRequest, name, sanitizeLogValue(raw))
	}
	return id, nil
}

// queryID parses an optional positive integer query parameter. Absent or
// empty parameters return nil.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer, got %q", errBadRequest, name, sanitizeLogValue(raw))
	}
	return &id, nil
}

// queryIDs parses several optional id parameters, stopping at the first
// malformed one.
func queryIDs(r *http.Request, names ...string) ([]*int64, error) {
	out := make([]*int64, len(names))
	for i, name := range names {
		id, err := queryID(r, name)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// formFile reads the named multipart file. A request that is not multipart,
// or has no such part, yields attachments.ErrMissingFile. The caller closes
// the returned closer.
func formFile(w http.ResponseWriter, r *http.Request, field string, maxBytes int64) (*attachments.Upload, io.Closer, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: upload exceeds %d bytes", errBadRequest, tooLarge.Limit)
		}
		return nil, nil, attachments.ErrMissingFile
	}

	return &attachments.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}, file, nil
}

// formValue returns a trimmed multipart form value, or nil when absent.
func formValue(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[name]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := strings.TrimSpace(vals[0])
	if v == "" {
		return nil
	}
	return &v
}
