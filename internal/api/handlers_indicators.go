// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/models"
)

const indicatorNotFound = "Indicator not found"

// CreateIndicator handles POST /indicators.
func (h *Handler) CreateIndicator(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIndicatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	id, err := h.db.CreateIndicator(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}
	respondCreated(w, "Indicator created successfully", "indicatorId", id)
}

// ListIndicators handles GET /indicators.
func (h *Handler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListIndicators(r.Context())
	respondList(w, r, rows, err, listSpec{notFound: indicatorNotFound})
}

// GetIndicator handles GET /indicators/{id}.
func (h *Handler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	row, err := h.db.GetIndicator(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateIndicator handles PUT /indicators/{id}. Only the fields present in
// the body change.
func (h *Handler) UpdateIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	var req models.UpdateIndicatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	if err := h.db.UpdateIndicator(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Indicator updated successfully")
}

// DeleteIndicator handles DELETE /indicators/{id}.
func (h *Handler) DeleteIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	if err := h.db.DeleteIndicator(r.Context(), id); err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Indicator deleted successfully")
}
