// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/models"
)

const subIndicatorNotFound = "Sub-indicator not found"

// CreateSubIndicator handles POST /subIndicators. The parent indicator must
// exist; the stored row is returned.
func (h *Handler) CreateSubIndicator(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubIndicatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	id, err := h.db.CreateSubIndicator(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, indicatorNotFound)
		return
	}

	row, err := h.db.GetSubIndicator(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, row)
}

// ListSubIndicators handles GET /subIndicators[?indicator_id=]. Without
// indicator_id every sub-indicator is listed.
func (h *Handler) ListSubIndicators(w http.ResponseWriter, r *http.Request) {
	indicatorID, err := queryID(r, "indicator_id")
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	rows, err := h.db.ListSubIndicators(r.Context(), indicatorID)
	respondList(w, r, rows, err, listSpec{notFound: subIndicatorNotFound})
}

// GetSubIndicator handles GET /subIndicators/{id}.
func (h *Handler) GetSubIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	row, err := h.db.GetSubIndicator(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateSubIndicator handles PUT /subIndicators/{id} and answers with the
// updated row.
func (h *Handler) UpdateSubIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	var req models.UpdateSubIndicatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	if err := h.db.UpdateSubIndicator(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	row, err := h.db.GetSubIndicator(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// DeleteSubIndicator handles DELETE /subIndicators/{id}; success is 204.
func (h *Handler) DeleteSubIndicator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}

	if err := h.db.DeleteSubIndicator(r.Context(), id); err != nil {
		respondErr(w, r, err, subIndicatorNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
