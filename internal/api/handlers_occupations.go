// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/models"
)

const occupationNotFound = "Occupation not found"

// CreateOccupation handles POST /occupations and answers with the stored
// row.
func (h *Handler) CreateOccupation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOccupationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	id, err := h.db.CreateOccupation(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	row, err := h.db.GetOccupation(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, row)
}

// ListOccupations handles GET /occupations.
func (h *Handler) ListOccupations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListOccupations(r.Context())
	respondList(w, r, rows, err, listSpec{notFound: occupationNotFound})
}

// GetOccupation handles GET /occupations/{id}.
func (h *Handler) GetOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	row, err := h.db.GetOccupation(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateOccupation handles PUT /occupations/{id} and answers with the
// updated row.
func (h *Handler) UpdateOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	var req models.UpdateOccupationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	if err := h.db.UpdateOccupation(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	row, err := h.db.GetOccupation(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// DeleteOccupation handles DELETE /occupations/{id}; success is 204.
func (h *Handler) DeleteOccupation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}

	if err := h.db.DeleteOccupation(r.Context(), id); err != nil {
		respondErr(w, r, err, occupationNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
