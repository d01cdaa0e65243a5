// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/models"
)

const stateNotFound = "State not found"

// CreateState handles POST /states.
func (h *Handler) CreateState(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}

	id, err := h.db.CreateState(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}
	respondCreated(w, "State created successfully", "stateId", id)
}

// ListStates handles GET /states.
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListStates(r.Context())
	respondList(w, r, rows, err, listSpec{notFound: stateNotFound})
}

// GetState handles GET /states/{id}.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}

	row, err := h.db.GetState(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateState handles PUT /states/{id}.
func (h *Handler) UpdateState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}

	var req models.UpdateStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}

	if err := h.db.UpdateState(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "State updated successfully")
}

// DeleteState handles DELETE /states/{id}.
func (h *Handler) DeleteState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}

	if err := h.db.DeleteState(r.Context(), id); err != nil {
		respondErr(w, r, err, stateNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "State deleted successfully")
}
