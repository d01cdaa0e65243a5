// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

const sectorNotFound = "Sector not found"

// CreateSector handles POST /sectors.
func (h *Handler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	id, err := h.db.CreateSector(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondCreated(w, "Sector created successfully", "sectorId", id)
}

// ListSectors handles GET /sectors.
func (h *Handler) ListSectors(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListSectors(r.Context())
	respondList(w, r, rows, err, listSpec{notFound: sectorNotFound})
}

// GetSector handles GET /sectors/{id}.
func (h *Handler) GetSector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	row, err := h.db.GetSector(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateSector handles PUT /sectors/{id}.
func (h *Handler) UpdateSector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	var req models.UpdateSectorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	if err := h.db.UpdateSector(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Sector updated successfully")
}

// DeleteSector handles DELETE /sectors/{id}. Attached files are left in
// place.
func (h *Handler) DeleteSector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	if err := h.db.DeleteSector(r.Context(), id); err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Sector deleted successfully")
}

// SectorData handles GET /sectors/{id}/data.
func (h *Handler) SectorData(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	ok, err := h.db.Exists(r.Context(), query.TableSectors, id)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, sectorNotFound, nil)
		return
	}

	rows, err := h.db.SectorData(r.Context(), id)
	respondList(w, r, rows, err, listSpec{notFound: sectorNotFound})
}
