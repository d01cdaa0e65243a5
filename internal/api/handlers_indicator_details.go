// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/tomtom215/labormarket/internal/models"
)

const indicatorDetailNotFound = "Indicator details not found"

var indicatorDetailsFilterSpec = listSpec{
	emptyIsNotFound: true,
	notFound:        "No matching indicator details found.",
}

// CreateIndicatorDetail handles POST /indicatorDetails.
func (h *Handler) CreateIndicatorDetail(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIndicatorDetailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	id, err := h.db.CreateIndicatorDetail(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}
	respondCreated(w, "Indicator details created successfully", "id", id)
}

// FilterIndicatorDetails handles GET /indicatorDetails?indicator_id=&
// sector_id=&state_id=&key_fact_id=. At least one filter is required and
// an empty match is 404.
func (h *Handler) FilterIndicatorDetails(w http.ResponseWriter, r *http.Request) {
	ids, err := queryIDs(r, "indicator_id", "sector_id", "state_id", "key_fact_id")
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	rows, err := h.db.FilterIndicatorDetails(r.Context(), models.IndicatorDetailFilter{
		IndicatorID: ids[0],
		SectorID:    ids[1],
		StateID:     ids[2],
		KeyFactID:   ids[3],
	})
	respondList(w, r, rows, err, indicatorDetailsFilterSpec)
}

// GetIndicatorDetail handles GET /indicatorDetails/{id}.
func (h *Handler) GetIndicatorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	row, err := h.db.GetIndicatorDetail(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateIndicatorDetail handles PUT /indicatorDetails/{id}.
func (h *Handler) UpdateIndicatorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	var req models.UpdateIndicatorDetailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	if err := h.db.UpdateIndicatorDetail(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Indicator details updated successfully")
}

// DeleteIndicatorDetail handles DELETE /indicatorDetails/{id}.
func (h *Handler) DeleteIndicatorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}

	if err := h.db.DeleteIndicatorDetail(r.Context(), id); err != nil {
		respondErr(w, r, err, indicatorDetailNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Indicator details deleted successfully")
}
