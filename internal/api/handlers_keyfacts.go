// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/labormarket/internal/models"
)

const keyFactNotFound = "Key fact not found"

// Empty results are 404 on the two path-segment combination lookups only;
// every other key fact listing answers an empty array.
var (
	keyFactsByStateAndIndicatorSpec = listSpec{
		emptyIsNotFound: true,
		notFound:        "No key facts found for the specified state and indicator",
	}
	keyFactsByStateAndSectorSpec = listSpec{
		emptyIsNotFound: true,
		notFound:        "No key facts found for this state and sector combination",
	}
	keyFactsListSpec = listSpec{notFound: keyFactNotFound}
)

// CreateKeyFact handles POST /keyfacts. At least one of state_id,
// sector_id, occupation_id, indicator_id is required.
func (h *Handler) CreateKeyFact(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKeyFactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	id, err := h.db.CreateKeyFact(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	respondCreated(w, "Key fact created successfully", "keyfactId", id)
}

// ListKeyFacts handles GET /keyfacts.
func (h *Handler) ListKeyFacts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListKeyFacts(r.Context())
	respondList(w, r, rows, err, keyFactsListSpec)
}

// FilterKeyFacts handles GET /keyfacts/filter?state_id=&sector_id=&
// occupation_id=&indicator_id=. At least one filter is required.
func (h *Handler) FilterKeyFacts(w http.ResponseWriter, r *http.Request) {
	ids, err := queryIDs(r, "state_id", "sector_id", "occupation_id", "indicator_id")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	rows, err := h.db.FilterKeyFacts(r.Context(), models.KeyFactFilter{
		StateID:      ids[0],
		SectorID:     ids[1],
		OccupationID: ids[2],
		IndicatorID:  ids[3],
	})
	respondList(w, r, rows, err, keyFactsListSpec)
}

// KeyFactsByReference handles GET /keyfacts/{idType}/{id}, where idType is
// one of state_id, sector_id, occupation_id, indicator_id.
func (h *Handler) KeyFactsByReference(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	rows, err := h.db.KeyFactsByReference(r.Context(), chi.URLParam(r, "idType"), id)
	respondList(w, r, rows, err, keyFactsListSpec)
}

// KeyFactsByStateAndIndicator handles
// GET /keyfacts/state/{stateId}/indicator/{indicatorId}.
func (h *Handler) KeyFactsByStateAndIndicator(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	indicatorID, err := pathID(r, "indicatorId")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	rows, err := h.db.KeyFactsByStateAndIndicator(r.Context(), stateID, indicatorID)
	respondList(w, r, rows, err, keyFactsByStateAndIndicatorSpec)
}

// KeyFactsByStateAndSector handles
// GET /keyfacts/state/{stateId}/sectors/{sectorId}.
func (h *Handler) KeyFactsByStateAndSector(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "stateId")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	sectorID, err := pathID(r, "sectorId")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	rows, err := h.db.KeyFactsByStateAndSector(r.Context(), stateID, sectorID)
	respondList(w, r, rows, err, keyFactsByStateAndSectorSpec)
}

// GetKeyFact handles GET /keyfacts/{id}.
func (h *Handler) GetKeyFact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	row, err := h.db.GetKeyFact(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateKeyFact handles PUT /keyfacts/{id}. Reference columns absent from
// the body are left untouched.
func (h *Handler) UpdateKeyFact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	var req models.UpdateKeyFactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	if err := h.db.UpdateKeyFact(r.Context(), id, &req); err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Key fact updated successfully")
}

// DeleteKeyFact handles DELETE /keyfacts/{id}.
func (h *Handler) DeleteKeyFact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}

	if err := h.db.DeleteKeyFact(r.Context(), id); err != nil {
		respondErr(w, r, err, keyFactNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Key fact deleted successfully")
}
