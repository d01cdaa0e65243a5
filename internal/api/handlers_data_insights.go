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

const dataInsightNotFound = "No data found for the given data_category and category_id."

var (
	dataInsightsListSpec = listSpec{
		emptyIsNotFound: true,
		notFound:        "No data insights found.",
	}
	dataInsightsForSpec = listSpec{
		emptyIsNotFound: true,
		notFound:        dataInsightNotFound,
	}
)

// CreateDataInsight handles POST /dataInsights. data_category selects which
// reference column category_id is stored in.
func (h *Handler) CreateDataInsight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDataInsightRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}

	id, err := h.db.CreateDataInsight(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}
	respondCreated(w, "Data Insight created successfully.", "dataInsightId", id)
}

// ListDataInsights handles GET /dataInsights, newest first.
func (h *Handler) ListDataInsights(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListDataInsights(r.Context())
	respondList(w, r, rows, err, dataInsightsListSpec)
}

// categoryKey reads the {data_category}/{category_id} pair.
func categoryKey(r *http.Request) (string, int64, error) {
	id, err := pathID(r, "category_id")
	if err != nil {
		return "", 0, err
	}
	return chi.URLParam(r, "data_category"), id, nil
}

// DataInsightsFor handles GET /dataInsights/{data_category}/{category_id}.
func (h *Handler) DataInsightsFor(w http.ResponseWriter, r *http.Request) {
	category, id, err := categoryKey(r)
	if err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}

	rows, err := h.db.DataInsightsFor(r.Context(), category, id)
	respondList(w, r, rows, err, dataInsightsForSpec)
}

// UpdateDataInsights handles PUT /dataInsights/{data_category}/{category_id}.
// Every insight of the pair is updated.
func (h *Handler) UpdateDataInsights(w http.ResponseWriter, r *http.Request) {
	category, id, err := categoryKey(r)
	if err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}

	var req models.UpdateDataInsightRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}

	if err := h.db.UpdateDataInsights(r.Context(), category, id, &req); err != nil {
		respondErr(w, r, err, dataInsightNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Data Insight updated successfully.")
}

// DeleteDataInsights handles DELETE /dataInsights/{data_category}/{category_id}.
func (h *Handler) DeleteDataInsights(w http.ResponseWriter, r *http.Request) {
	category, id, err := categoryKey(r)
	if err != nil {
		respondErr(w, r, err, "No record found to delete.")
		return
	}

	if err := h.db.DeleteDataInsights(r.Context(), category, id); err != nil {
		respondErr(w, r, err, "No record found to delete.")
		return
	}
	respondMessage(w, http.StatusOK, "Data Insight deleted successfully.")
}
