// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/labormarket/internal/models"
)

const sectionNotFound = "Section not found"

func sectionName(r *http.Request) (string, error) {
	name := strings.TrimSpace(chi.URLParam(r, "section_name"))
	if name == "" {
		return "", fmt.Errorf("%w: section_name is required", errBadRequest)
	}
	return name, nil
}

// CreateAboutSection handles POST /about.
func (h *Handler) CreateAboutSection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAboutSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}

	id, err := h.db.CreateAboutSection(r.Context(), &req)
	if err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}
	respondCreated(w, "About section created successfully", "section_id", id)
}

// ListAboutSections handles GET /about.
func (h *Handler) ListAboutSections(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.ListAboutSections(r.Context())
	respondList(w, r, rows, err, listSpec{notFound: sectionNotFound})
}

// GetAboutSection handles GET /about/{section_name}.
func (h *Handler) GetAboutSection(w http.ResponseWriter, r *http.Request) {
	name, err := sectionName(r)
	if err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}

	row, err := h.db.GetAboutSection(r.Context(), name)
	if err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}
	respondJSON(w, http.StatusOK, row)
}

// UpdateAboutSection handles PUT /about/{section_name}.
func (h *Handler) UpdateAboutSection(w http.ResponseWriter, r *http.Request) {
	name, err := sectionName(r)
	if err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}

	var req models.UpdateAboutSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}

	if err := h.db.UpdateAboutSection(r.Context(), name, &req); err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "About section updated successfully")
}

// DeleteAboutSection handles DELETE /about/{section_name}.
func (h *Handler) DeleteAboutSection(w http.ResponseWriter, r *http.Request) {
	name, err := sectionName(r)
	if err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}

	if err := h.db.DeleteAboutSection(r.Context(), name); err != nil {
		respondErr(w, r, err, sectionNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "About section deleted successfully")
}
