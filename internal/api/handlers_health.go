// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Dialect           string  `json:"dialect,omitempty"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Test answers GET /test.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "API is working!")
}

// UploadTest answers GET /upload.
func (h *Handler) UploadTest(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Upload API is working!")
}

// Health reports database connectivity. A failed ping answers 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.db != nil {
		health.Dialect = string(h.db.Dialect())
		health.DatabaseConnected = h.db.Ping(r.Context()) == nil
	}

	status := http.StatusOK
	if !health.DatabaseConnected {
		health.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}
