// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"time"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/database"
)

// Handler contains dependencies for API handlers
type Handler struct {
	db          *database.DB
	attachments *attachments.Manager
	config      *config.Config
	version     string
	startTime   time.Time
}

// NewHandler creates the API handler.
//
//	handler := api.NewHandler(db, manager, cfg, version)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(db *database.DB, manager *attachments.Manager, cfg *config.Config, version string) *Handler {
	return &Handler{
		db:          db,
		attachments: manager,
		config:      cfg,
		version:     version,
		startTime:   time.Now(),
	}
}

func (h *Handler) maxUploadBytes() int64 {
	if h.config == nil {
		return 0
	}
	return h.config.Attachments.MaxUploadBytes
}
