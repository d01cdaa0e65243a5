// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	basePath      string
	publicPath    string
}

// NewRouter creates a router for handler. A nil cfg uses the defaults.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	basePath, publicPath := "/api", "/uploads"
	mwCfg := DefaultChiMiddlewareConfig()
	if cfg != nil {
		if cfg.Server.BasePath != "" {
			basePath = cfg.Server.BasePath
		}
		if cfg.Attachments.PublicPath != "" {
			publicPath = cfg.Attachments.PublicPath
		}
		mwCfg = ChiMiddlewareConfigFromSecurity(cfg.Security)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
		basePath:      "/" + strings.Trim(basePath, "/"),
		publicPath:    "/" + strings.Trim(publicPath, "/"),
	}
}

// imageRoutes registers the image slot routes under an entity subrouter.
func (router *Router) imageRoutes(r chi.Router, slot attachments.Slot) {
	upload := router.handler.UploadImage(slot)
	r.Post("/{id}/uploadImage", upload)
	r.Post("/{id}/uploadImages", upload)
	r.Get("/{id}/image", router.handler.GetImage(slot))
	r.Delete("/{id}/image", router.handler.DeleteImage(slot))
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeValidation, "Method not allowed", nil)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Uploaded Files
	// ========================
	r.Route(router.publicPath, func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/*", h.ServeUpload)
		r.Head("/*", h.ServeUpload)
	})

	// ========================
	// Data API
	// ========================
	r.Route(router.basePath, func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/test", h.Test)
		r.Get("/upload", h.UploadTest)

		r.Route("/indicators", func(r chi.Router) {
			r.Post("/", h.CreateIndicator)
			r.Get("/", h.ListIndicators)
			r.Get("/{id}", h.GetIndicator)
			r.Put("/{id}", h.UpdateIndicator)
			r.Delete("/{id}", h.DeleteIndicator)
			router.imageRoutes(r, attachments.IndicatorImage)
		})

		r.Route("/sectors", func(r chi.Router) {
			r.Post("/", h.CreateSector)
			r.Get("/", h.ListSectors)
			r.Get("/files/{fileName}", h.SectorDocumentByName)
			r.Get("/{id}", h.GetSector)
			r.Put("/{id}", h.UpdateSector)
			r.Delete("/{id}", h.DeleteSector)
			router.imageRoutes(r, attachments.SectorImage)

			r.Post("/{id}/upload", h.UploadSectorDocument)
			r.Get("/{id}/file", h.LatestSectorDocument)
			r.Get("/{id}/files", h.ListSectorDocuments)
			r.Delete("/{id}/files/{fileId}", h.DeleteSectorDocument)
			r.Post("/{id}/uploadXcel", h.ImportSectorSpreadsheet)
			r.Get("/{id}/data", h.SectorData)
		})
		r.Post("/upload/pdf/{sectorId}", h.UploadSectorDocument)

		r.Route("/states", func(r chi.Router) {
			r.Post("/", h.CreateState)
			r.Get("/", h.ListStates)
			r.Get("/{id}", h.GetState)
			r.Put("/{id}", h.UpdateState)
			r.Delete("/{id}", h.DeleteState)
			router.imageRoutes(r, attachments.StateImage)
		})

		r.Route("/occupations", func(r chi.Router) {
			r.Post("/", h.CreateOccupation)
			r.Get("/", h.ListOccupations)
			r.Get("/{id}", h.GetOccupation)
			r.Put("/{id}", h.UpdateOccupation)
			r.Delete("/{id}", h.DeleteOccupation)
			router.imageRoutes(r, attachments.OccupationImage)
		})

		r.Route("/subIndicators", func(r chi.Router) {
			r.Post("/", h.CreateSubIndicator)
			r.Get("/", h.ListSubIndicators)
			r.Get("/{id}", h.GetSubIndicator)
			r.Put("/{id}", h.UpdateSubIndicator)
			r.Delete("/{id}", h.DeleteSubIndicator)
			router.imageRoutes(r, attachments.SubIndicatorImage)
		})

		r.Route("/keyfacts", func(r chi.Router) {
			r.Post("/", h.CreateKeyFact)
			r.Get("/", h.ListKeyFacts)
			r.Get("/filter", h.FilterKeyFacts)
			r.Get("/state/{stateId}/indicator/{indicatorId}", h.KeyFactsByStateAndIndicator)
			r.Get("/state/{stateId}/sectors/{sectorId}", h.KeyFactsByStateAndSector)
			r.Get("/{id}", h.GetKeyFact)
			r.Put("/{id}", h.UpdateKeyFact)
			r.Delete("/{id}", h.DeleteKeyFact)
			r.Get("/{idType}/{id}", h.KeyFactsByReference)
		})

		r.Route("/indicatorDetails", func(r chi.Router) {
			r.Post("/", h.CreateIndicatorDetail)
			r.Get("/", h.FilterIndicatorDetails)
			r.Get("/{id}", h.GetIndicatorDetail)
			r.Put("/{id}", h.UpdateIndicatorDetail)
			r.Delete("/{id}", h.DeleteIndicatorDetail)
		})

		r.Route("/dataInsights", func(r chi.Router) {
			r.Post("/", h.CreateDataInsight)
			r.Get("/", h.ListDataInsights)
			r.Get("/{data_category}/{category_id}", h.DataInsightsFor)
			r.Put("/{data_category}/{category_id}", h.UpdateDataInsights)
			r.Delete("/{data_category}/{category_id}", h.DeleteDataInsights)
		})

		r.Route("/about", func(r chi.Router) {
			r.Post("/", h.CreateAboutSection)
			r.Get("/", h.ListAboutSections)
			r.Get("/{section_name}", h.GetAboutSection)
			r.Put("/{section_name}", h.UpdateAboutSection)
			r.Delete("/{section_name}", h.DeleteAboutSection)
		})
	})

	return r
}
