// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: accepts or generates X-Request-ID and stores it in the
    request context for logging and error bodies
  - PrometheusMetrics: request counts, latency and in-flight gauge, labeled
    by chi route pattern rather than raw path
  - AccessLog: one zerolog line per request

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
