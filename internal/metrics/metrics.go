// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto, so
// importing the package is enough to expose them. Call sites use the
// Record* helpers rather than touching the vectors directly.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labormarket_db_query_duration_seconds",
			Help:    "Duration of record store statements in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labormarket_db_query_errors_total",
			Help: "Total number of failed record store statements",
		},
		[]string{"operation", "table"},
	)

	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "labormarket_db_up",
			Help: "1 when the last background ping of the record store succeeded",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labormarket_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labormarket_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "labormarket_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Attachment Metrics
	AttachmentOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labormarket_attachment_operations_total",
			Help: "Attachment lifecycle operations by slot and outcome",
		},
		[]string{"slot", "operation", "result"},
	)

	AttachmentBytesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labormarket_attachment_bytes_stored_total",
			Help: "Bytes written to the attachment store",
		},
		[]string{"slot"},
	)

	StorageInconsistencies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "labormarket_attachment_storage_inconsistencies_total",
			Help: "Times a stored file and its database reference diverged",
		},
	)

	TempUploadsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "labormarket_attachment_temp_files_swept_total",
			Help: "Abandoned temporary upload files removed by the sweeper",
		},
	)

	// Spreadsheet Import Metrics
	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labormarket_import_rows_total",
			Help: "Spreadsheet rows processed by the sector data import",
		},
		[]string{"result"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "labormarket_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a record store statement.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// SetDBUp records the outcome of a background database ping.
func SetDBUp(up bool) {
	if up {
		DBUp.Set(1)
	} else {
		DBUp.Set(0)
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAttachment records one attachment operation (upload, open, remove, import).
func RecordAttachment(slot, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	AttachmentOperations.WithLabelValues(slot, operation, result).Inc()
}

// RecordAttachmentBytes adds n stored bytes for slot.
func RecordAttachmentBytes(slot string, n int64) {
	if n > 0 {
		AttachmentBytesStored.WithLabelValues(slot).Add(float64(n))
	}
}

// RecordStorageInconsistency counts a file/reference divergence.
func RecordStorageInconsistency() {
	StorageInconsistencies.Inc()
}

// RecordTempUploadsSwept adds n removed temporary upload files.
func RecordTempUploadsSwept(n int) {
	if n > 0 {
		TempUploadsSwept.Add(float64(n))
	}
}

// RecordImportRows records inserted and failed spreadsheet rows.
func RecordImportRows(inserted, failed int) {
	ImportRows.WithLabelValues("inserted").Add(float64(inserted))
	ImportRows.WithLabelValues("failed").Add(float64(failed))
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
