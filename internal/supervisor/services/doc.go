// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

// Package services adapts server components to suture.Service.
//
// Every wrapper has a context-aware Serve that returns when the context is
// canceled and a String method that names it in supervisor logs. Transient
// failures (a failed ping, a sweep that could not remove a file) are logged
// and retried on the next tick rather than returned, because returning would
// count toward the layer's restart backoff.
package services
