// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

// Package testinfra starts MySQL and Postgres servers in Docker for
// integration tests, using testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// Tests call SkipIfNoDocker first, so a machine without Docker skips them
// instead of failing. The first run pulls the server images.
package testinfra
