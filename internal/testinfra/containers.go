// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

//go:build integration

package testinfra

import (
	"context"
	"io"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// SkipIfNoDocker skips in -short mode and when no container runtime answers.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// CleanupContainer terminates c when the test ends.
func CleanupContainer(t *testing.T, c testcontainers.Container) {
	t.Helper()
	testcontainers.CleanupContainer(t, c)
}

// ContainerLogs returns everything the container has written so far, for
// failure messages.
func ContainerLogs(ctx context.Context, c testcontainers.Container) string {
	reader, err := c.Logs(ctx)
	if err != nil {
		return "logs unavailable: " + err.Error()
	}
	defer reader.Close()

	logs, _ := io.ReadAll(reader)
	return string(logs)
}
