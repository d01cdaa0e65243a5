// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "base path without slash",
			mutate:  func(c *Config) { c.Server.BasePath = "api" },
			wantErr: "API_BASE_PATH",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "qa" },
			wantErr: "ENVIRONMENT",
		},
		{
			name:    "mysql without dsn",
			mutate:  func(c *Config) { c.Database.Dialect = "mysql" },
			wantErr: "DB_DSN",
		},
		{
			name: "postgres with dsn",
			mutate: func(c *Config) {
				c.Database.Dialect = "postgres"
				c.Database.DSN = "postgres://labor@localhost/labor?sslmode=disable"
			},
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Database.Dialect = "sqlite"; c.Database.Path = "" },
			wantErr: "DB_PATH",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Attachments.Backend = "s3" },
			wantErr: "UPLOAD_BACKEND",
		},
		{
			name:    "gcs without bucket",
			mutate:  func(c *Config) { c.Attachments.Backend = "gcs" },
			wantErr: "GCS_BUCKET",
		},
		{
			name: "gcs emulator endpoint",
			mutate: func(c *Config) {
				c.Attachments.Backend = "gcs"
				c.Attachments.GCSBucket = "labor-uploads"
				c.Attachments.GCSEndpoint = "http://localhost:4443"
			},
		},
		{
			name: "gcs endpoint with path",
			mutate: func(c *Config) {
				c.Attachments.Backend = "gcs"
				c.Attachments.GCSBucket = "labor-uploads"
				c.Attachments.GCSEndpoint = "http://localhost:4443/storage/v1"
			},
			wantErr: "GCS_ENDPOINT",
		},
		{
			name:    "local without dir",
			mutate:  func(c *Config) { c.Attachments.Dir = "" },
			wantErr: "UPLOAD_DIR",
		},
		{
			name:    "zero max upload",
			mutate:  func(c *Config) { c.Attachments.MaxUploadBytes = 0 },
			wantErr: "UPLOAD_MAX_BYTES",
		},
		{
			name:    "zero import rows",
			mutate:  func(c *Config) { c.Import.MaxRows = 0 },
			wantErr: "IMPORT_MAX_ROWS",
		},
		{
			name:    "rate limit zero requests",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit disabled skips checks",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 7000}
	if got := s.Addr(); got != "127.0.0.1:7000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:7000", got)
	}
}
