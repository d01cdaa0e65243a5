// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Database    DatabaseConfig    `koanf:"database"`
	Attachments AttachmentsConfig `koanf:"attachments"`
	Import      ImportConfig      `koanf:"import"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	BasePath        string        `koanf:"base_path"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment specifies the deployment environment (development, staging, production).
	Environment string `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the SQL engine and connection pool limits.
//
// Dialect is one of duckdb, mysql, postgres or sqlite. For duckdb and
// sqlite the database lives in the file at Path; mysql and postgres use DSN.
type DatabaseConfig struct {
	Dialect         string        `koanf:"dialect"`
	DSN             string        `koanf:"dsn"`
	Path            string        `koanf:"path"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`

	// BootstrapSchema creates missing tables at startup. It never alters
	// existing tables.
	BootstrapSchema bool `koanf:"bootstrap_schema"`
}

// AttachmentsConfig controls where uploaded files are kept.
type AttachmentsConfig struct {
	// Backend is "local" (files under Dir) or "gcs" (objects in GCSBucket).
	Backend string `koanf:"backend"`
	Dir     string `koanf:"dir"`

	// PublicPath is the URL prefix uploaded files are served from.
	PublicPath     string `koanf:"public_path"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes"`

	GCSBucket   string `koanf:"gcs_bucket"`
	GCSPrefix   string `koanf:"gcs_prefix"`
	GCSEndpoint string `koanf:"gcs_endpoint"`
}

// ImportConfig controls spreadsheet ingestion into sector data rows.
type ImportConfig struct {
	// Transactional wraps each spreadsheet in a single transaction. When
	// false, rows inserted before a failing row are kept.
	Transactional bool `koanf:"transactional"`
	MaxRows       int  `koanf:"max_rows"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
