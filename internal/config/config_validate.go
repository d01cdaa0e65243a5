// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAttachments(); err != nil {
		return err
	}

	if err := c.validateImport(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must start with '/', got %q", c.Server.BasePath)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

// validateDatabase checks the dialect and that it has somewhere to connect.
func (c *Config) validateDatabase() error {
	switch c.Database.Dialect {
	case "duckdb", "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for dialect %s", c.Database.Dialect)
		}
	case "mysql", "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for dialect %s", c.Database.Dialect)
		}
	default:
		return fmt.Errorf("DB_DIALECT must be duckdb, mysql, postgres or sqlite, got %q", c.Database.Dialect)
	}

	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must not be negative")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive, got %s", c.Database.QueryTimeout)
	}
	return nil
}

func (c *Config) validateAttachments() error {
	switch c.Attachments.Backend {
	case "local":
		if c.Attachments.Dir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for the local attachment backend")
		}
	case "gcs":
		if c.Attachments.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required for the gcs attachment backend")
		}
		// An emulator such as fake-gcs-server.
		if c.Attachments.GCSEndpoint != "" {
			if err := validateEndpoint("GCS_ENDPOINT", c.Attachments.GCSEndpoint); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be local or gcs, got %q", c.Attachments.Backend)
	}

	if !strings.HasPrefix(c.Attachments.PublicPath, "/") {
		return fmt.Errorf("UPLOAD_PUBLIC_PATH must start with '/', got %q", c.Attachments.PublicPath)
	}
	if c.Attachments.MaxUploadBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.Attachments.MaxUploadBytes)
	}
	return nil
}

func (c *Config) validateImport() error {
	if c.Import.MaxRows < 1 {
		return fmt.Errorf("IMPORT_MAX_ROWS must be at least 1, got %d", c.Import.MaxRows)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateEndpoint accepts an http(s) base URL: a host, no path beyond "/",
// no query.
func validateEndpoint(name, raw string) error {
	u, err := url.Parse(raw)
	switch {
	case err != nil:
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s scheme must be http or https, got %q", name, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s host is required", name)
	case u.Path != "" && u.Path != "/":
		return fmt.Errorf("%s must be a base URL, remove path %q", name, u.Path)
	case u.RawQuery != "":
		return fmt.Errorf("%s must not contain a query", name)
	}
	return nil
}
