// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package config loads and validates server configuration with koanf v2.

Sources are layered, later ones winning:

 1. defaultConfig
 2. a YAML file: CONFIG_PATH, else the first of DefaultConfigPaths that exists
 3. environment variables listed in envMappings

Unlisted environment variables are ignored, so the process environment can
carry unrelated settings. CORS_ORIGINS is comma separated.

# Example config.yaml

	server:
	  port: 7000
	  base_path: /api
	database:
	  dialect: postgres
	  dsn: postgres://labor:secret@db/labormarket?sslmode=disable
	attachments:
	  backend: gcs
	  gcs_bucket: labor-uploads
	  public_path: /uploads
	import:
	  transactional: true

Validate runs after loading and reports the first invalid setting by its
environment variable name.
*/
package config
