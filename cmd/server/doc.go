// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Command labormarket serves the labor market data API: indicators, sectors,
states, occupations, sub-indicators, key facts, indicator details, data
insights and about sections, with image and document attachments and
spreadsheet import into sector data.

# Commands

	labormarket [serve]                    run the HTTP server (default)
	labormarket schema [--dialect d] [--apply]
	labormarket import --sector <id> <file.xlsx|file.csv>
	labormarket version

# Process layout

	labormarket
	├── storage-layer
	│   ├── db-monitor
	│   └── temp-upload-sweeper (local attachment backend)
	└── api-layer
	    └── http-server

SIGINT or SIGTERM cancels the tree; the HTTP server drains for
SHUTDOWN_TIMEOUT before the database is closed.

# Configuration

Defaults, then a YAML file (--config, CONFIG_PATH, ./config.yaml or
/etc/labormarket/config.yaml), then environment variables:

	PORT=7000                  # HTTP port
	API_BASE_PATH=/api
	DB_DIALECT=duckdb          # duckdb, sqlite, mysql, postgres
	DB_PATH=data/labor.duckdb  # duckdb and sqlite
	DB_DSN=                    # mysql and postgres
	DB_BOOTSTRAP_SCHEMA=true
	UPLOAD_BACKEND=local       # local or gcs
	UPLOAD_DIR=uploads
	UPLOAD_PUBLIC_PATH=/uploads
	GCS_BUCKET=
	IMPORT_TRANSACTIONAL=false
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	LOG_LEVEL=info
	LOG_FORMAT=json            # json or console

Against MySQL:

	DB_DIALECT=mysql DB_DSN='labor:secret@tcp(db:3306)/labormarket' labormarket
*/
package main
