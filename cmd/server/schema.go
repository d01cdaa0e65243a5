// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/logging"
)

func schemaCommand() *cobra.Command {
	var (
		dialect string
		apply   bool
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print or apply the database schema",
		Long: `Print the CREATE statements the server runs at startup when
database.bootstrap_schema is enabled. Every statement is idempotent.

Examples:
  # DDL for the configured dialect
  labormarket schema

  # DDL for another engine, without touching any database
  labormarket schema --dialect mysql

  # Create missing tables in the configured database and exit
  labormarket schema --apply`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dialect == "" {
				dialect = cfg.Database.Dialect
			}
			d, err := database.ParseDialect(dialect)
			if err != nil {
				return err
			}

			if !apply {
				out := cmd.OutOrStdout()
				for _, stmt := range database.SchemaStatements(d) {
					fmt.Fprintf(out, "%s;\n\n", strings.TrimSpace(stmt))
				}
				return nil
			}

			if string(d) != cfg.Database.Dialect {
				return fmt.Errorf("--apply uses the configured database; --dialect %s does not match %s", d, cfg.Database.Dialect)
			}
			dbCfg := cfg.Database
			dbCfg.BootstrapSchema = false
			db, err := database.New(&dbCfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			logging.Info().Str("dialect", string(d)).Msg("Schema applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "", "duckdb, mysql, postgres or sqlite (default: configured dialect)")
	cmd.Flags().BoolVar(&apply, "apply", false, "create missing tables in the configured database")
	return cmd
}
