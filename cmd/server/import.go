// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/logging"
	"github.com/tomtom215/labormarket/internal/metrics"
	"github.com/tomtom215/labormarket/internal/models"
	"github.com/tomtom215/labormarket/internal/spreadsheet"
)

func importCommand() *cobra.Command {
	var sectorID int64

	cmd := &cobra.Command{
		Use:   "import --sector <id> <file>",
		Short: "Load spreadsheet rows into a sector's data",
		Long: `Decode an xlsx or csv file and insert one sector data row per
spreadsheet row, keyed by the header row. The file itself is not copied
into the attachment store.

import.transactional decides whether a failing row rolls back the rows
inserted before it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sectorID <= 0 {
				return errors.New("--sector must be a positive id")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := args[0]
			f, err := os.Open(path) //nolint:gosec // operator-supplied path
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := spreadsheet.Decode(f, filepath.Base(path), cfg.Import.MaxRows)
			if err != nil {
				return err
			}

			encoded := make([]models.RawJSON, len(rows))
			for i, row := range rows {
				b, err := json.Marshal(row)
				if err != nil {
					return fmt.Errorf("failed to encode row %d: %w", i+1, err)
				}
				encoded[i] = b
			}

			db, err := database.New(&cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			ok, err := db.Exists(ctx, query.TableSectors, sectorID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("sector %d: %w", sectorID, database.ErrNotFound)
			}

			inserted, err := db.InsertSectorData(ctx, sectorID, filepath.Base(path), encoded, cfg.Import.Transactional)
			metrics.RecordImportRows(inserted, len(encoded)-inserted)
			if err != nil {
				return err
			}

			logging.Info().Int64("sector_id", sectorID).Str("file", path).Int("rows", inserted).Msg("Spreadsheet imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows into sector %d\n", inserted, sectorID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&sectorID, "sector", 0, "sector id that owns the rows")
	_ = cmd.MarkFlagRequired("sector")
	return cmd
}
