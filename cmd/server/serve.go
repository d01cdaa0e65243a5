// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/labormarket/internal/api"
	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/logging"
	"github.com/tomtom215/labormarket/internal/metrics"
	"github.com/tomtom215/labormarket/internal/supervisor"
	"github.com/tomtom215/labormarket/internal/supervisor/services"
)

const (
	dbPingInterval    = time.Minute
	dbPingTimeout     = 5 * time.Second
	tempSweepInterval = time.Hour
	tempMaxAge        = time.Hour
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

//nolint:gocyclo // sequential setup steps
func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting labormarket")
	metrics.SetAppInfo(version)

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := attachments.NewStore(ctx, &cfg.Attachments)
	if err != nil {
		return fmt.Errorf("failed to initialize attachment store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close() //nolint:errcheck
	}
	logging.Info().Str("backend", cfg.Attachments.Backend).Msg("Attachment store ready")

	manager := attachments.NewManager(store, db, &cfg.Attachments, &cfg.Import)
	handler := api.NewHandler(db, manager, cfg, version)
	router := api.NewRouter(handler, cfg)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddStorageService(services.NewDatabaseMonitorService(db, dbPingInterval, dbPingTimeout))
	if local, ok := store.(*attachments.LocalStore); ok {
		tree.AddStorageService(services.NewTempSweeperService(local, tempSweepInterval, tempMaxAge))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree stopped: %w", err)
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Server stopped")
	return nil
}
