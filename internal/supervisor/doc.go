// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervision tree.

# Layout

	labormarket
	├── storage-layer
	│   ├── db-monitor           periodic ping, labormarket_db_up gauge
	│   └── temp-upload-sweeper  local attachment store only
	└── api-layer
	    └── http-server

Each layer is its own suture.Supervisor, so failure counting and backoff are
tracked per layer. A monitor stuck in a restart loop does not take the HTTP
server down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, cfg.Server.ShutdownTimeout))
	tree.AddStorageService(services.NewDatabaseMonitorService(db, time.Minute, 5*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (start, failure, backoff, restart) are logged through the
sutureslog hook, which writes to the zerolog global logger via the slog
adapter in package logging.

# Shutdown

Canceling the Serve context stops every service. Services still running after
TreeConfig.ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
