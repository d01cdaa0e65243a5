// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package services

import (
	"context"
	"time"

	"github.com/tomtom215/labormarket/internal/logging"
	"github.com/tomtom215/labormarket/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseMonitorService pings the record store on an interval and publishes
// the result as the labormarket_db_up gauge. A failed ping is logged, not
// returned, so the supervisor never restarts the monitor for an outage.
type DatabaseMonitorService struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	healthy  bool
}

// NewDatabaseMonitorService creates a monitor. Non-positive durations fall
// back to 30s between pings and a 5s ping timeout.
func NewDatabaseMonitorService(db Pinger, interval, timeout time.Duration) *DatabaseMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &DatabaseMonitorService{db: db, interval: interval, timeout: timeout, healthy: true}
}

// Serve implements suture.Service.
func (m *DatabaseMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *DatabaseMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.db.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	metrics.SetDBUp(err == nil)

	// Log transitions only.
	switch {
	case err != nil && m.healthy:
		logging.Error().Err(err).Msg("Database ping failed")
	case err == nil && !m.healthy:
		logging.Info().Msg("Database connection restored")
	}
	m.healthy = err == nil
}

func (m *DatabaseMonitorService) String() string {
	return "db-monitor"
}
