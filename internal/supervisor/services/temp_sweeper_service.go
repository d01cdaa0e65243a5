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

// Sweeper is satisfied by *attachments.LocalStore.
type Sweeper interface {
	SweepTemp(cutoff time.Time) (int, error)
}

// TempSweeperService removes temporary upload files left behind by
// interrupted writes. Files younger than maxAge may belong to an upload
// still in flight and are kept.
type TempSweeperService struct {
	store    Sweeper
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time
}

// NewTempSweeperService creates a sweeper. Non-positive durations fall back
// to an hourly sweep of files older than one hour.
func NewTempSweeperService(store Sweeper, interval, maxAge time.Duration) *TempSweeperService {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &TempSweeperService{store: store, interval: interval, maxAge: maxAge, now: time.Now}
}

// Serve implements suture.Service. Sweep errors are logged and the next tick
// tries again.
func (s *TempSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *TempSweeperService) sweep() {
	n, err := s.store.SweepTemp(s.now().Add(-s.maxAge))
	metrics.RecordTempUploadsSwept(n)
	if err != nil {
		logging.Warn().Err(err).Int("removed", n).Msg("Temporary upload sweep incomplete")
		return
	}
	if n > 0 {
		logging.Info().Int("removed", n).Msg("Removed abandoned temporary uploads")
	}
}

func (s *TempSweeperService) String() string {
	return "temp-upload-sweeper"
}
