// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/labormarket/internal/config"
)

// Store holds blobs addressed by a flat name.
type Store interface {
	// Save writes r under name, replacing any existing blob, and returns
	// the number of bytes written.
	Save(ctx context.Context, name string, r io.Reader) (int64, error)

	// Open returns the blob stored under name, or ErrBlobNotFound.
	Open(ctx context.Context, name string) (*Object, error)

	// Delete removes the blob stored under name, or returns ErrBlobNotFound.
	Delete(ctx context.Context, name string) error
}

// Object is an open blob. The caller must close Body.
type Object struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	Body        io.ReadCloser
}

// Close closes the blob body.
func (o *Object) Close() error {
	if o == nil || o.Body == nil {
		return nil
	}
	return o.Body.Close()
}

// NewStore builds the Store selected by cfg.Backend.
func NewStore(ctx context.Context, cfg *config.AttachmentsConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.Dir)
	case "gcs":
		return NewGCSStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported attachment backend %q", cfg.Backend)
	}
}

// checkName rejects names that could escape the store's namespace, and
// dot-files, which the local store uses for uploads in flight.
func checkName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
