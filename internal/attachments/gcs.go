// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/api/option"

	"github.com/tomtom215/labormarket/internal/config"
)

// sniffLen is how much of an upload is peeked at to detect its type.
const sniffLen = 3072

// GCSStore keeps blobs as objects in a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSStore connects to the bucket named in cfg. A GCSEndpoint points the
// client at an emulator and disables authentication.
func NewGCSStore(ctx context.Context, cfg *config.AttachmentsConfig) (*GCSStore, error) {
	if cfg.GCSBucket == "" {
		return nil, errors.New("attachments.gcs_bucket is required for the gcs backend")
	}

	var opts []option.ClientOption
	if cfg.GCSEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GCSEndpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: cfg.GCSBucket, prefix: cfg.GCSPrefix}, nil
}

// Close releases the storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) objectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(strings.Trim(s.prefix, "/"), name)
}

func (s *GCSStore) object(name string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.objectName(name))
}

// Save uploads r, recording the sniffed content type on the object.
func (s *GCSStore) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, fmt.Errorf("failed to read %s: %w", name, err)
	}

	w := s.object(name).NewWriter(ctx)
	w.ContentType = mimetype.Detect(head).String()

	n, err := io.Copy(w, br)
	if err != nil {
		_ = w.Close()
		return 0, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	return n, nil
}

// Open returns a reader over the object and its stored attributes.
func (s *GCSStore) Open(ctx context.Context, name string) (*Object, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	rc, err := s.object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return &Object{
		Name:        name,
		ContentType: rc.Attrs.ContentType,
		Size:        rc.Attrs.Size,
		ModTime:     rc.Attrs.LastModified,
		Body:        rc,
	}, nil
}

// Delete removes the object.
func (s *GCSStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	err := s.object(name).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}
