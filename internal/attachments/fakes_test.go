// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

// memStore is an in-memory Store with switchable delete failures.
type memStore struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	deleteErr error
	saves     int
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, name string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.blobs[name] = data
	return int64(len(data)), nil
}

func (s *memStore) Open(_ context.Context, name string) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	return &Object{
		Name:        name,
		ContentType: "application/octet-stream",
		Size:        int64(len(data)),
		Body:        io.NopCloser(bytes.NewReader(data)),
	}, nil
}

func (s *memStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.blobs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrBlobNotFound, name)
	}
	delete(s.blobs, name)
	return nil
}

func (s *memStore) has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[name]
	return ok
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

// memRecords is an in-memory Records. rows maps table to id to the
// recorded path ("" for NULL).
type memRecords struct {
	mu        sync.Mutex
	rows      map[query.Table]map[int64]string
	files     []models.SectorFile
	imported  []models.RawJSON
	setErr    error
	importErr error
}

func newMemRecords() *memRecords {
	return &memRecords{rows: make(map[query.Table]map[int64]string)}
}

func (r *memRecords) addRow(table query.Table, id int64, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows[table] == nil {
		r.rows[table] = make(map[int64]string)
	}
	r.rows[table][id] = path
}

func (r *memRecords) path(table query.Table, id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[table][id]
}

func (r *memRecords) Exists(_ context.Context, table query.Table, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[table][id]
	return ok, nil
}

func (r *memRecords) AttachmentPath(_ context.Context, table query.Table, _ query.Column, id int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[table][id]
	if !ok {
		return "", database.ErrNotFound
	}
	return p, nil
}

func (r *memRecords) SetAttachmentPath(_ context.Context, table query.Table, _ query.Column, id int64, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return r.setErr
	}
	if _, ok := r.rows[table][id]; !ok {
		return database.ErrNotFound
	}
	r.rows[table][id] = path
	return nil
}

func (r *memRecords) ClearAttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64) error {
	return r.SetAttachmentPath(ctx, table, column, id, "")
}

func (r *memRecords) AddSectorFile(_ context.Context, sectorID int64, title *string, fileName, filePath string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[query.TableSectors][sectorID]; !ok {
		return 0, database.ErrParentNotFound
	}
	id := int64(len(r.files) + 1)
	r.files = append(r.files, models.SectorFile{
		ID: id, SectorID: sectorID, Title: title,
		FileName: fileName, FilePath: filePath, CreatedAt: time.Now(),
	})
	return id, nil
}

func (r *memRecords) SectorFiles(_ context.Context, sectorID int64) ([]models.SectorFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SectorFile{}
	for _, f := range r.files {
		if f.SectorID == sectorID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memRecords) LatestSectorFile(ctx context.Context, sectorID int64) (*models.SectorFile, error) {
	files, _ := r.SectorFiles(ctx, sectorID)
	if len(files) == 0 {
		return nil, database.ErrNotFound
	}
	return &files[len(files)-1], nil
}

func (r *memRecords) SectorFileByName(_ context.Context, fileName string) (*models.SectorFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.files {
		if r.files[i].FileName == fileName {
			f := r.files[i]
			return &f, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memRecords) GetSectorFile(_ context.Context, sectorID, fileID int64) (*models.SectorFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.files {
		if r.files[i].ID == fileID && r.files[i].SectorID == sectorID {
			f := r.files[i]
			return &f, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *memRecords) DeleteSectorFile(_ context.Context, sectorID, fileID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.files {
		if r.files[i].ID == fileID && r.files[i].SectorID == sectorID {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (r *memRecords) InsertSectorData(_ context.Context, _ int64, _ string, rows []models.RawJSON, _ bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.importErr != nil {
		var ie *database.ImportError
		if errors.As(r.importErr, &ie) {
			r.imported = append(r.imported, rows[:ie.Inserted]...)
			return ie.Inserted, r.importErr
		}
		return 0, r.importErr
	}
	r.imported = append(r.imported, rows...)
	return len(rows), nil
}

func upload(name, content string) *Upload {
	return &Upload{Filename: name, Size: int64(len(content)), Body: strings.NewReader(content)}
}
