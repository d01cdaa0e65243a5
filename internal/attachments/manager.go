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
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/logging"
	"github.com/tomtom215/labormarket/internal/metrics"
	"github.com/tomtom215/labormarket/internal/models"
	"github.com/tomtom215/labormarket/internal/spreadsheet"
)

// Records is the part of the record store the manager needs.
// *database.DB implements it.
type Records interface {
	Exists(ctx context.Context, table query.Table, id int64) (bool, error)

	AttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64) (string, error)
	SetAttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64, path string) error
	ClearAttachmentPath(ctx context.Context, table query.Table, column query.Column, id int64) error

	AddSectorFile(ctx context.Context, sectorID int64, title *string, fileName, filePath string) (int64, error)
	SectorFiles(ctx context.Context, sectorID int64) ([]models.SectorFile, error)
	LatestSectorFile(ctx context.Context, sectorID int64) (*models.SectorFile, error)
	SectorFileByName(ctx context.Context, fileName string) (*models.SectorFile, error)
	GetSectorFile(ctx context.Context, sectorID, fileID int64) (*models.SectorFile, error)
	DeleteSectorFile(ctx context.Context, sectorID, fileID int64) error

	InsertSectorData(ctx context.Context, sectorID int64, sourceFile string, rows []models.RawJSON, transactional bool) (int, error)
}

// Upload is one file received from a client.
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

func (u *Upload) missing() bool {
	return u == nil || u.Body == nil || strings.TrimSpace(u.Filename) == "" || u.Size == 0
}

// Document is a recorded sector document.
type Document struct {
	ID       int64  `json:"fileId"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

// ImportResult summarizes a spreadsheet import.
type ImportResult struct {
	FileName string `json:"fileName"`
	Rows     int    `json:"rows"`
}

// Manager keeps blobs in a Store and their names in Records.
type Manager struct {
	store      Store
	records    Records
	publicPath string
	importCfg  config.ImportConfig
	now        func() time.Time
}

// NewManager returns a manager over store and records.
func NewManager(store Store, records Records, attCfg *config.AttachmentsConfig, importCfg *config.ImportConfig) *Manager {
	publicPath := "/uploads"
	if attCfg != nil && attCfg.PublicPath != "" {
		publicPath = "/" + strings.Trim(attCfg.PublicPath, "/")
	}
	m := &Manager{
		store:      store,
		records:    records,
		publicPath: publicPath,
		now:        time.Now,
	}
	if importCfg != nil {
		m.importCfg = *importCfg
	}
	return m
}

// URL returns the public URL a blob is served under.
func (m *Manager) URL(name string) string {
	return m.publicPath + "/" + name
}

// blobName recovers the blob name from a recorded URL or bare name.
func blobName(recorded string) string {
	return path.Base(recorded)
}

// Upload stores f as the attachment of slot on parentID and returns its
// public URL.
func (m *Manager) Upload(ctx context.Context, slot Slot, parentID int64, f *Upload) (url string, err error) {
	defer func() { metrics.RecordAttachment(slot.Name, "upload", err) }()

	if f.missing() {
		return "", ErrMissingFile
	}

	prev, err := m.records.AttachmentPath(ctx, slot.Table, slot.Column, parentID)
	if errors.Is(err, database.ErrNotFound) {
		return "", fmt.Errorf("%w: %s %d", ErrParentNotFound, slot.Entity, parentID)
	}
	if err != nil {
		return "", err
	}

	name := slot.BlobName(parentID, f.Filename, m.now())
	if err := m.save(ctx, slot, name, f.Body); err != nil {
		return "", err
	}

	url = m.URL(name)
	if err := m.records.SetAttachmentPath(ctx, slot.Table, slot.Column, parentID, url); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", m.compensate(ctx, name, fmt.Errorf("%w: %s %d", ErrParentNotFound, slot.Entity, parentID))
		}
		if prev != "" && blobName(prev) == name {
			// The column already points at this name; the blob just has new content.
			return "", err
		}
		return "", m.compensate(ctx, name, err)
	}

	if prev != "" && blobName(prev) != name {
		m.removeBestEffort(ctx, blobName(prev))
	}

	logging.Ctx(ctx).Info().
		Str("slot", slot.Name).
		Int64("parent_id", parentID).
		Str("file", name).
		Msg("Attachment stored")
	return url, nil
}

// Open returns the attachment of slot on parentID.
func (m *Manager) Open(ctx context.Context, slot Slot, parentID int64) (obj *Object, err error) {
	defer func() { metrics.RecordAttachment(slot.Name, "open", err) }()

	recorded, err := m.records.AttachmentPath(ctx, slot.Table, slot.Column, parentID)
	if errors.Is(err, database.ErrNotFound) || (err == nil && recorded == "") {
		return nil, fmt.Errorf("%w: %s %d has no file", ErrNotFound, slot.Entity, parentID)
	}
	if err != nil {
		return nil, err
	}
	return m.openRecorded(ctx, blobName(recorded))
}

// Remove deletes the attachment of slot on parentID. The column is cleared
// only after the blob delete is confirmed.
func (m *Manager) Remove(ctx context.Context, slot Slot, parentID int64) (err error) {
	defer func() { metrics.RecordAttachment(slot.Name, "remove", err) }()

	recorded, err := m.records.AttachmentPath(ctx, slot.Table, slot.Column, parentID)
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", ErrParentNotFound, slot.Entity, parentID)
	}
	if err != nil {
		return err
	}
	if recorded == "" {
		return fmt.Errorf("%w: %s %d has no file", ErrNotFound, slot.Entity, parentID)
	}

	if err := m.deleteBlob(ctx, blobName(recorded)); err != nil {
		return err
	}

	err = m.records.ClearAttachmentPath(ctx, slot.Table, slot.Column, parentID)
	if errors.Is(err, database.ErrNotFound) {
		// Parent deleted since the lookup; nothing left to clear.
		return nil
	}
	return err
}

// AddDocument stores f as a new document of sectorID.
func (m *Manager) AddDocument(ctx context.Context, sectorID int64, title *string, f *Upload) (doc *Document, err error) {
	slot := SectorDocument
	defer func() { metrics.RecordAttachment(slot.Name, "upload", err) }()

	if f.missing() {
		return nil, ErrMissingFile
	}

	name := slot.BlobName(sectorID, f.Filename, m.now())
	if err := m.save(ctx, slot, name, f.Body); err != nil {
		return nil, err
	}

	url := m.URL(name)
	id, err := m.records.AddSectorFile(ctx, sectorID, title, name, url)
	if errors.Is(err, database.ErrParentNotFound) {
		return nil, m.compensate(ctx, name, fmt.Errorf("%w: sector %d", ErrParentNotFound, sectorID))
	}
	if err != nil {
		return nil, m.compensate(ctx, name, err)
	}

	logging.Ctx(ctx).Info().
		Int64("sector_id", sectorID).
		Int64("file_id", id).
		Str("file", name).
		Msg("Sector document stored")
	return &Document{ID: id, FileName: name, URL: url}, nil
}

// Documents lists the documents of sectorID.
func (m *Manager) Documents(ctx context.Context, sectorID int64) ([]models.SectorFile, error) {
	if err := m.requireSector(ctx, sectorID); err != nil {
		return nil, err
	}
	return m.records.SectorFiles(ctx, sectorID)
}

// LatestDocument opens the most recently added document of sectorID.
func (m *Manager) LatestDocument(ctx context.Context, sectorID int64) (*Object, error) {
	sf, err := m.records.LatestSectorFile(ctx, sectorID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: sector %d has no documents", ErrNotFound, sectorID)
	}
	if err != nil {
		return nil, err
	}
	return m.openRecorded(ctx, sf.FileName)
}

// OpenDocument opens a document by its stored name. Names not recorded in
// sector_files are not served.
func (m *Manager) OpenDocument(ctx context.Context, fileName string) (*Object, error) {
	sf, err := m.records.SectorFileByName(ctx, fileName)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, fileName)
	}
	if err != nil {
		return nil, err
	}
	return m.openRecorded(ctx, sf.FileName)
}

// RemoveDocument deletes a document blob and then its row.
func (m *Manager) RemoveDocument(ctx context.Context, sectorID, fileID int64) (err error) {
	defer func() { metrics.RecordAttachment(SectorDocument.Name, "remove", err) }()

	sf, err := m.records.GetSectorFile(ctx, sectorID, fileID)
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: sector %d file %d", ErrNotFound, sectorID, fileID)
	}
	if err != nil {
		return err
	}

	if err := m.deleteBlob(ctx, sf.FileName); err != nil {
		return err
	}
	if err := m.records.DeleteSectorFile(ctx, sectorID, fileID); err != nil && !errors.Is(err, database.ErrNotFound) {
		return err
	}
	return nil
}

// OpenBlob opens any stored blob by name, for static serving.
func (m *Manager) OpenBlob(ctx context.Context, name string) (*Object, error) {
	obj, err := m.store.Open(ctx, name)
	if errors.Is(err, ErrBlobNotFound) || errors.Is(err, ErrInvalidName) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return obj, err
}

// ImportSpreadsheet stores f and inserts one sector_data row per data row.
// A failure part way returns a *database.ImportError.
func (m *Manager) ImportSpreadsheet(ctx context.Context, sectorID int64, f *Upload) (res *ImportResult, err error) {
	slot := SectorSpreadsheet
	defer func() { metrics.RecordAttachment(slot.Name, "import", err) }()

	if f.missing() {
		return nil, ErrMissingFile
	}
	if err := m.requireSector(ctx, sectorID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(f.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := spreadsheet.Decode(bytes.NewReader(data), f.Filename, m.importCfg.MaxRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpreadsheet, err)
	}

	encoded := make([]models.RawJSON, len(rows))
	for i, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("failed to encode row %d: %w", i+1, err)
		}
		encoded[i] = b
	}

	name := slot.BlobName(sectorID, f.Filename, m.now())
	if err := m.save(ctx, slot, name, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	inserted, err := m.records.InsertSectorData(ctx, sectorID, name, encoded, m.importCfg.Transactional)
	metrics.RecordImportRows(inserted, len(encoded)-inserted)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).
			Int64("sector_id", sectorID).
			Str("file", name).
			Int("inserted", inserted).
			Msg("Spreadsheet import failed")
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Int64("sector_id", sectorID).
		Str("file", name).
		Int("rows", inserted).
		Msg("Spreadsheet imported")
	return &ImportResult{FileName: name, Rows: inserted}, nil
}

func (m *Manager) requireSector(ctx context.Context, sectorID int64) error {
	ok, err := m.records.Exists(ctx, query.TableSectors, sectorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: sector %d", ErrParentNotFound, sectorID)
	}
	return nil
}

func (m *Manager) save(ctx context.Context, slot Slot, name string, r io.Reader) error {
	n, err := m.store.Save(ctx, name, r)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", name, err)
	}
	metrics.RecordAttachmentBytes(slot.Name, n)
	return nil
}

// openRecorded opens a blob whose name the record store holds; a missing
// blob means the two stores disagree.
func (m *Manager) openRecorded(ctx context.Context, name string) (*Object, error) {
	obj, err := m.store.Open(ctx, name)
	if errors.Is(err, ErrBlobNotFound) || errors.Is(err, ErrInvalidName) {
		metrics.RecordStorageInconsistency()
		logging.Ctx(ctx).Error().Str("file", name).Msg("Recorded attachment is missing from storage")
		return nil, fmt.Errorf("%w: recorded file %s is missing: %w", ErrStorageInconsistency, name, err)
	}
	return obj, err
}

// deleteBlob treats an already missing blob as deleted.
func (m *Manager) deleteBlob(ctx context.Context, name string) error {
	err := m.store.Delete(ctx, name)
	if errors.Is(err, ErrBlobNotFound) {
		logging.Ctx(ctx).Warn().Str("file", name).Msg("Attachment already missing from storage")
		return nil
	}
	return err
}

// compensate removes a blob whose record could not be written and returns
// cause, or an inconsistency error when the blob is left behind.
func (m *Manager) compensate(ctx context.Context, name string, cause error) error {
	if err := m.deleteBlob(ctx, name); err != nil {
		metrics.RecordStorageInconsistency()
		logging.Ctx(ctx).Error().Err(err).Str("file", name).Msg("Failed to remove orphaned attachment")
		return fmt.Errorf("%w: orphaned %s: %w (cleanup: %w)", ErrStorageInconsistency, name, cause, err)
	}
	return cause
}

func (m *Manager) removeBestEffort(ctx context.Context, name string) {
	if err := m.deleteBlob(ctx, name); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("file", name).Msg("Failed to remove replaced attachment")
	}
}
