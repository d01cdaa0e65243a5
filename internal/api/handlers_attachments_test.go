// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/labormarket/internal/attachments"
)

// pngBytes is a minimal PNG header, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func storedFiles(t *testing.T, s *testServer) []string {
	t.Helper()
	entries, err := os.ReadDir(s.store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadImageWithoutFile(t *testing.T) {
	s := newTestServer(t)

	w := s.upload("/api/occupations/5/uploadImage", "image", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decode(t, w)["message"])
	assert.Equal(t, ErrCodeMissingFile, errorCode(t, w))

	// A part under the wrong field name is also missing.
	w = s.upload("/api/occupations/5/uploadImage", "file", "a.png", pngBytes, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Not multipart at all.
	w = s.doJSON(http.MethodPost, "/api/occupations/5/uploadImage", map[string]string{"image": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeMissingFile, errorCode(t, w))
}

func TestUploadImageMissingParentLeavesNoFile(t *testing.T) {
	s := newTestServer(t)

	w := s.upload("/api/states/7/uploadImage", "image", "flag.png", pngBytes, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	assert.Equal(t, ErrCodeParentNotFound, errorCode(t, w))
	assert.Equal(t, "State not found", decode(t, w)["message"])
	assert.Empty(t, storedFiles(t, s))
}

func TestImageRoundTrip(t *testing.T) {
	s := newTestServer(t)
	s.mustCreate("/api/sectors", "sectorId", map[string]interface{}{"name": "Mining"})

	w := s.doJSON(http.MethodGet, "/api/sectors/1/image", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.upload("/api/sectors/1/uploadImage", "image", "Logo.PNG", pngBytes, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "File uploaded successfully", body["message"])
	assert.Equal(t, "/uploads/sectors-1.png", body["filePath"])
	assert.Equal(t, []string{"sectors-1.png"}, storedFiles(t, s))

	w = s.doJSON(http.MethodGet, "/api/sectors/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/uploads/sectors-1.png", decode(t, w)["image_url"])

	w = s.doJSON(http.MethodGet, "/api/sectors/1/image", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = s.doJSON(http.MethodGet, "/uploads/sectors-1.png", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())

	w = s.doJSON(http.MethodDelete, "/api/sectors/1/image", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, storedFiles(t, s))

	w = s.doJSON(http.MethodGet, "/api/sectors/1", nil)
	assert.Nil(t, decode(t, w)["image_url"])

	w = s.doJSON(http.MethodDelete, "/api/sectors/1/image", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodeNotFound, errorCode(t, w))
	assert.Equal(t, "No image found", decode(t, w)["message"])

	w = s.doJSON(http.MethodDelete, "/api/sectors/9/image", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodeParentNotFound, errorCode(t, w))
}

func TestImageReplaceRemovesOldFile(t *testing.T) {
	s := newTestServer(t)
	s.mustCreate("/api/indicators", "indicatorId", map[string]interface{}{"name": "CPI"})

	w := s.upload("/api/indicators/1/uploadImages", "image", "chart.png", pngBytes, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.upload("/api/indicators/1/uploadImage", "image", "chart.jpg", []byte("\xff\xd8\xff\xe0 jpeg"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "/uploads/indicators-1.jpg", decode(t, w)["filePath"])
	assert.Equal(t, []string{"indicators-1.jpg"}, storedFiles(t, s))
}

func TestImageMissingBlobIsInconsistency(t *testing.T) {
	s := newTestServer(t)
	s.mustCreate("/api/states", "stateId", map[string]interface{}{"name": "Ohio"})

	w := s.upload("/api/states/1/uploadImage", "image", "flag.png", pngBytes, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, os.Remove(filepath.Join(s.store.Dir(), "states-1.png")))

	w = s.doJSON(http.MethodGet, "/api/states/1/image", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ErrCodeStorageInconsistency, errorCode(t, w))

	// Removing a record whose file is already gone still clears it.
	w = s.doJSON(http.MethodDelete, "/api/states/1/image", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSectorDocuments(t *testing.T) {
	s := newTestServer(t)

	w := s.upload("/api/sectors/1/upload", "file", "report.pdf", []byte("%PDF-1.4 report"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	assert.Empty(t, storedFiles(t, s))

	s.mustCreate("/api/sectors", "sectorId", map[string]interface{}{"name": "Mining"})

	w = s.doJSON(http.MethodGet, "/api/sectors/1/file", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.upload("/api/sectors/1/upload", "file", "Annual Report.pdf", []byte("%PDF-1.4 first"), map[string]string{"title": "Annual"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode(t, w)
	assert.Equal(t, float64(1), first["fileId"])
	assert.Contains(t, first["fileName"], "-Annual_Report.pdf")

	w = s.upload("/api/upload/pdf/1", "file", "q3.pdf", []byte("%PDF-1.4 second"), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	second := decode(t, w)

	w = s.doJSON(http.MethodGet, "/api/sectors/1/files", nil)
	require.Equal(t, http.StatusOK, w.Code)
	files := decodeList(t, w)
	require.Len(t, files, 2)

	w = s.doJSON(http.MethodGet, "/api/sectors/1/file", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 second", w.Body.String())

	w = s.doJSON(http.MethodGet, "/api/sectors/files/"+first["fileName"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 first", w.Body.String())

	w = s.doJSON(http.MethodGet, "/api/sectors/files/unrecorded.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.doJSON(http.MethodDelete, "/api/sectors/1/files/2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, storedFiles(t, s), second["fileName"])

	w = s.doJSON(http.MethodDelete, "/api/sectors/1/files/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.doJSON(http.MethodGet, "/api/sectors/2/files", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSpreadsheetImport(t *testing.T) {
	s := newTestServer(t)
	s.mustCreate("/api/sectors", "sectorId", map[string]interface{}{"name": "Mining"})

	w := s.upload("/api/sectors/1/uploadXcel", "file", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeMissingFile, errorCode(t, w))

	w = s.upload("/api/sectors/1/uploadXcel", "file", "jobs.bin", []byte{0x00, 0x01, 0x02, 0x03}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, ErrCodeInvalidSpreadsheet, errorCode(t, w))
	assert.Empty(t, storedFiles(t, s))

	csv := []byte("Region,Jobs\nNorth,120\nSouth,95\n")
	w = s.upload("/api/sectors/2/uploadXcel", "file", "jobs.csv", csv, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.upload("/api/sectors/1/uploadXcel", "file", "jobs.csv", csv, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(2), decode(t, w)["rows"])

	w = s.doJSON(http.MethodGet, "/api/sectors/1/data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeList(t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]interface{}{"Region": "North", "Jobs": "120"}, rows[0]["row_data"])

	w = s.doJSON(http.MethodGet, "/api/sectors/9/data", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeUploadRejectsTraversal(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/uploads/missing.png", "/uploads/../labor.db", "/uploads/a/b.png"} {
		w := s.doJSON(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestUploadTooLarge(t *testing.T) {
	cfg := testConfig(t)
	cfg.Attachments.MaxUploadBytes = 512
	s := newTestServerWithConfig(t, cfg)
	s.mustCreate("/api/sectors", "sectorId", map[string]interface{}{"name": "Mining"})

	big := make([]byte, 4096)
	w := s.upload("/api/sectors/1/uploadImage", "image", "big.png", big, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Empty(t, storedFiles(t, s))
}

// undeletableStore is a local store whose blobs cannot be removed.
type undeletableStore struct {
	*attachments.LocalStore
}

func (undeletableStore) Delete(context.Context, string) error {
	return errors.New("permission denied")
}

func TestUploadDocumentOrphanIsInconsistency(t *testing.T) {
	cfg := testConfig(t)
	s := newTestServerWithConfig(t, cfg)

	manager := attachments.NewManager(undeletableStore{s.store}, s.db, &cfg.Attachments, &cfg.Import)
	s.handler = NewRouter(NewHandler(s.db, manager, cfg, "test"), cfg).Setup()

	w := s.upload("/api/sectors/999/upload", "file", "report.pdf", []byte("%PDF-1.4 report"), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	assert.Equal(t, ErrCodeStorageInconsistency, errorCode(t, w))
	assert.Len(t, storedFiles(t, s), 1)
}
