// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/database"
	"github.com/tomtom215/labormarket/internal/database/query"
)

func newTestManager(t *testing.T, importCfg *config.ImportConfig) (*Manager, *memStore, *memRecords) {
	t.Helper()
	store := newMemStore()
	records := newMemRecords()
	m := NewManager(store, records, &config.AttachmentsConfig{PublicPath: "uploads"}, importCfg)
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return m, store, records
}

func TestUploadMissingFile(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableOccupations, 5, "")

	for name, f := range map[string]*Upload{
		"nil":        nil,
		"empty name": {Filename: " ", Size: 3, Body: nil},
		"zero bytes": upload("photo.png", ""),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Upload(context.Background(), OccupationImage, 5, f)
			assert.ErrorIs(t, err, ErrMissingFile)
		})
	}
	assert.Equal(t, 0, store.saves)
}

func TestUploadStoresAndRecords(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableIndicators, 1, "")

	url, err := m.Upload(context.Background(), IndicatorImage, 1, upload("GDP.PNG", "png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/indicators-1.png", url)
	assert.Equal(t, url, records.path(query.TableIndicators, 1))
	assert.True(t, store.has("indicators-1.png"))
}

func TestUploadMissingParentLeavesNoBlob(t *testing.T) {
	m, store, _ := newTestManager(t, nil)

	_, err := m.Upload(context.Background(), SectorImage, 99, upload("a.jpg", "jpg"))
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.Equal(t, 0, store.count())
}

func TestUploadParentGoneAfterStoreCompensates(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableStates, 3, "")
	records.setErr = database.ErrNotFound

	_, err := m.Upload(context.Background(), StateImage, 3, upload("map.png", "png"))
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.Equal(t, 0, store.count())
}

func TestUploadCompensationFailureIsInconsistency(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableStates, 3, "")
	storeErr := errors.New("connection reset")
	records.setErr = storeErr
	store.deleteErr = errors.New("permission denied")

	_, err := m.Upload(context.Background(), StateImage, 3, upload("map.png", "png"))
	assert.ErrorIs(t, err, ErrStorageInconsistency)
	assert.ErrorIs(t, err, storeErr)
	assert.True(t, store.has("states-3.png"))
}

func TestUploadReplacesPreviousFile(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableSectors, 2, "")
	ctx := context.Background()

	_, err := m.Upload(ctx, SectorImage, 2, upload("old.jpg", "jpg"))
	require.NoError(t, err)
	_, err = m.Upload(ctx, SectorImage, 2, upload("new.png", "png"))
	require.NoError(t, err)

	assert.False(t, store.has("sectors-2.jpg"))
	assert.True(t, store.has("sectors-2.png"))
	assert.Equal(t, "/uploads/sectors-2.png", records.path(query.TableSectors, 2))
}

func TestOpen(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableIndicators, 1, "")
	records.addRow(query.TableIndicators, 2, "/uploads/indicators-2.png")
	ctx := context.Background()

	_, err := m.Open(ctx, IndicatorImage, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Open(ctx, IndicatorImage, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Open(ctx, IndicatorImage, 2)
	assert.ErrorIs(t, err, ErrStorageInconsistency)

	_, err = store.Save(ctx, "indicators-2.png", upload("x", "png").Body)
	require.NoError(t, err)
	obj, err := m.Open(ctx, IndicatorImage, 2)
	require.NoError(t, err)
	defer obj.Close()
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))
}

func TestRemoveKeepsColumnWhenDeleteFails(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableOccupations, 5, "")
	ctx := context.Background()

	_, err := m.Upload(ctx, OccupationImage, 5, upload("chef.png", "png"))
	require.NoError(t, err)

	store.deleteErr = errors.New("disk unavailable")
	err = m.Remove(ctx, OccupationImage, 5)
	require.Error(t, err)
	assert.Equal(t, "/uploads/occupations-5.png", records.path(query.TableOccupations, 5))

	store.deleteErr = nil
	require.NoError(t, m.Remove(ctx, OccupationImage, 5))
	assert.Empty(t, records.path(query.TableOccupations, 5))
	assert.False(t, store.has("occupations-5.png"))
}

func TestRemoveMissingBlobCountsAsDeleted(t *testing.T) {
	m, _, records := newTestManager(t, nil)
	records.addRow(query.TableSubIndicators, 7, "/uploads/subIndicators-7.gif")

	require.NoError(t, m.Remove(context.Background(), SubIndicatorImage, 7))
	assert.Empty(t, records.path(query.TableSubIndicators, 7))
}

func TestRemoveNothingAttached(t *testing.T) {
	m, _, records := newTestManager(t, nil)
	records.addRow(query.TableSectors, 1, "")
	ctx := context.Background()

	assert.ErrorIs(t, m.Remove(ctx, SectorImage, 1), ErrNotFound)
	assert.ErrorIs(t, m.Remove(ctx, SectorImage, 2), ErrParentNotFound)
}

func TestDocuments(t *testing.T) {
	m, store, records := newTestManager(t, nil)
	records.addRow(query.TableSectors, 1, "")
	ctx := context.Background()
	title := "Annual report"

	doc, err := m.AddDocument(ctx, 1, &title, upload("Report 2024.pdf", "%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000000-Report_2024.pdf", doc.FileName)
	assert.Equal(t, "/uploads/1700000000000-Report_2024.pdf", doc.URL)
	assert.True(t, store.has(doc.FileName))

	files, err := m.Documents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, &title, files[0].Title)

	obj, err := m.LatestDocument(ctx, 1)
	require.NoError(t, err)
	obj.Close()

	obj, err = m.OpenDocument(ctx, doc.FileName)
	require.NoError(t, err)
	obj.Close()

	_, err = m.OpenDocument(ctx, "unrecorded.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.RemoveDocument(ctx, 1, doc.ID))
	assert.False(t, store.has(doc.FileName))
	assert.ErrorIs(t, m.RemoveDocument(ctx, 1, doc.ID), ErrNotFound)

	_, err = m.LatestDocument(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddDocumentMissingSectorLeavesNoBlob(t *testing.T) {
	m, store, _ := newTestManager(t, nil)

	_, err := m.AddDocument(context.Background(), 42, nil, upload("a.pdf", "%PDF"))
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.Equal(t, 0, store.count())

	_, err = m.Documents(context.Background(), 42)
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestImportSpreadsheet(t *testing.T) {
	m, store, records := newTestManager(t, &config.ImportConfig{MaxRows: 100})
	records.addRow(query.TableSectors, 1, "")

	res, err := m.ImportSpreadsheet(context.Background(), 1,
		upload("jobs.csv", "region,jobs\nNorth,120\nSouth,80\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "1700000000000-jobs.csv", res.FileName)
	assert.True(t, store.has(res.FileName))
	require.Len(t, records.imported, 2)
	assert.JSONEq(t, `{"region":"North","jobs":"120"}`, string(records.imported[0]))
}

func TestImportSpreadsheetFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing sector", func(t *testing.T) {
		m, store, _ := newTestManager(t, nil)
		_, err := m.ImportSpreadsheet(ctx, 9, upload("jobs.csv", "a\n1\n"))
		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.Equal(t, 0, store.count())
	})

	t.Run("undecodable", func(t *testing.T) {
		m, store, records := newTestManager(t, nil)
		records.addRow(query.TableSectors, 1, "")
		_, err := m.ImportSpreadsheet(ctx, 1, upload("notes.txt", "\x00\x01\x02binary"))
		assert.ErrorIs(t, err, ErrInvalidSpreadsheet)
		assert.Equal(t, 0, store.count())
	})

	t.Run("row failure", func(t *testing.T) {
		m, _, records := newTestManager(t, nil)
		records.addRow(query.TableSectors, 1, "")
		records.importErr = &database.ImportError{Inserted: 1, Row: 2, Err: errors.New("value too long")}

		_, err := m.ImportSpreadsheet(ctx, 1, upload("jobs.csv", "a\n1\n2\n3\n"))
		var ie *database.ImportError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, 2, ie.Row)
		assert.Len(t, records.imported, 1)
	})
}

func TestOpenBlob(t *testing.T) {
	m, store, _ := newTestManager(t, nil)
	ctx := context.Background()

	_, err := m.OpenBlob(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Save(ctx, "sectors-1.png", upload("x", "png").Body)
	require.NoError(t, err)
	obj, err := m.OpenBlob(ctx, "sectors-1.png")
	require.NoError(t, err)
	obj.Close()
}
