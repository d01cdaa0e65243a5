// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

func strPtr(s string) *string       { return &s }
func int64Ptr(i int64) *int64       { return &i }
func float64Ptr(f float64) *float64 { return &f }

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create mock DB")
	t.Cleanup(func() { conn.Close() })

	return NewWithConn(conn, dialect, nil), mock
}

func TestCreateIndicatorPostgres(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO indicators \(name, description, value, unit\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id`).
		WithArgs("GDP Growth", "Quarterly change", 3.2, "%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := db.CreateIndicator(context.Background(), &models.CreateIndicatorRequest{
		Name:        "GDP Growth",
		Description: strPtr("Quarterly change"),
		Value:       float64Ptr(3.2),
		Unit:        strPtr("%"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIndicatorMySQLUsesLastInsertID(t *testing.T) {
	db, mock := newMockDB(t, DialectMySQL)

	mock.ExpectExec(`INSERT INTO indicators \(name\) VALUES \(\?\)`).
		WithArgs("Unemployment").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := db.CreateIndicator(context.Background(), &models.CreateIndicatorRequest{Name: "Unemployment"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateKeyFactOnlyTouchesPresentFields(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectExec(`UPDATE keyfacts SET fact = \$1 WHERE id = \$2`).
		WithArgs("updated", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := db.UpdateKeyFact(context.Background(), 1, &models.UpdateKeyFactRequest{Fact: strPtr("updated")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithoutFieldsNeverTouchesStore(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"indicator", func() error { return db.UpdateIndicator(ctx, 1, &models.UpdateIndicatorRequest{}) }},
		{"sector", func() error { return db.UpdateSector(ctx, 1, &models.UpdateSectorRequest{}) }},
		{"state", func() error { return db.UpdateState(ctx, 1, &models.UpdateStateRequest{}) }},
		{"occupation", func() error { return db.UpdateOccupation(ctx, 1, &models.UpdateOccupationRequest{}) }},
		{"keyfact", func() error { return db.UpdateKeyFact(ctx, 1, &models.UpdateKeyFactRequest{}) }},
		{"subindicator", func() error { return db.UpdateSubIndicator(ctx, 1, &models.UpdateSubIndicatorRequest{}) }},
		{"detail", func() error { return db.UpdateIndicatorDetail(ctx, 1, &models.UpdateIndicatorDetailRequest{}) }},
		{"insight", func() error {
			return db.UpdateDataInsights(ctx, query.CategorySector, 1, &models.UpdateDataInsightRequest{})
		}},
		{"about", func() error { return db.UpdateAboutSection(ctx, "mission", &models.UpdateAboutSectionRequest{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			assert.ErrorIs(t, err, query.ErrValidation)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterWithoutFiltersNeverTouchesStore(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	_, err := db.FilterKeyFacts(context.Background(), models.KeyFactFilter{})
	assert.ErrorIs(t, err, query.ErrValidation)

	_, err = db.FilterIndicatorDetails(context.Background(), models.IndicatorDetailFilter{})
	assert.ErrorIs(t, err, query.ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterKeyFactsSubset(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectQuery(`SELECT id, state_id, sector_id, occupation_id, indicator_id, fact FROM keyfacts WHERE state_id = \$1 AND indicator_id = \$2 ORDER BY id`).
		WithArgs(int64(4), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "sector_id", "occupation_id", "indicator_id", "fact"}).
			AddRow(3, 4, nil, nil, 9, "Largest employer"))

	facts, err := db.FilterKeyFacts(context.Background(), models.KeyFactFilter{
		StateID:     int64Ptr(4),
		IndicatorID: int64Ptr(9),
	})
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, "Largest employer", facts[0].Fact)
	assert.Nil(t, facts[0].SectorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyFactsByReferenceRejectsUnknownType(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	_, err := db.KeyFactsByReference(context.Background(), "name", 1)
	assert.ErrorIs(t, err, query.ErrInvalidCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDataInsightBogusCategory(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	_, err := db.CreateDataInsight(context.Background(), &models.CreateDataInsightRequest{
		DataCategory: "bogus",
		CategoryID:   1,
		Name:         "Growth",
	})
	assert.ErrorIs(t, err, query.ErrInvalidCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDataInsightUsesCategoryColumn(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	value := models.FlexString("4.5")

	mock.ExpectQuery(`INSERT INTO data_insights \(data_category, occupation_id, name, value, created_at, updated_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) RETURNING id`).
		WithArgs("occupation", int64(12), "Growth", "4.5", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	id, err := db.CreateDataInsight(context.Background(), &models.CreateDataInsightRequest{
		DataCategory: "occupation",
		CategoryID:   12,
		Name:         "Growth",
		Value:        &value,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectExec(`DELETE FROM indicators WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := db.DeleteIndicator(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectQuery(`SELECT id, section_name, content FROM about WHERE section_name = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "section_name", "content"}))

	_, err := db.GetAboutSection(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFailureIsWrapped(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .* FROM sectors ORDER BY id`).WillReturnError(boom)

	_, err := db.ListSectors(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to list sectors")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddSectorFileParentMissing(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO sector_files \(sector_id, title, file_name, file_path\) SELECT id, \$1, \$2, \$3 FROM sectors WHERE id = \$4 RETURNING id`).
		WithArgs(nil, "1700000000000-report.pdf", "1700000000000-report.pdf", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := db.AddSectorFile(context.Background(), 5, nil, "1700000000000-report.pdf", "1700000000000-report.pdf")
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddSectorFileMySQLParentMissing(t *testing.T) {
	db, mock := newMockDB(t, DialectMySQL)

	mock.ExpectExec(`INSERT INTO sector_files .* SELECT id, \?, \?, \? FROM sectors WHERE id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := db.AddSectorFile(context.Background(), 5, strPtr("Report"), "a.pdf", "a.pdf")
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubIndicatorParentMissing(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM indicators WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	_, err := db.CreateSubIndicator(context.Background(), &models.CreateSubIndicatorRequest{
		IndicatorID: 42,
		Name:        "Youth",
	})
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSectorDataStopsAtFailingRow(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)
	boom := errors.New("value too long")

	insert := `INSERT INTO sector_data \(sector_id, source_file, row_num, row_data\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id`
	mock.ExpectQuery(insert).WithArgs(int64(3), "data.xlsx", int64(1), `{"a":"1"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(insert).WithArgs(int64(3), "data.xlsx", int64(2), `{"a":"2"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(insert).WithArgs(int64(3), "data.xlsx", int64(3), `{"a":"3"}`).
		WillReturnError(boom)

	rows := []models.RawJSON{
		models.RawJSON(`{"a":"1"}`),
		models.RawJSON(`{"a":"2"}`),
		models.RawJSON(`{"a":"3"}`),
		models.RawJSON(`{"a":"4"}`),
	}

	inserted, err := db.InsertSectorData(context.Background(), 3, "data.xlsx", rows, false)
	require.Error(t, err)
	assert.Equal(t, 2, inserted)

	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 2, ie.Inserted)
	assert.Equal(t, 3, ie.Row)
	assert.False(t, ie.RolledBack)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSectorDataTransactionalRollsBack(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	insert := `INSERT INTO sector_data .* RETURNING id`
	mock.ExpectBegin()
	mock.ExpectQuery(insert).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(insert).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	rows := []models.RawJSON{models.RawJSON(`{}`), models.RawJSON(`{}`)}
	inserted, err := db.InsertSectorData(context.Background(), 3, "data.csv", rows, true)

	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 0, ie.Inserted)
	assert.Equal(t, 2, ie.Row)
	assert.True(t, ie.RolledBack)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAttachmentPathWritesNull(t *testing.T) {
	db, mock := newMockDB(t, DialectPostgres)

	mock.ExpectExec(`UPDATE occupations SET image_url = \$1 WHERE id = \$2`).
		WithArgs(nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := db.ClearAttachmentPath(context.Background(), query.TableOccupations, query.ColImageURL, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
