// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/database/query"
	"github.com/tomtom215/labormarket/internal/models"
)

// newSQLiteDB opens a bootstrapped SQLite database in a temp directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Dialect:         string(DialectSQLite),
		Path:            filepath.Join(t.TempDir(), "data", "labor.db"),
		BootstrapSchema: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteIndicatorRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	id, err := db.CreateIndicator(ctx, &models.CreateIndicatorRequest{
		Name:          "GDP Growth",
		Description:   strPtr("Quarterly change"),
		Value:         float64Ptr(3.2),
		Unit:          strPtr("%"),
		DateCollected: strPtr("2026-09-30"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := db.GetIndicator(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "GDP Growth", got.Name)
	assert.Equal(t, "Quarterly change", *got.Description)
	assert.InDelta(t, 3.2, *got.Value, 1e-9)
	assert.Equal(t, "2026-09-30", *got.DateCollected)
	assert.Nil(t, got.ImageURL)

	require.NoError(t, db.UpdateIndicator(ctx, id, &models.UpdateIndicatorRequest{Trend: strPtr("up")}))
	got, err = db.GetIndicator(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "up", *got.Trend)
	assert.Equal(t, "GDP Growth", got.Name)

	require.NoError(t, db.DeleteIndicator(ctx, id))
	_, err = db.GetIndicator(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.DeleteIndicator(ctx, id), ErrNotFound)
}

func TestSQLiteListEmptyIsEmptySlice(t *testing.T) {
	db := newSQLiteDB(t)

	states, err := db.ListStates(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, states)
	assert.Empty(t, states)
}

func TestSQLiteKeyFactPartialUpdate(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	id, err := db.CreateKeyFact(ctx, &models.CreateKeyFactRequest{
		StateID:  int64Ptr(2),
		SectorID: int64Ptr(3),
		Fact:     "original",
	})
	require.NoError(t, err)

	require.NoError(t, db.UpdateKeyFact(ctx, id, &models.UpdateKeyFactRequest{Fact: strPtr("updated")}))

	got, err := db.GetKeyFact(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Fact)
	require.NotNil(t, got.StateID)
	require.NotNil(t, got.SectorID)
	assert.Equal(t, int64(2), *got.StateID)
	assert.Equal(t, int64(3), *got.SectorID)
	assert.Nil(t, got.OccupationID)
}

func TestSQLiteKeyFactLookups(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	for _, req := range []models.CreateKeyFactRequest{
		{StateID: int64Ptr(1), IndicatorID: int64Ptr(10), Fact: "a"},
		{StateID: int64Ptr(1), SectorID: int64Ptr(20), Fact: "b"},
		{StateID: int64Ptr(2), SectorID: int64Ptr(20), Fact: "c"},
	} {
		_, err := db.CreateKeyFact(ctx, &req)
		require.NoError(t, err)
	}

	byState, err := db.KeyFactsByReference(ctx, "state_id", 1)
	require.NoError(t, err)
	assert.Len(t, byState, 2)

	bySector, err := db.KeyFactsByStateAndSector(ctx, 2, 20)
	require.NoError(t, err)
	require.Len(t, bySector, 1)
	assert.Equal(t, "c", bySector[0].Fact)

	none, err := db.KeyFactsByStateAndIndicator(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	filtered, err := db.FilterKeyFacts(ctx, models.KeyFactFilter{SectorID: int64Ptr(20)})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestSQLiteSubIndicatorRequiresParent(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	_, err := db.CreateSubIndicator(ctx, &models.CreateSubIndicatorRequest{IndicatorID: 7, Name: "Youth"})
	assert.ErrorIs(t, err, ErrParentNotFound)

	parent, err := db.CreateIndicator(ctx, &models.CreateIndicatorRequest{Name: "Unemployment"})
	require.NoError(t, err)

	id, err := db.CreateSubIndicator(ctx, &models.CreateSubIndicatorRequest{IndicatorID: parent, Name: "Youth", Value: float64Ptr(11.5)})
	require.NoError(t, err)

	list, err := db.ListSubIndicators(ctx, &parent)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	other := parent + 100
	list, err = db.ListSubIndicators(ctx, &other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLiteDataInsights(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	value := models.FlexString("12")

	_, err := db.CreateDataInsight(ctx, &models.CreateDataInsightRequest{
		DataCategory: query.CategoryState,
		CategoryID:   4,
		Name:         "Median age",
		Value:        &value,
	})
	require.NoError(t, err)

	rows, err := db.DataInsightsFor(ctx, query.CategoryState, 4)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12", *rows[0].Value)
	require.NotNil(t, rows[0].StateID)
	assert.Equal(t, int64(4), *rows[0].StateID)
	assert.Nil(t, rows[0].SectorID)

	rows, err = db.DataInsightsFor(ctx, query.CategorySector, 4)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, db.UpdateDataInsights(ctx, query.CategoryState, 4, &models.UpdateDataInsightRequest{Name: strPtr("Mean age")}))
	rows, err = db.DataInsightsFor(ctx, query.CategoryState, 4)
	require.NoError(t, err)
	assert.Equal(t, "Mean age", rows[0].Name)

	assert.ErrorIs(t, db.DeleteDataInsights(ctx, query.CategoryState, 5), ErrNotFound)
	require.NoError(t, db.DeleteDataInsights(ctx, query.CategoryState, 4))
	_, err = db.DataInsightsFor(ctx, "bogus", 4)
	assert.ErrorIs(t, err, query.ErrInvalidCategory)
}

func TestSQLiteAboutByName(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	_, err := db.CreateAboutSection(ctx, &models.CreateAboutSectionRequest{SectionName: "mission", Content: "Inform"})
	require.NoError(t, err)

	require.NoError(t, db.UpdateAboutSection(ctx, "mission", &models.UpdateAboutSectionRequest{Content: strPtr("Inform policy")}))
	got, err := db.GetAboutSection(ctx, "mission")
	require.NoError(t, err)
	assert.Equal(t, "Inform policy", got.Content)

	assert.ErrorIs(t, db.DeleteAboutSection(ctx, "vision"), ErrNotFound)
}

func TestSQLiteAttachmentPaths(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	id, err := db.CreateOccupation(ctx, &models.CreateOccupationRequest{Name: "Nurse"})
	require.NoError(t, err)

	path, err := db.AttachmentPath(ctx, query.TableOccupations, query.ColImageURL, id)
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, db.SetAttachmentPath(ctx, query.TableOccupations, query.ColImageURL, id, "occupations-1.png"))
	path, err = db.AttachmentPath(ctx, query.TableOccupations, query.ColImageURL, id)
	require.NoError(t, err)
	assert.Equal(t, "occupations-1.png", path)

	require.NoError(t, db.ClearAttachmentPath(ctx, query.TableOccupations, query.ColImageURL, id))
	path, err = db.AttachmentPath(ctx, query.TableOccupations, query.ColImageURL, id)
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = db.AttachmentPath(ctx, query.TableOccupations, query.ColImageURL, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.SetAttachmentPath(ctx, query.TableOccupations, query.ColImageURL, 404, "x.png"), ErrNotFound)
}

func TestSQLiteSectorFilesAndData(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	_, err := db.AddSectorFile(ctx, 1, nil, "a.pdf", "a.pdf")
	assert.ErrorIs(t, err, ErrParentNotFound)

	sectorID, err := db.CreateSector(ctx, &models.CreateSectorRequest{Name: "Mining"})
	require.NoError(t, err)

	first, err := db.AddSectorFile(ctx, sectorID, strPtr("Annual report"), "1-report.pdf", "1-report.pdf")
	require.NoError(t, err)
	second, err := db.AddSectorFile(ctx, sectorID, nil, "2-summary.pdf", "2-summary.pdf")
	require.NoError(t, err)

	files, err := db.SectorFiles(ctx, sectorID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "Annual report", *files[0].Title)

	latest, err := db.LatestSectorFile(ctx, sectorID)
	require.NoError(t, err)
	assert.Equal(t, second, latest.ID)

	byName, err := db.SectorFileByName(ctx, "1-report.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, byName.ID)

	require.NoError(t, db.DeleteSectorFile(ctx, sectorID, first))
	assert.ErrorIs(t, db.DeleteSectorFile(ctx, sectorID, first), ErrNotFound)

	n, err := db.InsertSectorData(ctx, sectorID, "jobs.csv", []models.RawJSON{
		models.RawJSON(`{"region":"North","jobs":"120"}`),
		models.RawJSON(`{"region":"South","jobs":"95"}`),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := db.SectorData(ctx, sectorID)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, 2, data[1].RowNumber)
	assert.JSONEq(t, `{"region":"South","jobs":"95"}`, string(data[1].RowData))
}

func TestSchemaStatementsPerDialect(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{DialectDuckDB, "DEFAULT nextval('seq_indicators')"},
		{DialectSQLite, "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{DialectPostgres, "BIGSERIAL PRIMARY KEY"},
		{DialectMySQL, "AUTO_INCREMENT PRIMARY KEY"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			all := strings.Join(SchemaStatements(tt.dialect), "\n")
			assert.NotContains(t, all, "{{")
			assert.Contains(t, all, tt.want)
			assert.Contains(t, all, "CREATE TABLE IF NOT EXISTS sector_data")
		})
	}
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect(" MySQL ")
	require.NoError(t, err)
	assert.Equal(t, DialectMySQL, d)
	assert.Equal(t, "mysql", d.DriverName())
	assert.Equal(t, "sqlite3", DialectSQLite.DriverName())

	_, err = ParseDialect("oracle")
	assert.Error(t, err)
}

func TestMySQLDataSourceParsesTime(t *testing.T) {
	dsn, err := DialectMySQL.dataSource(&config.DatabaseConfig{DSN: "user:pw@tcp(localhost:3306)/labor"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}
