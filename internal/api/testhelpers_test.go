// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/config"
	"github.com/tomtom215/labormarket/internal/database"
)

// testServer is a router over a bootstrapped SQLite database and a local
// attachment store, both in temp directories.
type testServer struct {
	t       *testing.T
	handler http.Handler
	db      *database.DB
	store   *attachments.LocalStore
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{BasePath: "/api"},
		Database: config.DatabaseConfig{
			Dialect:         "sqlite",
			Path:            filepath.Join(dir, "labor.db"),
			BootstrapSchema: true,
		},
		Attachments: config.AttachmentsConfig{
			Backend:        "local",
			Dir:            filepath.Join(dir, "uploads"),
			PublicPath:     "/uploads",
			MaxUploadBytes: 1 << 20,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(t))
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	db, err := database.New(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := attachments.NewLocalStore(cfg.Attachments.Dir)
	require.NoError(t, err)

	manager := attachments.NewManager(store, db, &cfg.Attachments, &cfg.Import)
	handler := NewHandler(db, manager, cfg, "test")

	return &testServer{
		t:       t,
		handler: NewRouter(handler, cfg).Setup(),
		db:      db,
		store:   store,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// doJSON sends body (nil for none) encoded as JSON.
func (s *testServer) doJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			r = strings.NewReader(raw)
		} else {
			data, err := json.Marshal(body)
			require.NoError(s.t, err)
			r = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req)
}

// upload sends a multipart form with one file part (skipped when fileName
// is empty) and the given values.
func (s *testServer) upload(path, field, fileName string, content []byte, values map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile(field, fileName)
		require.NoError(s.t, err)
		_, err = part.Write(content)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// errorCode returns error.code of an error body.
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	detail, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "no error object in %s", w.Body.String())
	code, _ := detail["code"].(string)
	return code
}

// mustCreate posts body and returns the id found under key.
func (s *testServer) mustCreate(path, key string, body interface{}) int64 {
	s.t.Helper()
	w := s.doJSON(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(s.t, w)
	id, ok := out[key].(float64)
	require.True(s.t, ok, "no %s in %s", key, w.Body.String())
	return int64(id)
}
