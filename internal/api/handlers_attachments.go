// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/labormarket/internal/attachments"
	"github.com/tomtom215/labormarket/internal/logging"
)

const (
	fileNotFound     = "File not found"
	documentNotFound = "No file found for this sector"
)

// parentNotFound maps an image slot to the 404 message for its parent.
var parentNotFound = map[string]string{
	attachments.IndicatorImage.Entity:    indicatorNotFound,
	attachments.SectorImage.Entity:       sectorNotFound,
	attachments.StateImage.Entity:        stateNotFound,
	attachments.OccupationImage.Entity:   occupationNotFound,
	attachments.SubIndicatorImage.Entity: subIndicatorNotFound,
}

func entityNotFound(slot attachments.Slot) string {
	if msg, ok := parentNotFound[slot.Entity]; ok {
		return msg
	}
	return "Record not found"
}

// closeUpload closes a multipart file once the handler is done with it.
func closeUpload(r *http.Request, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to close upload")
	}
}

// UploadImage returns the handler for POST /{entity}/{id}/uploadImage. A
// new image replaces the previous one.
func (h *Handler) UploadImage(slot attachments.Slot) http.HandlerFunc {
	notFound := entityNotFound(slot)
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondErr(w, r, err, notFound)
			return
		}

		upload, closer, err := formFile(w, r, slot.Field, h.maxUploadBytes())
		defer closeUpload(r, closer)
		if err != nil {
			respondErr(w, r, err, notFound)
			return
		}

		url, err := h.attachments.Upload(r.Context(), slot, id, upload)
		if err != nil {
			respondErr(w, r, err, notFound)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "File uploaded successfully",
			"filePath": url,
		})
	}
}

// GetImage returns the handler for GET /{entity}/{id}/image.
func (h *Handler) GetImage(slot attachments.Slot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondErr(w, r, err, fileNotFound)
			return
		}

		obj, err := h.attachments.Open(r.Context(), slot, id)
		if err != nil {
			respondErr(w, r, err, fileNotFound)
			return
		}
		respondObject(w, r, obj)
	}
}

// DeleteImage returns the handler for DELETE /{entity}/{id}/image. The file
// goes first, then the column.
func (h *Handler) DeleteImage(slot attachments.Slot) http.HandlerFunc {
	notFound := entityNotFound(slot)
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondErr(w, r, err, notFound)
			return
		}

		err = h.attachments.Remove(r.Context(), slot, id)
		switch {
		case err == nil:
			respondMessage(w, http.StatusOK, "Image deleted successfully")
		case errors.Is(err, attachments.ErrNotFound):
			// The parent exists but has nothing attached.
			respondErr(w, r, err, "No image found")
		default:
			respondErr(w, r, err, notFound)
		}
	}
}

// UploadSectorDocument handles POST /sectors/{id}/upload and the
// /upload/pdf/{sectorId} alias.
func (h *Handler) UploadSectorDocument(w http.ResponseWriter, r *http.Request) {
	param := "id"
	if chi.URLParam(r, "sectorId") != "" {
		param = "sectorId"
	}
	id, err := pathID(r, param)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	upload, closer, err := formFile(w, r, attachments.SectorDocument.Field, h.maxUploadBytes())
	defer closeUpload(r, closer)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	doc, err := h.attachments.AddDocument(r.Context(), id, formValue(r, "title"), upload)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "File uploaded successfully",
		"fileId":   doc.ID,
		"fileName": doc.FileName,
		"filePath": doc.URL,
	})
}

// LatestSectorDocument handles GET /sectors/{id}/file.
func (h *Handler) LatestSectorDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, documentNotFound)
		return
	}

	obj, err := h.attachments.LatestDocument(r.Context(), id)
	if err != nil {
		respondErr(w, r, err, documentNotFound)
		return
	}
	respondObject(w, r, obj)
}

// ListSectorDocuments handles GET /sectors/{id}/files.
func (h *Handler) ListSectorDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	rows, err := h.attachments.Documents(r.Context(), id)
	respondList(w, r, rows, err, listSpec{notFound: sectorNotFound})
}

// DeleteSectorDocument handles DELETE /sectors/{id}/files/{fileId}.
func (h *Handler) DeleteSectorDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, fileNotFound)
		return
	}
	fileID, err := pathID(r, "fileId")
	if err != nil {
		respondErr(w, r, err, fileNotFound)
		return
	}

	if err := h.attachments.RemoveDocument(r.Context(), id, fileID); err != nil {
		respondErr(w, r, err, fileNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "File deleted successfully")
}

// SectorDocumentByName handles GET /sectors/files/{fileName}.
func (h *Handler) SectorDocumentByName(w http.ResponseWriter, r *http.Request) {
	obj, err := h.attachments.OpenDocument(r.Context(), chi.URLParam(r, "fileName"))
	if err != nil {
		respondErr(w, r, err, fileNotFound)
		return
	}
	respondObject(w, r, obj)
}

// ImportSectorSpreadsheet handles POST /sectors/{id}/uploadXcel. Each data
// row of the first sheet becomes one sector_data row keyed by the header.
func (h *Handler) ImportSectorSpreadsheet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	upload, closer, err := formFile(w, r, attachments.SectorSpreadsheet.Field, h.maxUploadBytes())
	defer closeUpload(r, closer)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}

	res, err := h.attachments.ImportSpreadsheet(r.Context(), id, upload)
	if err != nil {
		respondErr(w, r, err, sectorNotFound)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "File uploaded and data inserted successfully",
		"fileName": res.FileName,
		"rows":     res.Rows,
	})
}

// ServeUpload handles GET /uploads/*.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	obj, err := h.attachments.OpenBlob(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		respondErr(w, r, err, fileNotFound)
		return
	}
	respondObject(w, r, obj)
}
