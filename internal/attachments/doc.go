// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

/*
Package attachments binds uploaded files to labor market records.

A Slot names one kind of attachment: the single image column of an entity
(indicators, sectors, states, occupations, sub-indicators), the document
list of a sector, or the spreadsheet imports of a sector. Blobs live in a
Store (a local directory or a Google Cloud Storage bucket); the record
store keeps only the blob name.

# Naming

Single-slot images use a stable name derived from the parent,
"<entity>-<id><ext>", so a new upload replaces the previous file.
Multi-attachment slots use "<unixmillis>-<original name>" so uploads never
collide.

# Lifecycle

Upload writes the blob first and records it second. When recording fails
the blob is deleted again; if that compensating delete also fails the
error wraps ErrStorageInconsistency so the orphan is visible.

Remove deletes the blob first and clears the column only after the delete
is confirmed. A blob that is already gone counts as deleted. A failed
delete leaves the column set.

Concurrent Upload and Remove on the same parent are not coordinated: an
upload's column update can land after a remove's blob delete.
*/
package attachments
