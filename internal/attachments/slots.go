// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

package attachments

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/labormarket/internal/database/query"
)

// Naming selects how a slot names its blobs.
type Naming int

const (
	// NamingStable derives the name from the parent: one file per parent.
	NamingStable Naming = iota
	// NamingUnique prefixes the original name with a millisecond timestamp.
	NamingUnique
)

// Slot describes one kind of attachment.
type Slot struct {
	Name   string
	Entity string
	Table  query.Table
	Column query.Column
	Naming Naming
	// Field is the multipart form field the upload arrives in.
	Field string
}

var (
	IndicatorImage    = imageSlot("indicators", query.TableIndicators)
	SectorImage       = imageSlot("sectors", query.TableSectors)
	StateImage        = imageSlot("states", query.TableStates)
	OccupationImage   = imageSlot("occupations", query.TableOccupations)
	SubIndicatorImage = imageSlot("subIndicators", query.TableSubIndicators)

	SectorDocument = Slot{
		Name:   "sector-document",
		Entity: "sectors",
		Table:  query.TableSectorFiles,
		Naming: NamingUnique,
		Field:  "file",
	}
	SectorSpreadsheet = Slot{
		Name:   "sector-spreadsheet",
		Entity: "sectors",
		Table:  query.TableSectorData,
		Naming: NamingUnique,
		Field:  "file",
	}
)

var imageSlots = map[string]Slot{
	IndicatorImage.Entity:    IndicatorImage,
	SectorImage.Entity:       SectorImage,
	StateImage.Entity:        StateImage,
	OccupationImage.Entity:   OccupationImage,
	SubIndicatorImage.Entity: SubIndicatorImage,
}

func imageSlot(entity string, table query.Table) Slot {
	return Slot{
		Name:   entity + "-image",
		Entity: entity,
		Table:  table,
		Column: query.ColImageURL,
		Naming: NamingStable,
		Field:  "image",
	}
}

// ImageSlot returns the image slot for a route entity segment such as
// "indicators" or "subIndicators".
func ImageSlot(entity string) (Slot, bool) {
	s, ok := imageSlots[entity]
	return s, ok
}

var (
	extPattern    = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)
	unsafeNameRun = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// BlobName returns the name a new upload to this slot is stored under.
func (s Slot) BlobName(parentID int64, original string, now time.Time) string {
	if s.Naming == NamingStable {
		ext := strings.ToLower(filepath.Ext(original))
		if !extPattern.MatchString(ext) {
			ext = ""
		}
		return s.Entity + "-" + strconv.FormatInt(parentID, 10) + ext
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), sanitizeName(original))
}

// sanitizeName keeps the base of an uploaded file name, replacing anything
// that is not safe in a URL path segment.
func sanitizeName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	base = unsafeNameRun.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, ".")
	if base == "" || base == "_" {
		return "file"
	}
	return base
}
