// Labormarket - Labor Market Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labormarket

// Package spreadsheet decodes uploaded xlsx and csv files into rows keyed by
// the header row.
//
// The first non-blank row of the active sheet is the header. Every later
// non-blank row becomes one Row mapping header cell to value. Blank header
// cells and cells past the header are named column_<n> (1-based). A name
// already taken gets the first free numeric suffix, so every column keeps
// its own key.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	// ErrUnsupportedFormat is returned for files that are neither xlsx nor csv.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

	// ErrNoHeader is returned when the sheet has no non-blank row.
	ErrNoHeader = errors.New("spreadsheet has no header row")

	// ErrTooManyRows is returned when the data rows exceed the limit.
	ErrTooManyRows = errors.New("spreadsheet exceeds row limit")
)

// Row is one data row keyed by header name.
type Row map[string]string

// Format is a supported spreadsheet encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat picks the decoder from the file content, falling back to
// the file extension for plain text.
func DetectFormat(data []byte, fileName string) (Format, error) {
	mtype := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(fileName))
	if mtype.Is(xlsxMIME) || (mtype.Is("application/zip") && ext == ".xlsx") {
		return FormatXLSX, nil
	}

	if mtype.Is("text/csv") || (mtype.Is("text/plain") && ext == ".csv") {
		return FormatCSV, nil
	}
	if ext == ".csv" && len(bytes.TrimSpace(data)) == 0 {
		return FormatCSV, nil
	}

	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, fileName, mtype.String())
}

// Decode reads r fully and returns its data rows. maxRows <= 0 means no limit.
func Decode(r io.Reader, fileName string, maxRows int) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	format, err := DetectFormat(data, fileName)
	if err != nil {
		return nil, err
	}

	var grid [][]string
	switch format {
	case FormatXLSX:
		grid, err = readXLSX(data)
	default:
		grid, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}

	return toRows(grid, maxRows)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	// UTF-8 byte order mark written by spreadsheet exports
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

func toRows(grid [][]string, maxRows int) ([]Row, error) {
	start := -1
	for i, cells := range grid {
		if !blank(cells) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrNoHeader
	}

	header := headerNames(grid[start])
	used := make(names, len(header))
	for _, name := range header {
		used[name] = true
	}
	var extra []string

	rows := make([]Row, 0, len(grid)-start-1)
	for _, cells := range grid[start+1:] {
		if blank(cells) {
			continue
		}
		if maxRows > 0 && len(rows) == maxRows {
			return nil, fmt.Errorf("%w of %d", ErrTooManyRows, maxRows)
		}

		row := make(Row, len(header))
		for i, name := range header {
			var v string
			if i < len(cells) {
				v = strings.TrimSpace(cells[i])
			}
			row[name] = v
		}
		// cells beyond the header still get a name
		for i := len(header); i < len(cells); i++ {
			for len(extra) <= i-len(header) {
				extra = append(extra, used.claim(columnName(len(header)+len(extra))))
			}
			if v := strings.TrimSpace(cells[i]); v != "" {
				row[extra[i-len(header)]] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerNames(cells []string) []string {
	out := make([]string, len(cells))
	used := make(names, len(cells))
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = columnName(i)
		}
		out[i] = used.claim(name)
	}
	return out
}

// names is the set of keys already given to columns.
type names map[string]bool

// claim returns base, or base_<n> with the smallest free n >= 2, and marks
// the result as taken.
func (u names) claim(base string) string {
	name := base
	for n := 2; u[name]; n++ {
		name = base + "_" + strconv.Itoa(n)
	}
	u[name] = true
	return name
}

func columnName(i int) string {
	return "column_" + strconv.Itoa(i+1)
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
