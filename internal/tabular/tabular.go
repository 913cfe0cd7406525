// Package tabular parses uploaded vendor exports into in-memory tables: an
// ordered header plus rows of string cells. It owns all byte-level format
// concerns (CSV dialects, spreadsheet workbooks, BOMs, vendor missing-value
// sentinels) so the normalization engine only ever sees clean columns and
// rows with a single absent marker, the empty string.
package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table is one parsed input file.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Extensions lists the supported input file extensions, without dots.
//
//nolint:gochecknoglobals // Static format table
var Extensions = []string{"csv", "xlsx", "xls"}

// Supported reports whether the filename has a parseable extension.
func Supported(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Read parses one input file, dispatching on the filename extension.
func Read(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(filename, r)
	case ".xlsx", ".xls":
		return ReadWorkbook(filename, r)
	default:
		return Table{}, fmt.Errorf("unsupported file type: %s", filename)
	}
}

// missingSentinels are vendor spellings of "no value". Cells matching one
// (case-insensitively) collapse to the empty string, the single absent
// marker the rest of the pipeline relies on.
//
//nolint:gochecknoglobals // Static format table
var missingSentinels = map[string]struct{}{
	"nan": {}, "n/a": {}, "na": {}, "null": {}, "none": {}, "#n/a": {},
}

// cleanCell trims a cell and collapses missing-value sentinels to "".
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if _, missing := missingSentinels[strings.ToLower(v)]; missing {
		return ""
	}
	return v
}

// headerCleaner strips format noise from header cells: NFC normalization
// plus removal of control and format runes (BOMs, zero-width spaces) that
// spreadsheet exports are fond of leaking into the first cell.
//
//nolint:gochecknoglobals // Shared immutable transformer chain
var headerCleaner = transform.Chain(
	norm.NFC,
	runes.Remove(runes.In(unicode.C)),
)

// cleanHeader normalizes one header cell: rune cleanup, then whitespace
// collapsed to single spaces so "Phone  1" and "Phone 1" compare equal.
func cleanHeader(v string) string {
	cleaned, _, err := transform.String(headerCleaner, v)
	if err != nil {
		cleaned = v
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// shape fits one data row to the header width: short rows are padded with
// empty cells, long rows truncated, and every cell cleaned.
func shape(row []string, width int) []string {
	shaped := make([]string, width)
	for i := range shaped {
		if i < len(row) {
			shaped[i] = cleanCell(row[i])
		}
	}
	return shaped
}
