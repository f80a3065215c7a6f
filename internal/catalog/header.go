// Package catalog turns worksheet grids into the typed records emitted
// into the generated source file: catalog entries from the master XID
// sheet and NVLink decode rules from the second sheet.
package catalog

import (
	"github.com/gpukit/xidgen/internal/errors"
)

// header resolves column names from a sheet's first row. Lookups match the
// full cell text exactly, embedded newlines included; duplicates resolve to
// the first occurrence.
type header struct {
	sheet string
	cols  map[string]int
	width int
}

func newHeader(sheet string, row []string) *header {
	h := &header{
		sheet: sheet,
		cols:  make(map[string]int, len(row)),
		width: len(row),
	}
	for i, name := range row {
		if _, ok := h.cols[name]; !ok {
			h.cols[name] = i
		}
	}
	return h
}

// index returns the position of a required column. A missing required
// column is a fatal schema error, not a per-row skip.
func (h *header) index(name string) (int, error) {
	i, ok := h.cols[name]
	if !ok {
		return 0, errors.Schemaf(h.sheet, "header missing required column %q", name)
	}
	return i, nil
}

// optional returns the position of a column that may be absent.
func (h *header) optional(name string) (int, bool) {
	i, ok := h.cols[name]
	return i, ok
}

// pad extends a short row with empty cells up to the header width.
func (h *header) pad(row []string) []string {
	if len(row) >= h.width {
		return row
	}
	padded := make([]string, h.width)
	copy(padded, row)
	return padded
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
