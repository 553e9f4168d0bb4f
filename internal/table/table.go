// Package table renders records as left-justified, column-aligned text.
package table

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Padding is the number of blank cells added after every column.
const Padding = 3

// Record is a row of named string values.
type Record interface {
	Keys() []string
	Get(key string) (string, bool)
}

// Column maps a record key to its display label.
type Column struct {
	Key   string
	Label string
}

// Header is the ordered list of columns to render.
type Header []Column

// NewHeader builds a header whose labels equal the keys.
func NewHeader(keys ...string) Header {
	h := make(Header, 0, len(keys))
	for _, k := range keys {
		h = append(h, Column{Key: k, Label: k})
	}
	return h
}

// DefaultHeader returns the union of all record keys in lexicographic
// order, labelled with the keys themselves.
func DefaultHeader(records []Record) Header {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range records {
		for _, k := range r.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return NewHeader(keys...)
}

// Options control Format.
type Options struct {
	// Header selects and orders columns. Nil means DefaultHeader.
	Header Header

	// NoHeader omits the label row.
	NoHeader bool
}

// Widths returns, per column key, the widest display width among the
// label (when withHeader is set) and every record value.
func Widths(records []Record, header Header, withHeader bool) map[string]int {
	widths := make(map[string]int, len(header))
	for _, col := range header {
		w := 0
		if withHeader {
			w = runewidth.StringWidth(col.Label)
		}
		for _, r := range records {
			if cw := runewidth.StringWidth(cell(r, col.Key)); cw > w {
				w = cw
			}
		}
		widths[col.Key] = w
	}
	return widths
}

// Rows returns the cell values in header order, led by the label row when
// withHeader is set.
func Rows(records []Record, header Header, withHeader bool) [][]string {
	rows := make([][]string, 0, len(records)+1)
	if withHeader {
		labels := make([]string, len(header))
		for i, col := range header {
			labels[i] = col.Label
		}
		rows = append(rows, labels)
	}
	for _, r := range records {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = cell(r, col.Key)
		}
		rows = append(rows, row)
	}
	return rows
}

// Format renders records as a block of lines. Every cell is padded to its
// column width plus Padding; lines are joined with newlines. No records
// render as the empty string.
func Format(records []Record, opts Options) string {
	if len(records) == 0 {
		return ""
	}

	header := opts.Header
	if header == nil {
		header = DefaultHeader(records)
	}
	withHeader := !opts.NoHeader

	widths := Widths(records, header, withHeader)
	rows := Rows(records, header, withHeader)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for i, value := range row {
			sb.WriteString(runewidth.FillRight(value, widths[header[i].Key]+Padding))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Records converts a slice of concrete records.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func cell(r Record, key string) string {
	v, _ := r.Get(key)
	return v
}

// Map is a Record backed by a plain map; its keys are sorted.
type Map map[string]string

func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
