// Package parser turns raw calibration text into typed tables and
// normalized height/volume records. It never reads files itself except
// through the spreadsheet helper; callers hand it text already in memory.
package parser

import (
	"strconv"
	"strings"
)

// tableSentinel marks the tagged-table export format produced by Fusion ATG
// consoles. Matched case-insensitively on the first non-empty line.
const tableSentinel = "[FUSION_ATG_TANK_TABLE]"

// Dialect identifies which input format a Table was parsed from.
type Dialect int

const (
	// TaggedTable is the ATG console export: sentinel line, then a
	// whitespace-split header line, then whitespace-split data lines.
	TaggedTable Dialect = iota
	// HeaderedDelim is a comma- or semicolon-separated file whose first
	// line is a header row.
	HeaderedDelim
	// HeaderlessDelim is a bare two-column delimited file with no header;
	// a default Height/Volume header is synthesized.
	HeaderlessDelim
	// Spreadsheet is a table lifted from an XLSX worksheet.
	Spreadsheet
)

func (d Dialect) String() string {
	switch d {
	case TaggedTable:
		return "tagged-table"
	case HeaderedDelim:
		return "headered"
	case HeaderlessDelim:
		return "headerless"
	case Spreadsheet:
		return "spreadsheet"
	}
	return "unknown"
}

// Cell is one parsed field: numeric when the raw text parses as a float,
// otherwise the trimmed text is kept.
type Cell struct {
	Num   float64
	Text  string
	IsNum bool
}

// Table is the typed result of dialect detection: a header row plus a
// rectangular grid of cells. The dialect is resolved at parse time so
// downstream stages never re-sniff the input.
type Table struct {
	Dialect   Dialect
	Delimiter rune // ',' or ';' for delimited dialects, 0 otherwise
	Headers   []string
	Rows      [][]Cell
}

// Parse auto-detects the input dialect and returns the parsed table.
// Detection order: tagged-table sentinel first, then delimited with the
// delimiter sniffed from the first line (';' wins over ',').
func Parse(text string) (*Table, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	if strings.EqualFold(strings.TrimSpace(lines[0]), tableSentinel) {
		return parseTagged(lines)
	}
	delim := ','
	if strings.ContainsRune(lines[0], ';') {
		delim = ';'
	}
	first := splitDelim(lines[0], delim)
	if hasNonNumeric(first) {
		return parseHeadered(lines, delim)
	}
	return parseHeaderless(lines, delim)
}

func parseTagged(lines []string) (*Table, error) {
	if len(lines) < 3 {
		return nil, ErrMalformedDialect
	}
	t := &Table{Dialect: TaggedTable, Headers: strings.Fields(lines[1])}
	for _, ln := range lines[2:] {
		t.Rows = append(t.Rows, toCells(strings.Fields(ln)))
	}
	return t, nil
}

func parseHeadered(lines []string, delim rune) (*Table, error) {
	t := &Table{Dialect: HeaderedDelim, Delimiter: delim}
	for _, h := range splitDelim(lines[0], delim) {
		t.Headers = append(t.Headers, strings.TrimSpace(h))
	}
	for _, ln := range lines[1:] {
		t.Rows = append(t.Rows, toCells(splitDelim(ln, delim)))
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoDataRows
	}
	return t, nil
}

func parseHeaderless(lines []string, delim rune) (*Table, error) {
	// No line is consumed as a header; only the first two fields of each
	// row are kept, matching the legacy two-column dip files.
	t := &Table{Dialect: HeaderlessDelim, Delimiter: delim, Headers: []string{"Height", "Volume"}}
	for _, ln := range lines {
		fields := splitDelim(ln, delim)
		if len(fields) > 2 {
			fields = fields[:2]
		}
		t.Rows = append(t.Rows, toCells(fields))
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoDataRows
	}
	return t, nil
}

// splitLines returns the non-blank lines of text, tolerating CRLF endings.
func splitLines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		out = append(out, ln)
	}
	return out
}

func splitDelim(line string, delim rune) []string {
	return strings.Split(line, string(delim))
}

func hasNonNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return true
		}
	}
	return false
}

func toCells(fields []string) []Cell {
	cells := make([]Cell, 0, len(fields))
	for _, f := range fields {
		cells = append(cells, toCell(f))
	}
	return cells
}

func toCell(field string) Cell {
	s := strings.TrimSpace(field)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Num: f, IsNum: true}
	}
	return Cell{Text: s}
}
