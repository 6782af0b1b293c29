package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX lifts a worksheet into the same Table the text parser
// produces, so the downstream pipeline does not care whether a strapping
// chart arrived as CSV or as a spreadsheet. The first row is treated as a
// header iff any of its cells fails numeric parsing, matching the
// delimited-dialect rule.
//
// sheet selects the worksheet by name; when empty the first sheet is used.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		names := f.GetSheetList()
		if len(names) == 0 {
			return nil, ErrEmptyInput
		}
		sheet = names[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	// Drop fully blank rows the way the text parser drops blank lines.
	var kept [][]string
	for _, r := range rows {
		if blankRow(r) {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Table{Dialect: Spreadsheet}
	start := 0
	if hasNonNumeric(kept[0]) {
		t.Headers = trimAll(kept[0])
		start = 1
	} else {
		t.Headers = []string{"Height", "Volume"}
	}
	for _, r := range kept[start:] {
		t.Rows = append(t.Rows, toCells(r))
	}
	if len(t.Rows) == 0 {
		return nil, ErrNoDataRows
	}
	return t, nil
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
