package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, headers []string, rows [][]float64) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	offset := 1
	if len(headers) == 0 {
		offset = 0
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1+offset)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestReadXLSXHeadered(t *testing.T) {
	path := writeXLSX(t, []string{"Dip (mm)", "Volume (L)"}, [][]float64{{100, 1000}, {200, 2100}})
	tbl, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if tbl.Dialect != Spreadsheet {
		t.Fatalf("dialect = %s, want spreadsheet", tbl.Dialect)
	}
	if len(tbl.Headers) != 2 || tbl.Headers[0] != "Dip (mm)" {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	if !tbl.Rows[1][1].IsNum || tbl.Rows[1][1].Num != 2100 {
		t.Fatalf("cell = %+v, want 2100", tbl.Rows[1][1])
	}
}

func TestReadXLSXHeaderless(t *testing.T) {
	path := writeXLSX(t, nil, [][]float64{{100, 1000}, {200, 2100}})
	tbl, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if len(tbl.Headers) != 2 || tbl.Headers[0] != "Height" || tbl.Headers[1] != "Volume" {
		t.Fatalf("headers = %v, want synthesized Height/Volume", tbl.Headers)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	path := writeXLSX(t, []string{"Dip", "Volume"}, [][]float64{{1, 10}})
	if _, err := ReadXLSX(path, "NoSuchSheet"); err == nil {
		t.Fatal("expected error for missing sheet, got nil")
	}
}
