package parser

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, text string) (*Table, *HeaderMapping) {
	t.Helper()
	tbl, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := MapHeaders(tbl.Headers)
	if m == nil {
		t.Fatalf("MapHeaders(%v) = nil", tbl.Headers)
	}
	return tbl, m
}

func TestCurveRowsDropsMalformed(t *testing.T) {
	tbl, m := mustParse(t, "Height,Volume\n10,100\nn/a,150\n20,\n30,300")
	curve, err := CurveRows(tbl, m)
	if err != nil {
		t.Fatalf("CurveRows: %v", err)
	}
	if len(curve) != 2 {
		t.Fatalf("curve has %d points, want 2 (malformed rows dropped)", len(curve))
	}
	if curve[0].HeightMM != 10 || curve[1].HeightMM != 30 {
		t.Fatalf("curve = %+v", curve)
	}
}

func TestCurveRowsAllMalformed(t *testing.T) {
	tbl, m := mustParse(t, "Height,Volume\nx,y\n-,-")
	_, err := CurveRows(tbl, m)
	if !errors.Is(err, ErrNoDataRows) {
		t.Fatalf("err = %v, want ErrNoDataRows", err)
	}
}

func TestCurveRowsNilMapping(t *testing.T) {
	tbl, _ := mustParse(t, "Height,Volume\n1,100")
	if _, err := CurveRows(tbl, nil); !errors.Is(err, ErrUnresolvableColumns) {
		t.Fatalf("err = %v, want ErrUnresolvableColumns", err)
	}
}

func TestFieldRowsPrefersFieldColumn(t *testing.T) {
	tbl, m := mustParse(t, "Dip(mm),Chart Volume(L),Field Volume(L)\n50,500,520")
	rows, err := FieldRows(tbl, m)
	if err != nil {
		t.Fatalf("FieldRows: %v", err)
	}
	if len(rows) != 1 || rows[0].FieldVolumeL != 520 {
		t.Fatalf("rows = %+v, want field volume 520", rows)
	}
}

func TestFieldRowsFallsBackToVolumeColumn(t *testing.T) {
	tbl, m := mustParse(t, "Height,Volume\n50,520")
	rows, err := FieldRows(tbl, m)
	if err != nil {
		t.Fatalf("FieldRows: %v", err)
	}
	if len(rows) != 1 || rows[0].FieldVolumeL != 520 {
		t.Fatalf("rows = %+v, want volume column used", rows)
	}
}

func TestDeliveryRows(t *testing.T) {
	tbl, m := mustParse(t, "Height,Delivery\n100,0\n200,5000\n400,7300")
	rows, err := DeliveryRows(tbl, m)
	if err != nil {
		t.Fatalf("DeliveryRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1].HeightMM != 200 || rows[1].DeliveredL != 5000 {
		t.Fatalf("row 1 = %+v", rows[1])
	}
}

func TestDeliveryRowsShortRowDropped(t *testing.T) {
	// Tagged dialect rows can be ragged; a row missing the delivery cell
	// is dropped, not an error.
	tbl, m := mustParse(t, "[FUSION_ATG_TANK_TABLE]\nHeight Delivery\n100 0\n200\n400 7300")
	rows, err := DeliveryRows(tbl, m)
	if err != nil {
		t.Fatalf("DeliveryRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
}
