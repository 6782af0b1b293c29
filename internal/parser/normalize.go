package parser

import (
	"github.com/fusionatg/tankcal-cli/internal/chart"
	"github.com/fusionatg/tankcal-cli/internal/validation"
)

// The normalizer is the boundary where heterogeneous raw cells become
// typed records. Rows missing a required numeric cell are dropped
// silently; only a fully empty result is an error.

// CurveRows projects a parsed table into a calibration curve using the
// height and chart-volume columns of the mapping.
func CurveRows(t *Table, m *HeaderMapping) (chart.Curve, error) {
	if m == nil || m.HeightCol < 0 || m.VolumeCol < 0 {
		return nil, ErrUnresolvableColumns
	}
	var curve chart.Curve
	for _, row := range t.Rows {
		h, ok1 := numAt(row, m.HeightCol)
		v, ok2 := numAt(row, m.VolumeCol)
		if !ok1 || !ok2 {
			continue
		}
		curve = append(curve, chart.Point{HeightMM: h, VolumeL: v})
	}
	if len(curve) == 0 {
		return nil, ErrNoDataRows
	}
	return curve, nil
}

// FieldRows projects a parsed table into field volume checks. When no
// dedicated field-volume column exists the plain volume column is used;
// a standalone field file typically labels its only volume column
// "Field Volume".
func FieldRows(t *Table, m *HeaderMapping) ([]validation.FieldReading, error) {
	if m == nil || m.HeightCol < 0 {
		return nil, ErrUnresolvableColumns
	}
	col := m.FieldCol
	if col < 0 {
		col = m.VolumeCol
	}
	if col < 0 {
		return nil, ErrUnresolvableColumns
	}
	var out []validation.FieldReading
	for _, row := range t.Rows {
		h, ok1 := numAt(row, m.HeightCol)
		v, ok2 := numAt(row, col)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, validation.FieldReading{HeightMM: h, FieldVolumeL: v})
	}
	if len(out) == 0 {
		return nil, ErrNoDataRows
	}
	return out, nil
}

// DeliveryRows projects a parsed table into an ordered delivery-dip
// sequence using the height and delivery columns of the mapping.
func DeliveryRows(t *Table, m *HeaderMapping) ([]validation.DeliveryReading, error) {
	if m == nil || m.HeightCol < 0 || m.DeliveryCol < 0 {
		return nil, ErrUnresolvableColumns
	}
	var out []validation.DeliveryReading
	for _, row := range t.Rows {
		h, ok1 := numAt(row, m.HeightCol)
		d, ok2 := numAt(row, m.DeliveryCol)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, validation.DeliveryReading{HeightMM: h, DeliveredL: d})
	}
	if len(out) == 0 {
		return nil, ErrNoDataRows
	}
	return out, nil
}

func numAt(row []Cell, col int) (float64, bool) {
	if col < 0 || col >= len(row) || !row[col].IsNum {
		return 0, false
	}
	return row[col].Num, true
}
