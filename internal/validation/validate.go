// Package validation checks a calibration curve against independently
// measured field data: direct volume checks at a dip height, or reported
// fuel deliveries bracketed by before/after dips. Deviations are always
// measured-minus-chart.
package validation

import (
	"errors"

	"github.com/fusionatg/tankcal-cli/internal/chart"
)

// ErrInsufficientReadings indicates a delivery validation was attempted
// with fewer than two dip readings.
var ErrInsufficientReadings = errors.New("delivery validation needs at least two dip readings")

// FieldReading is one field volume check: an independently measured
// volume at a dip height.
type FieldReading struct {
	HeightMM     float64
	FieldVolumeL float64
}

// DeliveryReading is one dip in a delivery sequence together with the
// quantity reported as delivered since the previous dip. A zero reported
// delivery marks a baseline dip, not a delivery event.
type DeliveryReading struct {
	HeightMM   float64
	DeliveredL float64
}

// ProcessedRecord is a calibration point optionally annotated with a field
// check. FieldVolumeL and DeviationL are nil for bare chart points; they
// are set together, never defaulted to zero.
type ProcessedRecord struct {
	HeightMM     float64  `json:"height_mm"`
	ChartVolumeL float64  `json:"chart_volume_l"`
	FieldVolumeL *float64 `json:"field_volume_l,omitempty"`
	DeviationL   *float64 `json:"deviation_l,omitempty"`
}

// DeliveryRecord compares one reported delivery against the chart-implied
// volume change between the bracketing dips.
type DeliveryRecord struct {
	HeightBeforeMM float64 `json:"height_before_mm"`
	HeightAfterMM  float64 `json:"height_after_mm"`
	ReportedL      float64 `json:"reported_l"`
	ChartL         float64 `json:"chart_l"`
	DeviationL     float64 `json:"deviation_l"`
}

// ValidatePoints computes a ProcessedRecord for every field reading, in
// input order. Deviation is field volume minus interpolated chart volume.
func ValidatePoints(curve chart.Curve, readings []FieldReading) []ProcessedRecord {
	out := make([]ProcessedRecord, 0, len(readings))
	for _, r := range readings {
		cv := chart.Interpolate(r.HeightMM, curve)
		field := r.FieldVolumeL
		dev := field - cv
		out = append(out, ProcessedRecord{
			HeightMM:     r.HeightMM,
			ChartVolumeL: cv,
			FieldVolumeL: &field,
			DeviationL:   &dev,
		})
	}
	return out
}

// ValidateDeliveries walks consecutive dip pairs of an ordered delivery
// sequence and emits one DeliveryRecord per pair whose later reading
// reports a non-zero delivery. Zero-delivery readings act as baselines
// and produce no record of their own.
func ValidateDeliveries(curve chart.Curve, readings []DeliveryReading) ([]DeliveryRecord, error) {
	if len(readings) < 2 {
		return nil, ErrInsufficientReadings
	}
	var out []DeliveryRecord
	for i := 1; i < len(readings); i++ {
		if readings[i].DeliveredL == 0 {
			continue
		}
		before, after := readings[i-1], readings[i]
		chartDelta := chart.Interpolate(after.HeightMM, curve) - chart.Interpolate(before.HeightMM, curve)
		out = append(out, DeliveryRecord{
			HeightBeforeMM: before.HeightMM,
			HeightAfterMM:  after.HeightMM,
			ReportedL:      after.DeliveredL,
			ChartL:         chartDelta,
			DeviationL:     after.DeliveredL - chartDelta,
		})
	}
	return out, nil
}
