package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fusionatg/tankcal-cli/internal/chart"
	"github.com/fusionatg/tankcal-cli/internal/parser"
)

// loadTable reads a calibration data file and parses it into a table.
// Spreadsheets are dispatched by extension; everything else goes through
// dialect auto-detection on the raw text.
func loadTable(path, sheet string) (*parser.Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		if sheet == "" && cfg != nil {
			sheet = cfg.DefaultSheet
		}
		return parser.ReadXLSX(path, sheet)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parser.Parse(string(data))
}

// loadCurve runs the full ingest pipeline for a chart file: parse, map
// headers, normalize into a calibration curve.
func loadCurve(path, sheet string) (chart.Curve, error) {
	t, err := loadTable(path, sheet)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	debugf("parsed %s as %s (%d rows)\n", path, t.Dialect, len(t.Rows))
	m := parser.MapHeaders(t.Headers)
	if m == nil {
		return nil, fmt.Errorf("%s: %w", path, parser.ErrUnresolvableColumns)
	}
	curve, err := parser.CurveRows(t, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return curve, nil
}

// heightLabel and volumeLabel resolve the configured column labels.
func heightLabel() string {
	if cfg != nil && cfg.HeightLabel != "" {
		return cfg.HeightLabel
	}
	return "Dip (mm)"
}

func volumeLabel() string {
	if cfg != nil && cfg.VolumeLabel != "" {
		return cfg.VolumeLabel
	}
	return "Volume (L)"
}
