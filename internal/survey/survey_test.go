package survey

import (
	"testing"

	"github.com/fusionatg/tankcal-cli/internal/chart"
	"github.com/fusionatg/tankcal-cli/internal/validation"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New("t4-annual", "T4", "annual strapping check", dir)
	s.SetCurve(chart.Curve{{HeightMM: 0, VolumeL: 0}, {HeightMM: 100, VolumeL: 1000}})
	field := 520.0
	dev := 20.0
	s.RecordPointValidation(
		[]validation.ProcessedRecord{{HeightMM: 50, ChartVolumeL: 500, FieldVolumeL: &field, DeviationL: &dev}},
		validation.Stats{TotalMeasurements: 1, AverageDeviationL: 20,
			MaxDeviation: validation.Deviation{HeightMM: 50, ValueL: 20},
			MinDeviation: validation.Deviation{HeightMM: 50, ValueL: 20}},
	)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != s.ID || got.Name != "t4-annual" || got.Tank != "T4" {
		t.Fatalf("loaded = %+v", got)
	}
	if len(got.Curve) != 2 || got.Curve[1].VolumeL != 1000 {
		t.Fatalf("curve = %+v", got.Curve)
	}
	if len(got.Records) != 1 || got.Records[0].DeviationL == nil || *got.Records[0].DeviationL != 20 {
		t.Fatalf("records = %+v", got.Records)
	}
	if got.Stats == nil || got.Stats.TotalMeasurements != 1 {
		t.Fatalf("stats = %+v", got.Stats)
	}
	if got.RootDir() != dir {
		t.Fatalf("root dir = %q, want %q", got.RootDir(), dir)
	}
}

func TestSetCurveClearsValidation(t *testing.T) {
	s := New("s", "", "", t.TempDir())
	s.Deliveries = []validation.DeliveryRecord{{HeightAfterMM: 200}}
	s.Stats = &validation.Stats{TotalMeasurements: 1}
	s.SetCurve(chart.Curve{{HeightMM: 0, VolumeL: 0}})
	if s.Deliveries != nil || s.Stats != nil || s.Records != nil {
		t.Fatal("SetCurve should clear validation output computed against the old curve")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error loading missing survey, got nil")
	}
}

func TestSaveWithoutRootDir(t *testing.T) {
	s := &Survey{Name: "orphan"}
	if err := s.Save(); err == nil {
		t.Fatal("expected error saving survey without root dir, got nil")
	}
}
