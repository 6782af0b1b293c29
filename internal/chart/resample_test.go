package chart

import (
	"math"
	"testing"
)

func TestResampleEvenGrid(t *testing.T) {
	curve := Curve{{HeightMM: 0, VolumeL: 0}, {HeightMM: 100, VolumeL: 1000}}
	out := Resample(curve, 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	wantH := []float64{0, 25, 50, 75, 100}
	wantV := []float64{0, 250, 500, 750, 1000}
	for i := range out {
		if out[i].HeightMM != wantH[i] || out[i].VolumeL != wantV[i] {
			t.Fatalf("point %d = %+v, want (%v, %v)", i, out[i], wantH[i], wantV[i])
		}
	}
}

func TestResampleEndpointsInclusive(t *testing.T) {
	out := Resample(Curve{{HeightMM: 3, VolumeL: 30}, {HeightMM: 17, VolumeL: 170}}, 300)
	if len(out) != 300 {
		t.Fatalf("len = %d, want 300", len(out))
	}
	if out[0].HeightMM != 3 {
		t.Fatalf("first height = %v, want min 3", out[0].HeightMM)
	}
	if out[len(out)-1].HeightMM != 17 {
		t.Fatalf("last height = %v, want max 17", out[len(out)-1].HeightMM)
	}
}

func TestResampleReproducesKnotsOnGrid(t *testing.T) {
	curve := Curve{
		{HeightMM: 0, VolumeL: 0},
		{HeightMM: 50, VolumeL: 700},
		{HeightMM: 100, VolumeL: 1000},
	}
	// n=101 puts a grid point on every integer height, including the knots.
	out := Resample(curve, 101)
	for _, p := range curve {
		got := Interpolate(p.HeightMM, out)
		if math.Abs(got-p.VolumeL) > 1e-9 {
			t.Fatalf("resampled curve at knot %v = %v, want %v", p.HeightMM, got, p.VolumeL)
		}
	}
}

func TestResampleDegenerateCurveUnchanged(t *testing.T) {
	single := Curve{{HeightMM: 10, VolumeL: 100}}
	if out := Resample(single, 300); len(out) != 1 || out[0] != single[0] {
		t.Fatalf("single-point curve changed: %+v", out)
	}
	flat := Curve{{HeightMM: 10, VolumeL: 100}, {HeightMM: 10, VolumeL: 120}}
	if out := Resample(flat, 300); len(out) != 2 {
		t.Fatalf("duplicate-height curve changed: %+v", out)
	}
}

func TestResampleTinyN(t *testing.T) {
	curve := Curve{{HeightMM: 0, VolumeL: 0}, {HeightMM: 100, VolumeL: 1000}}
	if out := Resample(curve, 1); len(out) != len(curve) {
		t.Fatalf("n=1 should return input unchanged, got %+v", out)
	}
	out := Resample(curve, 2)
	if len(out) != 2 || out[0].HeightMM != 0 || out[1].HeightMM != 100 {
		t.Fatalf("n=2 = %+v, want the two endpoints", out)
	}
}
