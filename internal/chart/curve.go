// Package chart models a tank calibration curve (dip height against chart
// volume) and provides piecewise-linear interpolation over it. All
// functions are pure; callers own the curve and it is never mutated.
package chart

import "sort"

// Point is one row of the authoritative calibration curve.
type Point struct {
	HeightMM float64 `json:"height_mm"`
	VolumeL  float64 `json:"volume_l"`
}

// Curve is a calibration curve. It does not need to arrive sorted;
// interpolation works on an internal sorted copy. Duplicate heights are
// allowed and resolve first-inserted-wins (stable sort, and the boundary
// scan lands on the earliest point at an exact height).
type Curve []Point

// MinHeight returns the smallest height in the curve (0 for an empty curve).
func (c Curve) MinHeight() float64 {
	if len(c) == 0 {
		return 0
	}
	min := c[0].HeightMM
	for _, p := range c[1:] {
		if p.HeightMM < min {
			min = p.HeightMM
		}
	}
	return min
}

// MaxHeight returns the largest height in the curve (0 for an empty curve).
func (c Curve) MaxHeight() float64 {
	if len(c) == 0 {
		return 0
	}
	max := c[0].HeightMM
	for _, p := range c[1:] {
		if p.HeightMM > max {
			max = p.HeightMM
		}
	}
	return max
}

// DistinctHeights counts the number of distinct height values in the curve.
func (c Curve) DistinctHeights() int {
	seen := make(map[float64]struct{}, len(c))
	for _, p := range c {
		seen[p.HeightMM] = struct{}{}
	}
	return len(seen)
}

// Clamp limits h to the curve's height range. Use it before Interpolate
// when out-of-range dips must not hit the legacy fallback behavior.
func (c Curve) Clamp(h float64) float64 {
	if len(c) == 0 {
		return h
	}
	if min := c.MinHeight(); h < min {
		return min
	}
	if max := c.MaxHeight(); h > max {
		return max
	}
	return h
}

func (c Curve) sortedByHeight() Curve {
	cp := make(Curve, len(c))
	copy(cp, c)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].HeightMM < cp[j].HeightMM })
	return cp
}

// Interpolate returns the chart volume at height h by piecewise-linear
// interpolation between the two bracketing calibration points.
//
// Out-of-range behavior is inherited from the original chart tooling and
// is deliberately NOT true extrapolation: any h outside the curve's height
// range, on either side, returns the volume of the lowest point. Callers
// needing accuracy at the edges should Clamp first.
//
// An empty curve is a precondition violation; it returns 0.
func Interpolate(h float64, c Curve) float64 {
	if len(c) == 0 {
		return 0
	}
	s := c.sortedByHeight()
	// First point at or above h. If it hits h exactly it is also the
	// lower bound, which keeps the earliest duplicate at a tied height.
	i := sort.Search(len(s), func(k int) bool { return s[k].HeightMM >= h })
	if i == len(s) || (i == 0 && s[0].HeightMM > h) {
		return s[0].VolumeL
	}
	upper := s[i]
	if upper.HeightMM == h {
		return upper.VolumeL
	}
	lower := s[i-1]
	frac := (h - lower.HeightMM) / (upper.HeightMM - lower.HeightMM)
	return lower.VolumeL + (upper.VolumeL-lower.VolumeL)*frac
}
