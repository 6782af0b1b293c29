package chart

// DefaultResamplePoints is the strapping-chart cardinality used by the
// printed table when the caller does not override it.
const DefaultResamplePoints = 300

// Resample produces an n-point approximation of the curve with heights
// evenly spaced from the curve's minimum to its maximum (both inclusive),
// volumes read off the interpolated curve. The result has a fixed
// cardinality regardless of how densely the tank was strapped.
//
// Curves with fewer than two distinct heights (or n < 2) are returned
// unchanged: there is no span to resample over.
func Resample(c Curve, n int) Curve {
	if n < 2 || c.DistinctHeights() < 2 {
		return c
	}
	min, max := c.MinHeight(), c.MaxHeight()
	step := (max - min) / float64(n-1)
	out := make(Curve, 0, n)
	for i := 0; i < n; i++ {
		h := min + step*float64(i)
		if i == n-1 {
			h = max // avoid drifting past the top knot on float rounding
		}
		out = append(out, Point{HeightMM: h, VolumeL: Interpolate(h, c)})
	}
	return out
}
