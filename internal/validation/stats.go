package validation

// Deviation is one deviation value tagged with the height at which it was
// observed (the dip height for point checks, the post-delivery dip for
// delivery checks).
type Deviation struct {
	HeightMM float64 `json:"height_mm"`
	ValueL   float64 `json:"value_l"`
}

// Stats summarizes a set of deviations. Extrema carry the height they
// occurred at.
type Stats struct {
	TotalMeasurements int       `json:"total_measurements"`
	AverageDeviationL float64   `json:"average_deviation_l"`
	MaxDeviation      Deviation `json:"max_deviation"`
	MinDeviation      Deviation `json:"min_deviation"`
}

// Aggregate reduces deviations to summary stats. An empty input yields
// the zero-value Stats — "no validation data yet" is a normal state, not
// an error. Ties on the extrema keep the earliest deviation in input
// order (input order is primary-data order, never re-sorted).
func Aggregate(devs []Deviation) Stats {
	var s Stats
	if len(devs) == 0 {
		return s
	}
	s.TotalMeasurements = len(devs)
	s.MaxDeviation = devs[0]
	s.MinDeviation = devs[0]
	sum := 0.0
	for _, d := range devs {
		sum += d.ValueL
		if d.ValueL > s.MaxDeviation.ValueL {
			s.MaxDeviation = d
		}
		if d.ValueL < s.MinDeviation.ValueL {
			s.MinDeviation = d
		}
	}
	s.AverageDeviationL = sum / float64(len(devs))
	return s
}

// PointDeviations extracts the deviations from point-validation records,
// skipping bare chart points that carry no field check.
func PointDeviations(records []ProcessedRecord) []Deviation {
	var out []Deviation
	for _, r := range records {
		if r.DeviationL == nil {
			continue
		}
		out = append(out, Deviation{HeightMM: r.HeightMM, ValueL: *r.DeviationL})
	}
	return out
}

// DeliveryDeviations extracts the deviations from delivery records,
// located at the post-delivery dip height.
func DeliveryDeviations(records []DeliveryRecord) []Deviation {
	out := make([]Deviation, 0, len(records))
	for _, r := range records {
		out = append(out, Deviation{HeightMM: r.HeightAfterMM, ValueL: r.DeviationL})
	}
	return out
}
