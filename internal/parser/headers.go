package parser

import "regexp"

// Header categories are resolved from an ordered pattern table so new
// synonyms are a data change, not a logic change.
const (
	catHeight   = "height"
	catVolume   = "volume"
	catField    = "field"
	catDelivery = "delivery"
)

var headerPatterns = []struct {
	category string
	re       *regexp.Regexp
}{
	{catHeight, regexp.MustCompile(`(?i)height|depth|level|dip`)},
	{catVolume, regexp.MustCompile(`(?i)volume|capacity|liters|ltrs|gallons`)},
	{catField, regexp.MustCompile(`(?i)field|actual|measured|site`)},
	{catDelivery, regexp.MustCompile(`(?i)fuel delivery|delivered|delivery`)},
}

// HeaderMapping is the resolved semantic labeling of a header row.
// Column indices are -1 when the category was not found.
type HeaderMapping struct {
	Height      string
	Volume      string
	FieldVolume string
	Delivery    string

	HeightCol   int
	VolumeCol   int
	FieldCol    int
	DeliveryCol int
}

// MapHeaders labels a raw header row. A field-volume column is one that
// matches both the volume and field patterns; the plain volume column
// prefers a volume match that is not also a field match, falling back to
// any volume match. Returns nil unless a height column plus at least one
// of volume/delivery was found.
func MapHeaders(headers []string) *HeaderMapping {
	m := &HeaderMapping{HeightCol: -1, VolumeCol: -1, FieldCol: -1, DeliveryCol: -1}
	volFallback := -1
	for i, h := range headers {
		if m.HeightCol < 0 && matches(catHeight, h) {
			m.Height, m.HeightCol = h, i
			continue
		}
		if matches(catVolume, h) {
			if matches(catField, h) {
				if m.FieldCol < 0 {
					m.FieldVolume, m.FieldCol = h, i
				}
				if volFallback < 0 {
					volFallback = i
				}
			} else if m.VolumeCol < 0 {
				m.Volume, m.VolumeCol = h, i
			}
		}
		if m.DeliveryCol < 0 && matches(catDelivery, h) {
			m.Delivery, m.DeliveryCol = h, i
		}
	}
	if m.VolumeCol < 0 && volFallback >= 0 {
		m.Volume, m.VolumeCol = headers[volFallback], volFallback
	}
	if m.HeightCol < 0 || (m.VolumeCol < 0 && m.DeliveryCol < 0) {
		return nil
	}
	return m
}

func matches(category, header string) bool {
	for _, p := range headerPatterns {
		if p.category == category && p.re.MatchString(header) {
			return true
		}
	}
	return false
}
