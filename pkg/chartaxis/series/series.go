// Package series holds the ordered data chart axes are resolved against.
package series

import (
	"math"
	"slices"
)

// Series is a named, ordered sequence of bar values with optional per-bar names.
type Series struct {
	// Name is the series display name.
	Name string
	// MaxWidth caps the drawn bar width in pixels.
	MaxWidth int
	// ShowBarName toggles bar name display.
	ShowBarName bool
	// ShowValue toggles value display above bars.
	ShowValue bool

	decimalPlaces int
	barNames      []string
	data          []float64
}

// New returns an empty series.
func New(name string, decimalPlaces int) *Series {
	s := &Series{Name: name, MaxWidth: math.MaxInt}
	s.SetDecimalPlaces(decimalPlaces)
	return s
}

// DecimalPlaces returns the number of fraction digits used for value display.
func (s *Series) DecimalPlaces() int { return s.decimalPlaces }

// SetDecimalPlaces sets the fraction digits; negative values become 0.
func (s *Series) SetDecimalPlaces(n int) { s.decimalPlaces = max(0, n) }

// AddData appends a value.
func (s *Series) AddData(v float64) {
	s.data = append(s.data, v)
}

// AddNamedData appends a value together with its bar name.
func (s *Series) AddNamedData(name string, v float64) {
	s.barNames = append(s.barNames, name)
	s.AddData(v)
}

// Update replaces the value at index i. Out of range indexes are ignored.
func (s *Series) Update(i int, v float64) {
	if i >= 0 && i < len(s.data) {
		s.data[i] = v
	}
}

// Clear removes all values and bar names.
func (s *Series) Clear() {
	s.barNames = s.barNames[:0]
	s.data = s.data[:0]
}

// Len returns the number of values.
func (s *Series) Len() int { return len(s.data) }

// Values returns a copy of the values.
func (s *Series) Values() []float64 { return slices.Clone(s.data) }

// BarNames returns a copy of the bar names.
func (s *Series) BarNames() []string { return slices.Clone(s.barNames) }

// Bounds returns the smallest and largest finite values. ok is false when
// the series holds no finite value.
func (s *Series) Bounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, lo <= hi
}
