// Package models defines the resolved chart data written as JSON.
package models

// Tick is a labeled axis position.
type Tick struct {
	// Value is the tick position (an ordinal in milliseconds on time axes).
	Value float64 `json:"value"`
	// Label is the display text.
	Label string `json:"label"`
}

// Axis is a resolved axis: its effective range and labeled ticks.
type Axis struct {
	// Kind is "category", "value" or "datetime".
	Kind string `json:"kind"`
	// Title is the axis title.
	Title string `json:"title,omitempty"`
	// Min is the effective lower bound.
	Min float64 `json:"min"`
	// Max is the effective upper bound.
	Max float64 `json:"max"`
	// Step is the distance between regular ticks.
	Step float64 `json:"step,omitempty"`
	// MinAuto reports whether Min was derived from data.
	MinAuto bool `json:"min_auto"`
	// MaxAuto reports whether Max was derived from data.
	MaxAuto bool `json:"max_auto"`
	// Custom reports whether ticks came from an explicit label sequence.
	Custom bool `json:"custom,omitempty"`
	// Hidden reports an axis the chart does not display.
	Hidden bool `json:"hidden,omitempty"`
	// Ticks are the labeled tick positions in increasing order.
	Ticks []Tick `json:"ticks"`
}
