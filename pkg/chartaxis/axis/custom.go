package axis

import (
	"math"
	"time"
)

// CustomLabels is an explicit, evenly spaced tick sequence that replaces
// automatic tick computation on the axis it is attached to.
//
// The zero value is not usable; construct one with NewValueLabels or
// NewTimeLabels.
type CustomLabels struct {
	kind     Kind
	start    float64
	interval float64
	count    int
	labels   []string
}

// NewValueLabels returns count+1 ticks starting at start, interval apart.
// A negative interval is made positive and count is raised to at least 2.
func NewValueLabels(start, interval float64, count int) *CustomLabels {
	return &CustomLabels{
		kind:     Value,
		start:    start,
		interval: math.Abs(interval),
		count:    max(2, count),
	}
}

// NewTimeLabels returns count+1 time ticks starting at start, intervalMillis
// milliseconds apart. The same normalization as NewValueLabels applies.
func NewTimeLabels(start time.Time, intervalMillis int64, count int) *CustomLabels {
	if intervalMillis < 0 {
		intervalMillis = -intervalMillis
	}
	return &CustomLabels{
		kind:     DateTime,
		start:    ToOrdinal(start),
		interval: float64(intervalMillis),
		count:    max(2, count),
	}
}

// Kind reports whether the ticks are plain values or time ordinals.
func (c *CustomLabels) Kind() Kind { return c.kind }

// Start returns the first tick position.
func (c *CustomLabels) Start() float64 { return c.start }

// Interval returns the distance between ticks (milliseconds for time ticks).
func (c *CustomLabels) Interval() float64 { return c.interval }

// Count returns the number of intervals; there are Count()+1 ticks.
func (c *CustomLabels) Count() int { return c.count }

// LabelValues returns the tick positions in increasing order.
func (c *CustomLabels) LabelValues() []float64 {
	values := make([]float64, c.count+1)
	for i := range values {
		values[i] = c.valueAt(i)
	}
	return values
}

// Stop returns the last tick position.
func (c *CustomLabels) Stop() float64 {
	return c.valueAt(c.count)
}

func (c *CustomLabels) valueAt(i int) float64 {
	if c.kind == DateTime {
		return AddMilliseconds(c.start, c.interval*float64(i))
	}
	return c.start + c.interval*float64(i)
}

// SetLabels replaces the override texts.
func (c *CustomLabels) SetLabels(labels []string) {
	c.labels = append(c.labels[:0], labels...)
}

// AddLabel appends an override text for the next tick.
func (c *CustomLabels) AddLabel(label string) {
	c.labels = append(c.labels, label)
}

// ClearLabels removes all override texts.
func (c *CustomLabels) ClearLabels() {
	c.labels = c.labels[:0]
}

// Labels returns a copy of the override texts.
func (c *CustomLabels) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Label returns the override text for tick i, or "" when none was supplied.
func (c *CustomLabels) Label(i int) string {
	if i >= 0 && i < len(c.labels) {
		return c.labels[i]
	}
	return ""
}
