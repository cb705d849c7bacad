package axis

import (
	"math"
	"slices"
	"time"
)

// Default bounds used when an axis has no usable data.
const (
	DefaultMin = 0
	DefaultMax = 100
)

// DefaultSplitNumber is the interval count an axis aims for.
const DefaultSplitNumber = 5

// TickStyle holds tick mark display settings. None of them affect
// range or tick computation.
type TickStyle struct {
	// Show toggles tick marks.
	Show bool
	// Length is the tick mark length in pixels.
	Length int
	// AlignWithLabel aligns category ticks with their labels.
	AlignWithLabel bool
	// Interval is the number of ticks skipped between drawn ticks on
	// category axes; 0 draws every tick.
	Interval int
	// Distance is the gap between the axis line and tick marks.
	Distance int
}

// Axis is the value, category or time axis a chart's series are plotted
// against. It is not safe for concurrent mutation.
type Axis struct {
	// Name is the axis title.
	Name string
	// SplitNumber is the interval count to aim for. It is advisory: the
	// realized count follows the nice step chosen. Ignored for Category axes.
	SplitNumber int
	// SplitDeviation is how far the realized interval count may drift from
	// SplitNumber before a finer or coarser step is preferred.
	SplitDeviation int
	// ScaleFromZero extends an automatic range to include zero.
	ScaleFromZero bool
	// ShowGridLine toggles grid lines.
	ShowGridLine bool
	// Tick holds tick mark display settings.
	Tick TickStyle
	// Label controls how tick positions become text.
	Label Label

	kind       Kind
	min, max   float64
	minAuto    bool
	maxAuto    bool
	categories []string
	custom     *CustomLabels
}

// NewAxis returns an axis of the given kind with automatic bounds.
func NewAxis(kind Kind) *Axis {
	return &Axis{
		SplitNumber:   DefaultSplitNumber,
		ScaleFromZero: true,
		ShowGridLine:  true,
		Tick:          TickStyle{Show: true, Length: 5},
		Label:         NewLabel(),
		kind:          kind,
		min:           DefaultMin,
		max:           DefaultMax,
		minAuto:       true,
		maxAuto:       true,
	}
}

// Kind returns the axis kind fixed at construction.
func (a *Axis) Kind() Kind { return a.kind }

// Min returns the stored lower bound. It is only meaningful when MinAuto is false.
func (a *Axis) Min() float64 { return a.min }

// Max returns the stored upper bound. It is only meaningful when MaxAuto is false.
func (a *Axis) Max() float64 { return a.max }

// MinAuto reports whether the lower bound is computed from data.
func (a *Axis) MinAuto() bool { return a.minAuto }

// MaxAuto reports whether the upper bound is computed from data.
func (a *Axis) MaxAuto() bool { return a.maxAuto }

// SetMinValue pins the lower bound.
func (a *Axis) SetMinValue(v float64) {
	a.min = v
	a.minAuto = false
}

// SetMaxValue pins the upper bound.
func (a *Axis) SetMaxValue(v float64) {
	a.max = v
	a.maxAuto = false
}

// SetRange pins both bounds.
func (a *Axis) SetRange(min, max float64) {
	a.SetMinValue(min)
	a.SetMaxValue(max)
}

// SetMinTime pins the lower bound to the ordinal of t.
func (a *Axis) SetMinTime(t time.Time) { a.SetMinValue(ToOrdinal(t)) }

// SetMaxTime pins the upper bound to the ordinal of t.
func (a *Axis) SetMaxTime(t time.Time) { a.SetMaxValue(ToOrdinal(t)) }

// SetTimeRange pins both bounds to timestamps.
func (a *Axis) SetTimeRange(min, max time.Time) {
	a.SetMinTime(min)
	a.SetMaxTime(max)
}

// SetMinAuto releases a pinned lower bound.
func (a *Axis) SetMinAuto() {
	a.min = DefaultMin
	a.minAuto = true
}

// SetMaxAuto releases a pinned upper bound.
func (a *Axis) SetMaxAuto() {
	a.max = DefaultMax
	a.maxAuto = true
}

// AddCategory appends category names in display order.
func (a *Axis) AddCategory(names ...string) {
	a.categories = append(a.categories, names...)
}

// SetCategories replaces the category names.
func (a *Axis) SetCategories(names []string) {
	a.categories = slices.Clone(names)
}

// Categories returns a copy of the category names.
func (a *Axis) Categories() []string {
	return append([]string(nil), a.categories...)
}

// CategoryCount returns the number of categories.
func (a *Axis) CategoryCount() int { return len(a.categories) }

// Clear removes all category names.
func (a *Axis) Clear() {
	a.categories = nil
}

// SetCustomLabels attaches an explicit tick sequence. Pass nil to detach.
func (a *Axis) SetCustomLabels(c *CustomLabels) { a.custom = c }

// CustomLabels returns the attached tick sequence, or nil.
func (a *Axis) CustomLabels() *CustomLabels { return a.custom }

// ClearCustomLabels detaches the explicit tick sequence.
func (a *Axis) ClearCustomLabels() { a.custom = nil }

// HasCustomLabels reports whether an explicit tick sequence is attached.
func (a *Axis) HasCustomLabels() bool {
	return a.custom != nil && a.custom.Count() > 0
}

// Scale is a resolved axis range and its tick positions.
type Scale struct {
	Min, Max float64
	// Step is the distance between regular ticks; 0 when there is at most
	// one tick or the span overflows.
	Step float64
	// Values are the tick positions in increasing order.
	Values []float64
}

// Tick is a labeled position on a resolved axis.
type Tick struct {
	Value float64
	Label string
}

// Resolve computes the effective range and tick positions for data.
// Non-finite values are ignored. Resolve never fails: an axis without
// usable data falls back to [DefaultMin, DefaultMax].
func (a *Axis) Resolve(data []float64) Scale {
	switch {
	case a.HasCustomLabels():
		values := a.custom.LabelValues()
		return Scale{
			Min:    values[0],
			Max:    values[len(values)-1],
			Step:   a.custom.Interval(),
			Values: values,
		}
	case a.kind == Category:
		n := len(a.categories)
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i)
		}
		s := Scale{Values: values}
		if n > 0 {
			s.Max = float64(n - 1)
			s.Step = 1
		}
		return s
	}
	return a.resolveContinuous(data)
}

func (a *Axis) resolveContinuous(data []float64) Scale {
	lo, hi, ok := finiteBounds(data)
	if !ok {
		lo, hi = DefaultMin, DefaultMax
	}
	if !a.minAuto {
		lo = a.min
	}
	if !a.maxAuto {
		hi = a.max
	}

	split := a.SplitNumber
	if split <= 0 {
		split = DefaultSplitNumber
	}

	if !a.minAuto && !a.maxAuto {
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == hi {
			return Scale{Min: lo, Max: hi, Values: []float64{lo}}
		}
		step := chooseStep(lo, hi, split, a.SplitDeviation, a.candidates(hi-lo, split))
		return tickScale(lo, hi, step, split)
	}

	if ok && a.ScaleFromZero && a.minAuto && a.maxAuto {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}

	// A single pinned bound on the wrong side of the data drags the
	// automatic one along.
	if lo > hi {
		if a.maxAuto {
			hi = lo
		} else {
			lo = hi
		}
	}
	if lo == hi {
		unit := 1.0
		if a.kind == DateTime {
			unit = minute
		}
		unit = math.Max(unit, math.Abs(lo)*1e-9)
		if a.maxAuto && !math.IsInf(lo+unit, 0) {
			hi = lo + unit
		} else {
			lo = hi - unit
		}
	}

	step := chooseStep(lo, hi, split, a.SplitDeviation, a.candidates(hi-lo, split))
	if !countable(lo, hi, step) {
		return tickScale(lo, hi, step, split)
	}

	// Defaults are already round; only data-driven bounds are widened.
	if ok && a.minAuto {
		if v := floorTo(lo, step); !math.IsInf(v, 0) {
			lo = v
		}
	}
	if ok && a.maxAuto {
		if v := ceilTo(hi, step); !math.IsInf(v, 0) {
			hi = v
		}
	}
	return tickScale(lo, hi, step, split)
}

func (a *Axis) candidates(span float64, split int) []float64 {
	if a.kind == DateTime {
		return timeCandidates(span, split)
	}
	return decimalCandidates(span, split)
}

// tickScale places ticks on the multiples of step inside [lo, hi]. When
// those cannot be counted exactly the range is split evenly instead.
func tickScale(lo, hi, step float64, split int) Scale {
	if values := stepValues(lo, hi, step); values != nil {
		return Scale{Min: lo, Max: hi, Step: step, Values: values}
	}
	s := Scale{Min: lo, Max: hi, Values: evenValues(lo, hi, split)}
	if step := (hi - lo) / float64(split); !math.IsInf(step, 0) {
		s.Step = step
	}
	return s
}

// finiteBounds returns the smallest and largest finite values in data.
func finiteBounds(data []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, lo <= hi
}

// Ticks resolves the axis for data and labels every tick. Label text comes
// from, in order: the custom label override, the label format function,
// the category name, and the default rendering for the axis kind.
// The only error is an *OutOfRangeError from a time label.
func (a *Axis) Ticks(data []float64) ([]Tick, error) {
	return a.LabelScale(a.Resolve(data))
}

// LabelScale labels the tick values of a scale already resolved by a.
func (a *Axis) LabelScale(s Scale) ([]Tick, error) {
	ticks := make([]Tick, len(s.Values))
	for i, v := range s.Values {
		text, err := a.labelText(v, i)
		if err != nil {
			return nil, err
		}
		ticks[i] = Tick{Value: v, Label: text}
	}
	return ticks, nil
}

func (a *Axis) labelText(v float64, i int) (string, error) {
	if a.HasCustomLabels() {
		if text := a.custom.Label(i); text != "" {
			return text, nil
		}
	} else if a.kind == Category && !a.Label.hasFunc() {
		if i < len(a.categories) {
			return a.categories[i], nil
		}
	}
	return a.Label.Text(v, i, a.kind)
}
