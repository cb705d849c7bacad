// Package chartaxis resolves chart axes: effective ranges, tick positions
// and tick labels, for charts built in code or read from xlsx workbooks.
package chartaxis

import "github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"

// Mode represents how much of a workbook is read.
type Mode string

const (
	// ModeLight resolves the axes declared in chart parts without reading series cells.
	ModeLight Mode = "light"
	// ModeStandard reads series cells and resolves axes against them.
	ModeStandard Mode = "standard"
	// ModeVerbose also reports chart dimensions and raw series values.
	ModeVerbose Mode = "verbose"
)

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, true
	}
	return "", false
}

// Options configures resolution behavior.
type Options struct {
	// Mode specifies the read mode (light, standard, verbose).
	Mode Mode
	// SplitNumber overrides the interval count of continuous axes when > 0.
	SplitNumber int
	// DecimalCount overrides value label digits.
	// If nil, the axis number format decides.
	DecimalCount *int
	// DateTimeFormat overrides the time label pattern when non-empty.
	DateTimeFormat string
	// ScaleFromZero overrides whether automatic ranges include zero.
	// If nil, axes keep their default (true).
	ScaleFromZero *bool
}

// DefaultOptions returns default resolution options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldReadValues returns whether series cells are read.
func (o Options) ShouldReadValues() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeValues returns whether raw series values are written out.
func (o Options) ShouldIncludeValues() bool {
	return o.Mode == ModeVerbose
}

// Apply copies the overrides in o onto a.
func (o Options) Apply(a *axis.Axis) {
	if a == nil {
		return
	}
	if o.SplitNumber > 0 {
		a.SplitNumber = o.SplitNumber
	}
	if o.ScaleFromZero != nil {
		a.ScaleFromZero = *o.ScaleFromZero
	}
	if o.DecimalCount != nil {
		a.Label.DecimalCount = max(0, *o.DecimalCount)
	}
	if o.DateTimeFormat != "" {
		a.Label.DateTimeFormat = o.DateTimeFormat
	}
}
