package axis

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat/go-strftime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateTimeFormat is the pattern time labels use unless told otherwise.
const DefaultDateTimeFormat = "HH:mm"

// TimestampLayout renders time labels when the pattern is empty.
const TimestampLayout = "2006-01-02 15:04:05"

// LabelFormat selects how tick positions are turned into text: either
// DefaultFormat or a FormatFunc.
type LabelFormat interface {
	isLabelFormat()
}

// DefaultFormat renders labels according to the axis kind.
type DefaultFormat struct{}

// FormatFunc renders labels with a caller-supplied function. It receives
// the tick position (an ordinal on time axes) and the tick index.
type FormatFunc func(value float64, index int) string

func (DefaultFormat) isLabelFormat() {}
func (FormatFunc) isLabelFormat()    {}

// Label controls tick label display and text.
type Label struct {
	// Show toggles tick labels.
	Show bool
	// Interval is the number of labels skipped between drawn labels on
	// category axes. Consumed by the rendering layer only.
	Interval int
	// Angle rotates labels, in degrees. Consumed by the rendering layer only.
	Angle int
	// DecimalCount is the number of fraction digits on value labels.
	DecimalCount int
	// DateTimeFormat is the pattern for time labels, e.g. "yyyy-MM-dd HH:mm".
	// A pattern containing '%' is interpreted as strftime.
	DateTimeFormat string
	// Location is the zone time labels are shown in; nil means UTC.
	Location *time.Location
	// Grouping inserts thousands separators into value labels.
	Grouping bool
	// Locale, when set, renders value labels with locale digits and separators.
	Locale string
	// Format chooses between default rendering and a FormatFunc.
	Format LabelFormat
}

// NewLabel returns the default label settings.
func NewLabel() Label {
	return Label{
		Show:           true,
		DateTimeFormat: DefaultDateTimeFormat,
		Format:         DefaultFormat{},
	}
}

func (l *Label) hasFunc() bool {
	fn, ok := l.Format.(FormatFunc)
	return ok && fn != nil
}

// Text renders the tick at value with the given index for an axis of kind.
// Time labels fail with an *OutOfRangeError when value is not a valid ordinal.
func (l *Label) Text(value float64, index int, kind Kind) (string, error) {
	if fn, ok := l.Format.(FormatFunc); ok && fn != nil {
		return fn(value, index), nil
	}

	switch kind {
	case Value:
		return l.formatNumber(value, max(0, l.DecimalCount)), nil
	case DateTime:
		t, err := FromOrdinal(value)
		if err != nil {
			return "", err
		}
		return l.formatTime(t)
	case Category:
		return strconv.FormatFloat(value, 'f', 0, 64), nil
	}
	return strconv.FormatFloat(value, 'f', 2, 64), nil
}

func (l *Label) formatNumber(v float64, decimals int) string {
	if l.Locale != "" {
		if tag, err := language.Parse(l.Locale); err == nil {
			return printNumber(tag, v, decimals)
		}
	}
	if l.Grouping {
		return printNumber(language.English, v, decimals)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// printNumber renders v with the separators of tag. Rounding is half to
// even, as with strconv.
func printNumber(tag language.Tag, v float64, decimals int) string {
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(v, number.Scale(decimals)))
}

func (l *Label) formatTime(t time.Time) (string, error) {
	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)

	switch {
	case l.DateTimeFormat == "":
		return t.Format(TimestampLayout), nil
	case strings.Contains(l.DateTimeFormat, "%"):
		s, err := strftime.Format(l.DateTimeFormat, t)
		if err != nil {
			return "", fmt.Errorf("time label pattern %q: %w", l.DateTimeFormat, err)
		}
		return s, nil
	}
	return FormatPattern(t, l.DateTimeFormat), nil
}
