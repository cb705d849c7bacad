package axis

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// MaxExactOrdinal is the largest ordinal magnitude (2^53 ms, roughly
// 285,000 years) that a float64 holds without losing millisecond precision.
const MaxExactOrdinal = 1 << 53

// ErrOutOfRange indicates an ordinal that does not map to a timestamp.
var ErrOutOfRange = errors.New("ordinal out of range")

// OutOfRangeError reports an ordinal that FromOrdinal could not convert.
type OutOfRangeError struct {
	Ordinal float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ordinal %v does not map to a representable timestamp", e.Ordinal)
}

// Is makes errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ToOrdinal converts t to milliseconds since the Unix epoch.
// Sub-millisecond precision is dropped. Ordinals beyond MaxExactOrdinal
// in magnitude, about 285,000 years from 1970, also lose whole
// milliseconds to float64 rounding.
func ToOrdinal(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// FromOrdinal converts an ordinal back to a UTC timestamp. Fractional
// milliseconds are truncated toward zero.
func FromOrdinal(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, &OutOfRangeError{Ordinal: v}
	}
	v = math.Trunc(v)
	if v < -(1<<63) || v >= 1<<63 {
		return time.Time{}, &OutOfRangeError{Ordinal: v}
	}
	return time.UnixMilli(int64(v)).UTC(), nil
}

// AddMilliseconds advances an ordinal by millis.
func AddMilliseconds(ordinal, millis float64) float64 {
	return ordinal + millis
}
