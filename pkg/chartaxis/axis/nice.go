package axis

import (
	"math"
	"slices"
)

// niceMantissas are the step multipliers tried within each decade.
var niceMantissas = []float64{1, 2, 2.5, 5, 10}

const (
	second = 1000.0
	minute = 60 * second
	hour   = 60 * minute
	day    = 24 * hour
)

// timeSteps are the step sizes, in milliseconds, tried for time axes whose
// rough step lies between one millisecond and one week.
var timeSteps = []float64{
	1, 2, 5, 10, 20, 50, 100, 200, 500,
	second, 2 * second, 5 * second, 10 * second, 15 * second, 30 * second,
	minute, 2 * minute, 5 * minute, 10 * minute, 15 * minute, 30 * minute,
	hour, 2 * hour, 3 * hour, 6 * hour, 12 * hour,
	day, 2 * day, 7 * day,
}

// snap removes floating point noise from a quotient that is meant to be
// an integer, so that 0.3/0.1 counts as 3 rather than 2.9999999999999996.
func snap(q float64) float64 {
	if r := math.Round(q); math.Abs(q-r) < 1e-9 {
		return r
	}
	return q
}

func floorTo(v, step float64) float64 {
	return tidy(math.Floor(snap(v/step))*step, step)
}

func ceilTo(v, step float64) float64 {
	return tidy(math.Ceil(snap(v/step))*step, step)
}

// tidy rounds v to a couple of digits below the precision of step,
// turning 0.30000000000000004 into 0.3.
func tidy(v, step float64) float64 {
	digits := 2 - int(math.Floor(math.Log10(step)))
	if digits <= 0 || digits > 15 {
		return v
	}
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

// maxMultiple bounds the step multiples a scale may reach. Past it the
// quotient v/step no longer holds its fractional part in a float64.
const maxMultiple = 1 << 50

// maxTicks bounds the tick count a step may produce.
const maxTicks = 10000

// countable reports whether [lo, hi] can be tiled by step exactly, with
// every multiple representable and a bounded number of ticks.
func countable(lo, hi, step float64) bool {
	if !(step > 0) || math.IsInf(step, 0) {
		return false
	}
	qlo, qhi := lo/step, hi/step
	return math.Abs(qlo) <= maxMultiple && math.Abs(qhi) <= maxMultiple && qhi-qlo <= maxTicks
}

// intervalCount returns how many step intervals cover [lo, hi] once both
// ends are rounded outward to step multiples.
func intervalCount(lo, hi, step float64) int {
	n := math.Ceil(snap(hi/step)) - math.Floor(snap(lo/step))
	if n > math.MaxInt32 || math.IsNaN(n) {
		return math.MaxInt32
	}
	return int(n)
}

// decimalCandidates returns {1, 2, 2.5, 5, 10}×10^k steps around span/split,
// in increasing order.
func decimalCandidates(span float64, split int) []float64 {
	rough := span / float64(split)
	if !(rough > 0) || math.IsInf(rough, 0) {
		return nil
	}
	k := int(math.Floor(math.Log10(rough)))
	var steps []float64
	for e := k - 1; e <= k+1; e++ {
		mag := math.Pow10(e)
		for _, m := range niceMantissas {
			steps = append(steps, m*mag)
		}
	}
	slices.Sort(steps)
	return slices.CompactFunc(steps, func(a, b float64) bool {
		return math.Abs(a-b) <= 1e-9*b
	})
}

// timeCandidates returns the step sizes tried for a time axis span.
func timeCandidates(span float64, split int) []float64 {
	rough := span / float64(split)
	switch {
	case rough < 1:
		return decimalCandidates(span, split)
	case rough <= timeSteps[len(timeSteps)-1]:
		return timeSteps
	}
	days := decimalCandidates(span/day, split)
	steps := make([]float64, 0, len(days))
	for _, d := range days {
		if d >= 1 {
			steps = append(steps, d*day)
		}
	}
	return steps
}

// chooseStep picks the step for [lo, hi]. Candidates are scanned from the
// coarsest to the finest; the first whose interval count is within
// deviation of split wins. Otherwise the candidate with the closest count
// wins, ties going to the coarser step.
func chooseStep(lo, hi float64, split, deviation int, candidates []float64) float64 {
	best, bestDiff := 0.0, math.MaxInt
	for i := len(candidates) - 1; i >= 0; i-- {
		step := candidates[i]
		if !(step > 0) || math.IsInf(step, 0) {
			continue
		}
		diff := intervalCount(lo, hi, step) - split
		if diff < 0 {
			diff = -diff
		}
		if diff <= deviation {
			return step
		}
		if diff < bestDiff {
			best, bestDiff = step, diff
		}
	}
	return best
}

// stepValues returns lo, every step multiple strictly between lo and hi,
// and hi. It returns nil when the multiples cannot be counted exactly;
// see countable.
func stepValues(lo, hi, step float64) []float64 {
	if hi <= lo {
		return []float64{lo}
	}
	if !countable(lo, hi, step) {
		return nil
	}
	first := math.Floor(snap(lo/step)) + 1
	n := int(math.Ceil(snap(hi/step)) - first)
	values := []float64{lo}
	eps := step * 1e-9
	for i := range n {
		v := tidy((first+float64(i))*step, step)
		if v > lo+eps && v < hi-eps {
			values = append(values, v)
		}
	}
	return append(values, hi)
}

// evenValues splits [lo, hi] into n equal intervals. Values that collapse
// onto their neighbor at large magnitudes are dropped, and a span too wide
// to represent yields just the two ends.
func evenValues(lo, hi float64, n int) []float64 {
	if hi <= lo {
		return []float64{lo}
	}
	step := (hi - lo) / float64(n)
	if math.IsInf(step, 0) {
		return []float64{lo, hi}
	}
	values := make([]float64, n+1)
	for i := range n {
		values[i] = lo + step*float64(i)
	}
	values[n] = hi
	return slices.Compact(values)
}
