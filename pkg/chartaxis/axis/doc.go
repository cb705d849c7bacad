// Package axis computes, scales and labels chart axes.
//
// An Axis resolves its effective range and tick positions from series
// data (Resolve) and renders each tick to text (Ticks). Value axes pick a
// "nice" step from {1, 2, 2.5, 5, 10}×10^k so ticks land on round numbers;
// time axes work on ordinals, milliseconds since the Unix epoch, so the
// same arithmetic applies and steps come from a table of calendar-friendly
// durations. Category axes place one tick per category.
//
// A CustomLabels sequence attached to an axis replaces automatic tick
// computation:
//
//	y := axis.NewAxis(axis.Value)
//	y.SetCustomLabels(axis.NewValueLabels(0, 25, 4))
//	ticks, _ := y.Ticks(nil) // 0, 25, 50, 75, 100
package axis
