package models

import (
	"math"
	"strconv"
)

// Values are series values. Non-finite values, from cells that hold no
// number, are written as null.
type Values []float64

// MarshalJSON implements json.Marshaler.
func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	b := []byte{'['}
	for i, f := range v {
		if i > 0 {
			b = append(b, ',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			b = append(b, "null"...)
			continue
		}
		b = strconv.AppendFloat(b, f, 'g', -1, 64)
	}
	return append(b, ']'), nil
}

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category or X values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y values.
	YRange string `json:"y_range,omitempty"`
	// Values are the series values (verbose mode only).
	Values Values `json:"values,omitempty"`
}

// Chart represents a chart with its resolved axes.
type Chart struct {
	// Name is the chart name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Bar, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxis is the resolved category, date or X value axis.
	XAxis *Axis `json:"x_axis,omitempty"`
	// YAxis is the resolved value axis.
	YAxis *Axis `json:"y_axis,omitempty"`
	// W is the chart width in pixels (nil if unknown or not verbose mode).
	W *int `json:"w,omitempty"`
	// H is the chart height in pixels (nil if unknown or not verbose mode).
	H *int `json:"h,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
}
