// Package config reads chart definitions from TOML chart files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ukaji3/chartaxis-go/pkg/chartaxis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/series"
)

// File is a chart file: a list of [[chart]] tables.
type File struct {
	Charts []ChartConfig `toml:"chart"`
}

// ChartConfig describes one chart.
type ChartConfig struct {
	Name   string         `toml:"name"`
	Title  string         `toml:"title"`
	Type   string         `toml:"type"`
	XAxis  *AxisConfig    `toml:"x_axis"`
	YAxis  *AxisConfig    `toml:"y_axis"`
	Series []SeriesConfig `toml:"series"`
}

// AxisConfig describes an axis. Unset fields keep the axis defaults.
type AxisConfig struct {
	Kind           string              `toml:"kind"`
	Name           string              `toml:"name"`
	Min            *float64            `toml:"min"`
	Max            *float64            `toml:"max"`
	MinTime        *time.Time          `toml:"min_time"`
	MaxTime        *time.Time          `toml:"max_time"`
	SplitNumber    int                 `toml:"split_number"`
	SplitDeviation int                 `toml:"split_deviation"`
	ScaleFromZero  *bool               `toml:"scale_from_zero"`
	Decimals       int                 `toml:"decimals"`
	TimeFormat     *string             `toml:"time_format"`
	Location       string              `toml:"location"`
	Grouping       bool                `toml:"grouping"`
	Locale         string              `toml:"locale"`
	Categories     []string            `toml:"categories"`
	CustomLabels   *CustomLabelsConfig `toml:"custom_labels"`
}

// CustomLabelsConfig describes an explicit tick sequence. Time axes take
// start_time and an interval in milliseconds.
type CustomLabelsConfig struct {
	Start     float64    `toml:"start"`
	StartTime *time.Time `toml:"start_time"`
	Interval  float64    `toml:"interval"`
	Count     int        `toml:"count"`
	Labels    []string   `toml:"labels"`
}

// SeriesConfig describes a data series. Names label the data points and
// Times position them on a time X axis.
type SeriesConfig struct {
	Name     string      `toml:"name"`
	Decimals int         `toml:"decimals"`
	Data     []float64   `toml:"data"`
	Names    []string    `toml:"names"`
	Times    []time.Time `toml:"times"`
}

// Load reads a chart file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a chart file. Unknown keys are rejected.
func Parse(s string) (*File, error) {
	var f File
	md, err := toml.Decode(s, &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &f, nil
}

// Build returns the charts the file describes.
func (f *File) Build() ([]*chartaxis.Chart, error) {
	charts := make([]*chartaxis.Chart, 0, len(f.Charts))
	for i := range f.Charts {
		c, err := f.Charts[i].Build()
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

// Build creates the chart. Without axis tables the chart is a bar chart
// with a category X axis and a value Y axis.
func (cc *ChartConfig) Build() (*chartaxis.Chart, error) {
	c := chartaxis.NewBarChart(cc.Name)
	c.Title = cc.Title
	if cc.Type != "" {
		c.ChartType = cc.Type
	}

	if cc.XAxis != nil {
		a, err := cc.XAxis.build(axis.Category)
		if err != nil {
			return nil, fmt.Errorf("chart %q: x_axis: %w", cc.Name, err)
		}
		c.XAxis = a
	}
	if cc.YAxis != nil {
		a, err := cc.YAxis.build(axis.Value)
		if err != nil {
			return nil, fmt.Errorf("chart %q: y_axis: %w", cc.Name, err)
		}
		c.YAxis = a
	}

	for i, sc := range cc.Series {
		if len(sc.Names) > 0 && len(sc.Names) != len(sc.Data) {
			return nil, fmt.Errorf("chart %q: series %d: %d names for %d values", cc.Name, i, len(sc.Names), len(sc.Data))
		}
		if len(sc.Times) > 0 {
			if len(sc.Times) != len(sc.Data) {
				return nil, fmt.Errorf("chart %q: series %d: %d times for %d values", cc.Name, i, len(sc.Times), len(sc.Data))
			}
			if c.XAxis.Kind() != axis.DateTime {
				return nil, fmt.Errorf("chart %q: series %d: times need a time x_axis", cc.Name, i)
			}
		}

		s := series.New(sc.Name, sc.Decimals)
		for j, v := range sc.Data {
			if len(sc.Names) > 0 {
				s.AddNamedData(sc.Names[j], v)
			} else {
				s.AddData(v)
			}
		}
		for _, t := range sc.Times {
			c.XValues = append(c.XValues, axis.ToOrdinal(t))
		}
		c.Series.Add(s)
	}

	return c, nil
}

func (ac *AxisConfig) build(defaultKind axis.Kind) (*axis.Axis, error) {
	kind := defaultKind
	if ac.Kind != "" {
		k, err := axis.ParseKind(ac.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	a := axis.NewAxis(kind)
	a.Name = ac.Name
	a.SplitDeviation = ac.SplitDeviation
	if ac.SplitNumber > 0 {
		a.SplitNumber = ac.SplitNumber
	}
	if ac.ScaleFromZero != nil {
		a.ScaleFromZero = *ac.ScaleFromZero
	}

	a.Label.DecimalCount = ac.Decimals
	a.Label.Grouping = ac.Grouping
	a.Label.Locale = ac.Locale
	if ac.TimeFormat != nil {
		a.Label.DateTimeFormat = *ac.TimeFormat
	}
	if ac.Location != "" {
		loc, err := time.LoadLocation(ac.Location)
		if err != nil {
			return nil, err
		}
		a.Label.Location = loc
	}

	if len(ac.Categories) > 0 {
		if kind != axis.Category {
			return nil, errors.New("categories need a category axis")
		}
		a.SetCategories(ac.Categories)
	}

	if err := ac.setBounds(a); err != nil {
		return nil, err
	}

	if ac.CustomLabels != nil {
		cl, err := ac.CustomLabels.build(kind)
		if err != nil {
			return nil, err
		}
		a.SetCustomLabels(cl)
	}
	return a, nil
}

func (ac *AxisConfig) setBounds(a *axis.Axis) error {
	if (ac.Min != nil && ac.MinTime != nil) || (ac.Max != nil && ac.MaxTime != nil) {
		return errors.New("a bound is set both as a number and as a time")
	}
	if (ac.MinTime != nil || ac.MaxTime != nil) && a.Kind() != axis.DateTime {
		return errors.New("min_time and max_time need a time axis")
	}

	if ac.Min != nil {
		a.SetMinValue(*ac.Min)
	}
	if ac.Max != nil {
		a.SetMaxValue(*ac.Max)
	}
	if ac.MinTime != nil {
		a.SetMinTime(*ac.MinTime)
	}
	if ac.MaxTime != nil {
		a.SetMaxTime(*ac.MaxTime)
	}
	return nil
}

func (cl *CustomLabelsConfig) build(kind axis.Kind) (*axis.CustomLabels, error) {
	var c *axis.CustomLabels
	switch {
	case kind == axis.Category:
		return nil, errors.New("custom labels need a value or time axis")
	case kind == axis.DateTime && cl.StartTime != nil:
		c = axis.NewTimeLabels(*cl.StartTime, int64(cl.Interval), cl.Count)
	case kind == axis.DateTime:
		return nil, errors.New("custom labels on a time axis need start_time")
	case cl.StartTime != nil:
		return nil, errors.New("start_time needs a time axis")
	default:
		c = axis.NewValueLabels(cl.Start, cl.Interval, cl.Count)
	}
	c.SetLabels(cl.Labels)
	return c, nil
}
