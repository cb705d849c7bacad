package chartaxis

import (
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/series"
)

// Chart is a chart option: the axes its series are plotted against plus
// the series themselves. Either axis may be nil for charts without one.
type Chart struct {
	// Name identifies the chart.
	Name string
	// Title is the chart title.
	Title string
	// ChartType is the chart type (e.g., Bar, Line).
	ChartType string
	// XAxis is the category, time or X value axis.
	XAxis *axis.Axis
	// YAxis is the value axis.
	YAxis *axis.Axis
	// Series holds the plotted data.
	Series *series.Store
	// XValues are the positions the X axis resolves against when it is
	// not a category axis: time ordinals or scatter X values.
	XValues []float64
}

// NewBarChart returns a bar chart with a category X axis, a value Y axis
// and no series.
func NewBarChart(name string) *Chart {
	return &Chart{
		Name:      name,
		ChartType: "Bar",
		XAxis:     axis.NewAxis(axis.Category),
		YAxis:     axis.NewAxis(axis.Value),
		Series:    &series.Store{},
	}
}

// Resolve computes both axes against the chart's data.
// An X category axis without categories borrows the bar names of the
// first series. The chart itself is left unchanged.
func (c *Chart) Resolve() (models.Chart, error) {
	out := models.Chart{
		Name:      c.Name,
		ChartType: c.ChartType,
		Title:     c.Title,
	}

	var all []*series.Series
	if c.Series != nil {
		all = c.Series.All()
	}
	for _, s := range all {
		out.Series = append(out.Series, models.ChartSeries{
			Name:   s.Name,
			Values: s.Values(),
		})
	}

	if c.XAxis != nil {
		x := c.XAxis
		if x.Kind() == axis.Category && x.CategoryCount() == 0 && len(all) > 0 {
			if names := all[0].BarNames(); len(names) > 0 {
				borrowed := *x
				borrowed.SetCategories(names)
				x = &borrowed
			}
		}
		var data []float64
		if x.Kind() != axis.Category {
			data = c.XValues
		}
		ma, err := ResolveAxis(x, data)
		if err != nil {
			return models.Chart{}, NewResolveError("", c.Name, "x_axis", err)
		}
		out.XAxis = ma
	}

	if c.YAxis != nil {
		var data []float64
		if c.Series != nil {
			data = c.Series.Values()
		}
		ma, err := ResolveAxis(c.YAxis, data)
		if err != nil {
			return models.Chart{}, NewResolveError("", c.Name, "y_axis", err)
		}
		out.YAxis = ma
	}

	return out, nil
}

// ResolveAxis resolves a against data and converts the result into its
// output model.
func ResolveAxis(a *axis.Axis, data []float64) (*models.Axis, error) {
	scale := a.Resolve(data)
	ticks, err := a.LabelScale(scale)
	if err != nil {
		return nil, err
	}

	out := &models.Axis{
		Kind:    a.Kind().String(),
		Title:   a.Name,
		Min:     scale.Min,
		Max:     scale.Max,
		Step:    scale.Step,
		MinAuto: a.MinAuto(),
		MaxAuto: a.MaxAuto(),
		Custom:  a.HasCustomLabels(),
		Ticks:   make([]models.Tick, len(ticks)),
	}
	for i, t := range ticks {
		out.Ticks[i] = models.Tick{Value: t.Value, Label: t.Label}
	}
	return out, nil
}
