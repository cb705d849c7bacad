package chartaxis

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/parser"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/series"
	"github.com/xuri/excelize/v2"
)

// maxMajorUnitTicks bounds the tick sequence built from a chart's major unit.
const maxMajorUnitTicks = 1000

// Resolve resolves the axes of every chart in an xlsx workbook.
// Series ranges that cannot be read are logged and skipped.
func Resolve(ctx context.Context, path string, opts Options) (*models.WorkbookData, error) {
	logger := LoggerFromContext(ctx)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	chartData, err := parser.ExtractCharts(path, string(opts.Mode))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sheets := make(map[string]models.SheetData)
	for _, sheetName := range f.GetSheetList() {
		var charts []models.Chart
		for _, def := range chartData[sheetName] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			chart := buildChart(logger.With("sheet", sheetName, "chart", def.Chart.Name), f, def, opts, date1904)
			resolved, err := chart.Resolve()
			if err != nil {
				var re *ResolveError
				if errors.As(err, &re) {
					re.SheetName = sheetName
				}
				return nil, err
			}
			charts = append(charts, mergeChart(resolved, def, opts))
		}
		sheets[sheetName] = models.SheetData{Charts: charts}
		logger.Debug("resolved sheet", "sheet", sheetName, "charts", len(charts))
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

// buildChart turns a chart part into a Chart, reading series cells unless
// opts is in light mode.
func buildChart(logger *log.Logger, f *excelize.File, def parser.ChartDef, opts Options, date1904 bool) *Chart {
	c := &Chart{
		Name:      def.Chart.Name,
		Title:     def.Chart.Title,
		ChartType: def.Chart.ChartType,
		Series:    &series.Store{},
	}

	var xDef, yDef *parser.AxisDef
	if xDef = def.XAxis(); xDef != nil {
		c.XAxis = buildAxis(xDef, opts, date1904)
	}
	if yDef = def.YAxis(); yDef != nil {
		c.YAxis = buildAxis(yDef, opts, date1904)
	}

	for i, cs := range def.Chart.Series {
		name := cs.Name
		if name == "" && cs.NameRange != "" && opts.ShouldReadValues() {
			if rg, err := parser.ReadRange(f, cs.NameRange); err == nil && len(rg.Texts) > 0 {
				name = rg.Texts[0]
			}
		}
		if name == "" {
			name = fmt.Sprintf("Series%d", i+1)
		}
		s := series.New(name, 0)
		c.Series.Add(s)
		if !opts.ShouldReadValues() {
			continue
		}

		var x parser.Range
		if cs.XRange != "" {
			rg, err := parser.ReadRange(f, cs.XRange)
			if err != nil {
				logger.Warn("skipping unreadable range", "series", name, "range", cs.XRange, "err", err)
			} else {
				x = rg
			}
		}

		if cs.YRange != "" {
			y, err := parser.ReadRange(f, cs.YRange)
			if err != nil {
				logger.Warn("skipping unreadable range", "series", name, "range", cs.YRange, "err", err)
			} else {
				for j, v := range y.Numbers {
					if j < len(x.Texts) {
						s.AddNamedData(x.Texts[j], v)
					} else {
						s.AddData(v)
					}
				}
				if lo, hi, ok := s.Bounds(); ok {
					logger.Debug("read series", "series", name, "points", s.Len(), "min", lo, "max", hi)
				}
			}
		}

		if c.XAxis == nil || len(x.Numbers) == 0 {
			continue
		}
		switch c.XAxis.Kind() {
		case axis.Category:
			if c.XAxis.CategoryCount() == 0 {
				c.XAxis.SetCategories(x.Texts)
			}
		case axis.DateTime:
			c.XValues = append(c.XValues, parser.SerialOrdinals(x.Numbers, date1904)...)
		case axis.Value:
			c.XValues = append(c.XValues, x.Numbers...)
		}
	}

	// Linked formats follow the cells; the first series' cells stand in.
	if yDef != nil && yDef.SourceLinked && opts.DecimalCount == nil && opts.ShouldReadValues() {
		if n := parser.DecimalsFromNumFmt(firstCellFormat(f, def)); n >= 0 {
			c.YAxis.Label.DecimalCount = n
		}
	}

	logger.Debug("built chart", "type", c.ChartType, "series", c.Series.Len())
	return c
}

// firstCellFormat returns the number format code of the first cell of the
// first series' Y range, or "" when unknown.
func firstCellFormat(f *excelize.File, def parser.ChartDef) string {
	if len(def.Chart.Series) == 0 || def.Chart.Series[0].YRange == "" {
		return ""
	}
	sheet, cell, ok := parser.FirstCell(def.Chart.Series[0].YRange)
	if !ok {
		return ""
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return ""
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return ""
	}
	if style.CustomNumFmt != nil {
		return *style.CustomNumFmt
	}
	return builtInNumFmts[style.NumFmt]
}

// builtInNumFmts are the built-in number formats that fix the digit count.
var builtInNumFmts = map[int]string{
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
}

// buildAxis creates an axis from its chart part declaration.
func buildAxis(d *parser.AxisDef, opts Options, date1904 bool) *axis.Axis {
	a := axis.NewAxis(d.Kind)
	a.Name = d.Title

	if d.Kind == axis.DateTime {
		// Date serials are far from zero.
		a.ScaleFromZero = false
		a.Label.DateTimeFormat = dateFormatFor(d.BaseTimeUnit)
	}
	if !d.SourceLinked {
		if n := parser.DecimalsFromNumFmt(d.NumFmt); n >= 0 {
			a.Label.DecimalCount = n
		}
	}
	opts.Apply(a)

	if d.Kind == axis.Category {
		return a
	}

	bound := func(v float64) float64 {
		if d.Kind == axis.DateTime {
			return parser.SerialOrdinal(v, date1904)
		}
		return v
	}
	if d.Min != nil {
		if v := bound(*d.Min); !math.IsNaN(v) {
			a.SetMinValue(v)
		}
	}
	if d.Max != nil {
		if v := bound(*d.Max); !math.IsNaN(v) {
			a.SetMaxValue(v)
		}
	}

	if d.MajorUnit != nil && *d.MajorUnit > 0 && !a.MinAuto() && !a.MaxAuto() {
		setMajorUnit(a, d, *d.MajorUnit)
	}
	return a
}

// setMajorUnit replaces automatic ticks with the chart's fixed major unit.
// Date axes measure the unit in days; month and year units are left to
// automatic ticks.
func setMajorUnit(a *axis.Axis, d *parser.AxisDef, unit float64) {
	lo, hi := min(a.Min(), a.Max()), max(a.Min(), a.Max())

	switch d.Kind {
	case axis.Value:
		n := math.Round((hi - lo) / unit)
		if n >= 1 && n <= maxMajorUnitTicks {
			a.SetCustomLabels(axis.NewValueLabels(lo, unit, int(n)))
		}
	case axis.DateTime:
		if d.BaseTimeUnit != "" && d.BaseTimeUnit != "days" {
			return
		}
		millis := unit * float64(24*time.Hour/time.Millisecond)
		n := math.Round((hi - lo) / millis)
		start, err := axis.FromOrdinal(lo)
		if err != nil || n < 1 || n > maxMajorUnitTicks {
			return
		}
		a.SetCustomLabels(axis.NewTimeLabels(start, int64(millis), int(n)))
	}
}

func dateFormatFor(baseTimeUnit string) string {
	switch baseTimeUnit {
	case "months":
		return "yyyy-MM"
	case "years":
		return "yyyy"
	}
	return "yyyy-MM-dd"
}

// mergeChart adds the chart part metadata the resolved chart lacks.
func mergeChart(resolved models.Chart, def parser.ChartDef, opts Options) models.Chart {
	resolved.L, resolved.T = def.Chart.L, def.Chart.T
	resolved.W, resolved.H = def.Chart.W, def.Chart.H

	for i := range resolved.Series {
		if i < len(def.Chart.Series) {
			src := def.Chart.Series[i]
			resolved.Series[i].NameRange = src.NameRange
			resolved.Series[i].XRange = src.XRange
			resolved.Series[i].YRange = src.YRange
		}
		if !opts.ShouldIncludeValues() {
			resolved.Series[i].Values = nil
		}
	}

	if x := def.XAxis(); x != nil && resolved.XAxis != nil {
		resolved.XAxis.Hidden = x.Deleted
	}
	if y := def.YAxis(); y != nil && resolved.YAxis != nil {
		resolved.YAxis.Hidden = y.Deleted
	}
	return resolved
}
