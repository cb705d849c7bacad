package chartaxis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
	"github.com/xuri/excelize/v2"
)

// writeChartWorkbook saves a workbook with an automatic column chart on
// Sheet1 and a column chart with fixed bounds and major unit on Fixed.
func writeChartWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B1", "Sales")
	for i, row := range []struct {
		quarter string
		value   float64
	}{{"Q1", 12}, {"Q2", 47}, {"Q3", 33}} {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), row.quarter)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), row.value)
	}

	col := []excelize.ChartSeries{{
		Name:       "Sheet1!$B$1",
		Categories: "Sheet1!$A$2:$A$4",
		Values:     "Sheet1!$B$2:$B$4",
	}}
	if err := f.AddChart(sheetName, "D2", &excelize.Chart{
		Type:   excelize.Col,
		Series: col,
		Title:  []excelize.RichTextRun{{Text: "Quarterly"}},
	}); err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	if _, err := f.NewSheet("Fixed"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	lo, hi := 0.0, 100.0
	if err := f.AddChart("Fixed", "B2", &excelize.Chart{
		Type:   excelize.Col,
		Series: col,
		YAxis: excelize.ChartAxis{
			Minimum:   &lo,
			Maximum:   &hi,
			MajorUnit: 25,
			NumFmt:    excelize.ChartNumFmt{CustomNumFmt: "0.0"},
		},
	}); err != nil {
		t.Fatalf("AddChart failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func tickLabels(a *models.Axis) []string {
	if a == nil {
		return nil
	}
	var labels []string
	for _, tk := range a.Ticks {
		labels = append(labels, tk.Label)
	}
	return labels
}

func TestResolveWorkbook(t *testing.T) {
	path := writeChartWorkbook(t)

	wb, err := Resolve(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if wb.BookName != "charts.xlsx" {
		t.Errorf("BookName = %q, expected charts.xlsx", wb.BookName)
	}

	charts := wb.Sheets["Sheet1"].Charts
	if len(charts) != 1 {
		t.Fatalf("Sheet1 has %d charts, expected 1", len(charts))
	}
	c := charts[0]
	if c.ChartType != "Bar" {
		t.Errorf("ChartType = %q, expected Bar", c.ChartType)
	}
	if c.Title != "Quarterly" {
		t.Errorf("Title = %q, expected Quarterly", c.Title)
	}
	if !strings.HasPrefix(c.Name, "Chart ") {
		t.Errorf("Name = %q, expected the drawing name", c.Name)
	}
	if c.W != nil || c.H != nil {
		t.Error("dimensions should only be reported in verbose mode")
	}

	if diff := cmp.Diff([]string{"Q1", "Q2", "Q3"}, tickLabels(c.XAxis)); diff != "" {
		t.Errorf("X labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "10", "20", "30", "40", "50"}, tickLabels(c.YAxis)); diff != "" {
		t.Errorf("Y labels mismatch (-want +got):\n%s", diff)
	}
	if c.YAxis.Custom || !c.YAxis.MinAuto || !c.YAxis.MaxAuto {
		t.Errorf("Y axis should be automatic: %+v", c.YAxis)
	}

	wantSeries := []models.ChartSeries{{
		Name:      "Sales",
		NameRange: "Sheet1!$B$1",
		XRange:    "Sheet1!$A$2:$A$4",
		YRange:    "Sheet1!$B$2:$B$4",
	}}
	if diff := cmp.Diff(wantSeries, c.Series); diff != "" {
		t.Errorf("Series mismatch (-want +got):\n%s", diff)
	}

	fixed := wb.Sheets["Fixed"].Charts
	if len(fixed) != 1 {
		t.Fatalf("Fixed has %d charts, expected 1", len(fixed))
	}
	y := fixed[0].YAxis
	if !y.Custom || y.MinAuto || y.MaxAuto || y.Step != 25 {
		t.Errorf("fixed Y axis = %+v, expected custom 25 steps", y)
	}
	if diff := cmp.Diff([]string{"0.0", "25.0", "50.0", "75.0", "100.0"}, tickLabels(y)); diff != "" {
		t.Errorf("fixed Y labels mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWorkbookLogsSeriesBounds(t *testing.T) {
	path := writeChartWorkbook(t)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ctx := WithLogger(context.Background(), logger)
	if _, err := Resolve(ctx, path, DefaultOptions()); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"read series", "min=12", "max=47"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestResolveWorkbookModes(t *testing.T) {
	path := writeChartWorkbook(t)

	light, err := Resolve(context.Background(), path, Options{Mode: ModeLight})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	c := light.Sheets["Sheet1"].Charts[0]
	if len(c.XAxis.Ticks) != 0 {
		t.Errorf("light mode X ticks = %v, expected none", c.XAxis.Ticks)
	}
	if diff := cmp.Diff([]string{"0", "20", "40", "60", "80", "100"}, tickLabels(c.YAxis)); diff != "" {
		t.Errorf("light Y labels mismatch (-want +got):\n%s", diff)
	}

	verbose, err := Resolve(context.Background(), path, Options{Mode: ModeVerbose})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	c = verbose.Sheets["Sheet1"].Charts[0]
	if c.W == nil || c.H == nil {
		t.Error("verbose mode should report dimensions")
	}
	if diff := cmp.Diff(models.Values{12, 47, 33}, c.Series[0].Values); diff != "" {
		t.Errorf("verbose values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWorkbookOverrides(t *testing.T) {
	path := writeChartWorkbook(t)
	decimals := 2

	wb, err := Resolve(context.Background(), path, Options{Mode: ModeStandard, DecimalCount: &decimals})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	labels := tickLabels(wb.Sheets["Sheet1"].Charts[0].YAxis)
	if len(labels) == 0 || labels[len(labels)-1] != "50.00" {
		t.Errorf("Y labels = %v, expected two decimals", labels)
	}
}

func TestResolveErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(context.Background(), filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file error = %v, expected ErrFileNotFound", err)
	}

	bogus := filepath.Join(dir, "bogus.xlsx")
	if err := os.WriteFile(bogus, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Resolve(context.Background(), bogus, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bogus file error = %v, expected ErrInvalidFormat", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Resolve(ctx, writeChartWorkbook(t), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v, expected context.Canceled", err)
	}
}

func TestResolveError(t *testing.T) {
	inner := errors.New("boom")
	err := NewResolveError("Sheet1", "Chart 1", "y_axis", inner)

	if !errors.Is(err, inner) {
		t.Error("ResolveError should unwrap to its cause")
	}
	want := `resolve error in sheet "Sheet1" chart "Chart 1" (y_axis): boom`
	if err.Error() != want {
		t.Errorf("Error() = %q, expected %q", err.Error(), want)
	}
}
