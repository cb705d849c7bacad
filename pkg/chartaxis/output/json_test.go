package output

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
)

func sampleChart() models.Chart {
	return models.Chart{
		Name:      "Chart 1",
		ChartType: "Bar",
		YAxis: &models.Axis{
			Kind:    "value",
			Max:     10,
			Step:    5,
			MinAuto: true,
			MaxAuto: true,
			Ticks:   []models.Tick{{Value: 0, Label: "0"}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"}},
		},
		Series: []models.ChartSeries{{Name: "s", Values: models.Values{1, math.NaN(), 10}}},
	}
}

func TestChartToJSON(t *testing.T) {
	c := sampleChart()
	data, err := ChartToJSON(&c, false)
	if err != nil {
		t.Fatalf("ChartToJSON failed: %v", err)
	}

	s := string(data)
	for _, want := range []string{
		`"chart_type":"Bar"`,
		`"y_axis":{"kind":"value","min":0,"max":10,"step":5,"min_auto":true,"max_auto":true`,
		`{"value":5,"label":"5"}`,
		`"values":[1,null,10]`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %s:\n%s", want, s)
		}
	}
	if strings.Contains(s, "x_axis") {
		t.Errorf("nil x axis should be omitted:\n%s", s)
	}
}

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "book.xlsx",
		Sheets:   map[string]models.SheetData{"Sheet1": {Charts: []models.Chart{sampleChart()}}},
	}

	data, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"book_name\": \"book.xlsx\"") {
		t.Errorf("pretty output not indented:\n%s", data)
	}

	var decoded struct {
		BookName string `json:"book_name"`
		Sheets   map[string]struct {
			Charts []struct {
				Name string `json:"name"`
			} `json:"charts"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got := decoded.Sheets["Sheet1"].Charts[0].Name; got != "Chart 1" {
		t.Errorf("chart name = %q, expected Chart 1", got)
	}
}

func TestSheetToJSON(t *testing.T) {
	data, err := SheetToJSON(&models.SheetData{}, false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("SheetToJSON = %s, expected {}", data)
	}
}

func TestChartsToJSON(t *testing.T) {
	data, err := ChartsToJSON(nil, false)
	if err != nil {
		t.Fatalf("ChartsToJSON failed: %v", err)
	}
	if string(data) != `{"charts":[]}` {
		t.Errorf("ChartsToJSON(nil) = %s", data)
	}
}
