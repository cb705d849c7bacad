// Package output serializes resolved charts as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
)

// ToJSON serializes a resolved workbook.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes the charts of a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// ChartToJSON serializes a single resolved chart.
func ChartToJSON(chart *models.Chart, pretty bool) ([]byte, error) {
	return marshal(chart, pretty)
}

// ChartsToJSON serializes charts resolved outside a workbook, such as
// those built from a chart file.
func ChartsToJSON(charts []models.Chart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []models.Chart{}
	}
	return marshal(struct {
		Charts []models.Chart `json:"charts"`
	}{charts}, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
