package parser

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// axisKinds maps OOXML axis element tags to axis kinds.
var axisKinds = map[string]axis.Kind{
	"catAx":  axis.Category,
	"valAx":  axis.Value,
	"dateAx": axis.DateTime,
}

// AxisDef is an axis as declared in a chart part.
type AxisDef struct {
	// ID is the axis id series and other axes refer to.
	ID string
	// Kind is derived from the element: catAx, valAx or dateAx.
	Kind axis.Kind
	// Position is the axPos value: b, l, t or r.
	Position string
	// Title is the axis title.
	Title string
	// Min and Max are the fixed scaling bounds, nil when automatic.
	Min, Max *float64
	// MajorUnit is the fixed distance between major ticks, nil when automatic.
	MajorUnit *float64
	// NumFmt is the number format code for tick labels.
	NumFmt string
	// SourceLinked reports a number format taken from the source cells.
	SourceLinked bool
	// Deleted reports an axis hidden from the chart.
	Deleted bool
	// BaseTimeUnit is the dateAx unit: days, months or years.
	BaseTimeUnit string
}

// ChartDef is a chart part: chart metadata plus its declared axes.
type ChartDef struct {
	Chart models.Chart
	Axes  []AxisDef
}

// XAxis returns the horizontal axis: the category or date axis, or for
// scatter charts the value axis placed at the bottom or top.
func (c *ChartDef) XAxis() *AxisDef {
	for i := range c.Axes {
		if c.Axes[i].Kind != axis.Value {
			return &c.Axes[i]
		}
	}
	for i := range c.Axes {
		if p := c.Axes[i].Position; p == "b" || p == "t" {
			return &c.Axes[i]
		}
	}
	return nil
}

// YAxis returns the first value axis that is not the X axis.
func (c *ChartDef) YAxis() *AxisDef {
	x := c.XAxis()
	for i := range c.Axes {
		if c.Axes[i].Kind == axis.Value && &c.Axes[i] != x {
			return &c.Axes[i]
		}
	}
	return nil
}

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	name      string
	chartPath string
	left      int
	top       int
	width     int
	height    int
}

// ExtractCharts extracts chart definitions from an xlsx file, keyed by
// sheet name. Dimensions are kept only in verbose mode.
func ExtractCharts(xlsxPath string, mode string) (map[string][]ChartDef, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetChartMap := getSheetChartMap(&r.Reader)

	result := make(map[string][]ChartDef)
	for sheetName, chartInfos := range sheetChartMap {
		var charts []ChartDef
		for _, ci := range chartInfos {
			def, err := parseChartFile(&r.Reader, ci, mode)
			if err != nil || def == nil {
				continue
			}
			charts = append(charts, *def)
		}
		result[sheetName] = charts
	}

	return result, nil
}

// getSheetChartMap returns a mapping of sheet names to their chart info.
func getSheetChartMap(r *zip.Reader) map[string][]chartInfo {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	for sheetName, sheetPath := range sheetFiles {
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		for _, drawingPath := range findRelationships(sheetRelsXML, "drawing") {
			drawingFullPath := resolveRelativePath(drawingPath, "xl/drawings")
			result[sheetName] = append(result[sheetName], getChartInfosFromDrawing(r, drawingFullPath)...)
		}
	}

	return result
}

// getChartInfosFromDrawing extracts chart info from a drawing XML file.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	var result []chartInfo

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	chartPositions := parseDrawingForCharts(drawingXML)
	if len(chartPositions) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}

	chartPaths := findRelationships(relsXML, "chart")

	for _, pos := range chartPositions {
		if chartPath, ok := chartPaths[pos.rID]; ok {
			result = append(result, chartInfo{
				name:      pos.name,
				chartPath: resolveRelativePath(chartPath, "xl/charts"),
				left:      pos.left,
				top:       pos.top,
				width:     pos.width,
				height:    pos.height,
			})
		}
	}

	return result
}

// chartPosition holds position info from drawing.xml.
type chartPosition struct {
	rID    string
	name   string
	left   int
	top    int
	width  int
	height int
}

// parseDrawingForCharts returns the chart frames of a drawing in document order.
func parseDrawingForCharts(data []byte) []chartPosition {
	var result []chartPosition
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "graphicFrame" {
			if pos := parseGraphicFrame(decoder); pos.rID != "" {
				result = append(result, pos)
			}
		}
	}

	return result
}

// parseGraphicFrame parses graphicFrame content.
func parseGraphicFrame(decoder *xml.Decoder) chartPosition {
	var pos chartPosition
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				pos.name = attr(t, "name")
			case "xfrm":
				pos.left, pos.top, pos.width, pos.height = parseXfrm(decoder)
				depth--
			case "chart":
				pos.rID = attr(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return pos
}

// parseChartFile parses a chart XML file.
func parseChartFile(r *zip.Reader, ci chartInfo, mode string) (*ChartDef, error) {
	chartXML, err := readZipFile(r, ci.chartPath)
	if err != nil || chartXML == nil {
		return nil, err
	}

	def := ParseChartXML(chartXML)
	def.Chart.Name = ci.name
	def.Chart.L, def.Chart.T = ci.left, ci.top
	if mode == "verbose" {
		w, h := ci.width, ci.height
		def.Chart.W, def.Chart.H = &w, &h
	}
	return def, nil
}

// ParseChartXML parses the content of a chart part.
func ParseChartXML(data []byte) *ChartDef {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	def := &ChartDef{}

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, def)
		}
	}

	if def.Chart.ChartType == "" {
		def.Chart.ChartType = "unknown"
	}
	return def
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, def *ChartDef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				def.Chart.Title = parseTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, def)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseTitle joins the text runs of a title element.
func parseTitle(decoder *xml.Decoder) string {
	var b strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					b.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(b.String())
}

// parsePlotArea parses plot area element.
func parsePlotArea(decoder *xml.Decoder, def *ChartDef) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				// Combo charts list several chart types; the first one names the chart.
				if def.Chart.ChartType == "" {
					def.Chart.ChartType = ct
				}
				def.Chart.Series = append(def.Chart.Series, parseChartSeries(decoder)...)
				depth--
			} else if kind, ok := axisKinds[t.Name.Local]; ok {
				def.Axes = append(def.Axes, parseAxis(decoder, kind))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type.
func parseChartSeries(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses range reference from cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseAxis parses a catAx, valAx or dateAx element.
func parseAxis(decoder *xml.Decoder, kind axis.Kind) AxisDef {
	def := AxisDef{Kind: kind}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "axId":
				def.ID = attr(t, "val")
			case "axPos":
				def.Position = attr(t, "val")
			case "delete":
				def.Deleted = boolAttr(t)
			case "majorUnit":
				def.MajorUnit = floatAttr(t)
			case "baseTimeUnit":
				def.BaseTimeUnit = attr(t, "val")
			case "numFmt":
				def.NumFmt = attr(t, "formatCode")
				def.SourceLinked = attr(t, "sourceLinked") == "1" || attr(t, "sourceLinked") == "true"
			case "title":
				def.Title = parseTitle(decoder)
				depth--
			case "scaling":
				def.Min, def.Max = parseAxisScaling(decoder)
				depth--
			case "txPr", "spPr", "extLst":
				skipElement(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return def
}

// parseAxisScaling parses axis scaling element.
func parseAxisScaling(decoder *xml.Decoder) (min, max *float64) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				min = floatAttr(t)
			case "max":
				max = floatAttr(t)
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}
