package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
)

const lineChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:p><a:r><a:t>Monthly </a:t></a:r><a:r><a:t>Sales</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:autoTitleDeleted val="0"/>
    <c:plotArea>
      <c:lineChart>
        <c:grouping val="standard"/>
        <c:ser>
          <c:idx val="0"/>
          <c:tx><c:strRef><c:f>Sheet1!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>Revenue</c:v></c:pt></c:strCache></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Sheet1!$A$2:$A$5</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Sheet1!$B$2:$B$5</c:f></c:numRef></c:val>
        </c:ser>
        <c:axId val="100"/>
        <c:axId val="200"/>
      </c:lineChart>
      <c:catAx>
        <c:axId val="100"/>
        <c:scaling><c:orientation val="minMax"/></c:scaling>
        <c:delete val="0"/>
        <c:axPos val="b"/>
        <c:numFmt formatCode="General" sourceLinked="1"/>
        <c:crossAx val="200"/>
      </c:catAx>
      <c:valAx>
        <c:axId val="200"/>
        <c:scaling><c:orientation val="minMax"/><c:max val="500"/><c:min val="-100"/></c:scaling>
        <c:delete val="0"/>
        <c:axPos val="l"/>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>USD</a:t></a:r></a:p></c:rich></c:tx></c:title>
        <c:numFmt formatCode="#,##0.00" sourceLinked="0"/>
        <c:majorUnit val="100"/>
        <c:txPr><a:p><a:r><a:t>ignored</a:t></a:r></a:p></c:txPr>
        <c:crossAx val="100"/>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	def := ParseChartXML([]byte(lineChartXML))

	if def.Chart.ChartType != "Line" {
		t.Errorf("ChartType = %q, expected %q", def.Chart.ChartType, "Line")
	}
	if def.Chart.Title != "Monthly Sales" {
		t.Errorf("Title = %q, expected %q", def.Chart.Title, "Monthly Sales")
	}

	wantSeries := []models.ChartSeries{{
		Name:      "Revenue",
		NameRange: "Sheet1!$B$1",
		XRange:    "Sheet1!$A$2:$A$5",
		YRange:    "Sheet1!$B$2:$B$5",
	}}
	if diff := cmp.Diff(wantSeries, def.Chart.Series); diff != "" {
		t.Errorf("Series mismatch (-want +got):\n%s", diff)
	}

	if len(def.Axes) != 2 {
		t.Fatalf("len(Axes) = %d, expected 2", len(def.Axes))
	}

	x := def.XAxis()
	if x == nil || x.Kind != axis.Category || x.ID != "100" || x.Position != "b" {
		t.Errorf("XAxis() = %+v, expected the bottom category axis 100", x)
	}
	if x != nil && (x.Min != nil || x.Max != nil) {
		t.Errorf("category axis has bounds %v/%v, expected none", x.Min, x.Max)
	}

	y := def.YAxis()
	if y == nil {
		t.Fatal("YAxis() = nil")
	}
	if y.Min == nil || *y.Min != -100 || y.Max == nil || *y.Max != 500 {
		t.Errorf("value axis bounds = %v/%v, expected -100/500", y.Min, y.Max)
	}
	if y.MajorUnit == nil || *y.MajorUnit != 100 {
		t.Errorf("MajorUnit = %v, expected 100", y.MajorUnit)
	}
	if y.Title != "USD" {
		t.Errorf("Title = %q, expected %q", y.Title, "USD")
	}
	if y.NumFmt != "#,##0.00" || y.SourceLinked {
		t.Errorf("NumFmt = %q sourceLinked=%v, expected #,##0.00 unlinked", y.NumFmt, y.SourceLinked)
	}
}

func TestParseScatterAxes(t *testing.T) {
	data := `<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart><c:plotArea>
  <c:scatterChart>
    <c:ser><c:xVal><c:numRef><c:f>Data!$A$1:$A$9</c:f></c:numRef></c:xVal><c:yVal><c:numRef><c:f>Data!$B$1:$B$9</c:f></c:numRef></c:yVal></c:ser>
  </c:scatterChart>
  <c:valAx><c:axId val="1"/><c:axPos val="l"/><c:delete val="1"/></c:valAx>
  <c:valAx><c:axId val="2"/><c:axPos val="b"/><c:delete/></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`

	def := ParseChartXML([]byte(data))
	if def.Chart.ChartType != "XYScatter" {
		t.Errorf("ChartType = %q, expected XYScatter", def.Chart.ChartType)
	}
	if got := def.Chart.Series[0].XRange; got != "Data!$A$1:$A$9" {
		t.Errorf("XRange = %q", got)
	}
	if x := def.XAxis(); x == nil || x.ID != "2" {
		t.Errorf("XAxis() = %+v, expected axis 2", x)
	}
	y := def.YAxis()
	if y == nil || y.ID != "1" {
		t.Fatalf("YAxis() = %+v, expected axis 1", y)
	}
	if !y.Deleted {
		t.Error("axis 1 should be marked deleted")
	}
}

func TestParseChartXMLUnknown(t *testing.T) {
	def := ParseChartXML([]byte(`<c:chartSpace xmlns:c="c"><c:chart/></c:chartSpace>`))
	if def.Chart.ChartType != "unknown" {
		t.Errorf("ChartType = %q, expected unknown", def.Chart.ChartType)
	}
	if def.XAxis() != nil || def.YAxis() != nil {
		t.Error("expected no axes")
	}
}

func TestParseDrawingForCharts(t *testing.T) {
	data := `<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
  xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"
  xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">
  <xdr:twoCellAnchor>
    <xdr:graphicFrame>
      <xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/><xdr:cNvGraphicFramePr/></xdr:nvGraphicFramePr>
      <xdr:xfrm><a:off x="95250" y="190500"/><a:ext cx="952500" cy="476250"/></xdr:xfrm>
      <a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart r:id="rId1"/></a:graphicData></a:graphic>
    </xdr:graphicFrame>
  </xdr:twoCellAnchor>
</xdr:wsDr>`

	got := parseDrawingForCharts([]byte(data))
	want := []chartPosition{{rID: "rId1", name: "Chart 1", left: 10, top: 20, width: 100, height: 50}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(chartPosition{})); diff != "" {
		t.Errorf("parseDrawingForCharts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"/xl/charts/chart1.xml", "xl/charts", "xl/charts/chart1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}
	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.baseDir); got != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q", tt.target, tt.baseDir, got, tt.expected)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing2.xml", "xl/drawings/_rels/drawing2.xml.rels"},
		{"workbook.xml", "_rels/workbook.xml.rels"},
	}
	for _, tt := range tests {
		if got := relsPathFor(tt.part); got != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, got, tt.expected)
		}
	}
}
