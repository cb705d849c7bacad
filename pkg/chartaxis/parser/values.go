package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/axis"
	"github.com/xuri/excelize/v2"
)

// Range holds the cells of a series reference in row-major order.
type Range struct {
	// Sheet is the sheet the reference points to.
	Sheet string
	// Numbers holds each cell's raw numeric value, NaN when not numeric.
	Numbers []float64
	// Texts holds each cell's displayed text.
	Texts []string
}

// ReadRange reads a series reference such as 'Sheet 1'!$B$2:$B$6.
func ReadRange(f *excelize.File, ref string) (Range, error) {
	sheet, cells, err := splitReference(ref)
	if err != nil {
		return Range{}, err
	}

	parts := strings.Split(strings.ReplaceAll(cells, "$", ""), ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	c1, c2 = min(c1, c2), max(c1, c2)
	r1, r2 = min(r1, r2), max(r1, r2)

	rg := Range{Sheet: sheet}
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return Range{}, err
			}
			raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return Range{}, err
			}
			text, err := f.GetCellValue(sheet, cell)
			if err != nil {
				return Range{}, err
			}
			rg.Numbers = append(rg.Numbers, parseValue(raw))
			rg.Texts = append(rg.Texts, text)
		}
	}

	return rg, nil
}

// splitReference splits a reference into its sheet name and cell range.
// Format: 'Sheet Name'!$A$1:$D$10 or SheetName!$A$1:$D$10
func splitReference(ref string) (sheet, cells string, err error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx <= 0 || strings.HasPrefix(ref, "(") {
		return "", "", fmt.Errorf("unsupported reference %q", ref)
	}

	sheet = ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref[idx+1:], nil
}

// parseValue parses a raw cell value as a number, NaN when it is not one.
func parseValue(s string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return math.NaN()
}

// SerialOrdinals converts Excel date serials to axis ordinals. Values that
// are not valid serials become NaN.
func SerialOrdinals(serials []float64, date1904 bool) []float64 {
	ordinals := make([]float64, len(serials))
	for i, v := range serials {
		ordinals[i] = SerialOrdinal(v, date1904)
	}
	return ordinals
}

// SerialOrdinal converts a single Excel date serial to an axis ordinal.
func SerialOrdinal(serial float64, date1904 bool) float64 {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 {
		return math.NaN()
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return math.NaN()
	}
	return axis.ToOrdinal(t)
}

// DecimalsFromNumFmt returns the number of fraction digits a number format
// such as "0.00" or "#,##0.0" shows, or -1 when it cannot tell.
func DecimalsFromNumFmt(code string) int {
	if code == "" || strings.EqualFold(code, "General") {
		return -1
	}
	// Only the positive section matters.
	if i := strings.Index(code, ";"); i >= 0 {
		code = code[:i]
	}
	i := strings.Index(code, ".")
	if i < 0 {
		if strings.ContainsAny(code, "0#") {
			return 0
		}
		return -1
	}
	n := 0
	for _, c := range code[i+1:] {
		if c != '0' && c != '#' {
			break
		}
		n++
	}
	return n
}

// FirstCell returns the sheet and first cell of a reference.
func FirstCell(ref string) (sheet, cell string, ok bool) {
	sheet, cells, err := splitReference(ref)
	if err != nil {
		return "", "", false
	}
	cell, _, _ = strings.Cut(strings.ReplaceAll(cells, "$", ""), ":")
	return sheet, cell, cell != ""
}
