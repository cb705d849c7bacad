package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// skipElement consumes tokens up to the end of the current element.
func skipElement(decoder *xml.Decoder) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// floatAttr parses the val attribute of se.
func floatAttr(se xml.StartElement) *float64 {
	v, err := strconv.ParseFloat(attr(se, "val"), 64)
	if err != nil {
		return nil
	}
	return &v
}

// boolAttr reports whether the val attribute of se is set. OOXML treats a
// missing val as true.
func boolAttr(se xml.StartElement) bool {
	switch attr(se, "val") {
	case "", "1", "true":
		return true
	}
	return false
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		// Package-absolute targets already carry the xl/ prefix.
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part that belongs to partPath,
// e.g. xl/worksheets/_rels/sheet1.xml.rels for xl/worksheets/sheet1.xml.
func relsPathFor(partPath string) string {
	dir, file := "", partPath
	if i := strings.LastIndex(partPath, "/"); i >= 0 {
		dir, file = partPath[:i+1], partPath[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attr(se, "Id"), attr(se, "Target")
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

// findRelationships returns rId -> target for relationships whose type
// contains kind (e.g. "drawing" or "chart").
func findRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.Contains(strings.ToLower(attr(se, "Type")), kind) {
				result[attr(se, "Id")] = attr(se, "Target")
			}
		}
	}

	return result
}

// parseXfrm parses an xfrm element for position and size.
func parseXfrm(decoder *xml.Decoder) (left, top, width, height int) {
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
			case "off":
				if x, err := strconv.ParseInt(attr(t, "x"), 10, 64); err == nil {
					left = EMUToPixels(x)
				}
				if y, err := strconv.ParseInt(attr(t, "y"), 10, 64); err == nil {
					top = EMUToPixels(y)
				}
			case "ext":
				if cx, err := strconv.ParseInt(attr(t, "cx"), 10, 64); err == nil {
					width = EMUToPixels(cx)
				}
				if cy, err := strconv.ParseInt(attr(t, "cy"), 10, 64); err == nil {
					height = EMUToPixels(cy)
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}
