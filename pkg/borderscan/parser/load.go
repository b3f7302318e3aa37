package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// borderStyleNames maps excelize border style indexes to OOXML style names.
var borderStyleNames = []string{
	"",
	"thin",
	"medium",
	"dashed",
	"dotted",
	"thick",
	"double",
	"hair",
	"mediumDashed",
	"dashDot",
	"mediumDashDot",
	"dashDotDot",
	"mediumDashDotDot",
	"slantDashDot",
}

// BorderStyleName returns the OOXML name of an excelize border style index.
func BorderStyleName(style int) string {
	if style < 0 || style >= len(borderStyleNames) {
		return ""
	}
	return borderStyleNames[style]
}

type cellFormat struct {
	border Border
	fill   string
}

// LoadGrid reads values, borders and fills of a sheet into a Grid.
// Only the first maxRow rows and maxCol columns are read when positive.
func LoadGrid(f *excelize.File, sheetName string, maxRow, maxCol int) (*Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	nRows, nCols := len(rows), 0
	for _, row := range rows {
		if len(row) > nCols {
			nCols = len(row)
		}
	}
	// The dimension also covers cells that carry formatting but no value.
	if dim, err := f.GetSheetDimension(sheetName); err == nil && dim != "" {
		if b, err := ParseRange(dim); err == nil {
			nRows = max(nRows, b.R2)
			nCols = max(nCols, b.C2)
		}
	}
	if maxRow > 0 && nRows > maxRow {
		nRows = maxRow
	}
	if maxCol > 0 && nCols > maxCol {
		nCols = maxCol
	}

	g := NewGrid(nRows, nCols)
	formats := make(map[int]cellFormat)

	for r := 1; r <= nRows; r++ {
		if r <= len(rows) {
			for c, v := range rows[r-1][:min(len(rows[r-1]), nCols)] {
				g.SetValue(r, c+1, v)
			}
		}
		for c := 1; c <= nCols; c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			styleID, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			format, ok := formats[styleID]
			if !ok {
				format, err = readFormat(f, styleID)
				if err != nil {
					return nil, err
				}
				formats[styleID] = format
			}
			g.SetBorder(r, c, format.border)
			g.SetFill(r, c, format.fill)
		}
	}

	return g, nil
}

// readFormat resolves a style index into the border and fill of a cell.
func readFormat(f *excelize.File, styleID int) (cellFormat, error) {
	style, err := f.GetStyle(styleID)
	if err != nil {
		return cellFormat{}, err
	}
	var format cellFormat
	if style == nil {
		return format, nil
	}
	for _, b := range style.Border {
		name := BorderStyleName(b.Style)
		switch b.Type {
		case "top":
			format.border.Top = name
		case "bottom":
			format.border.Bottom = name
		case "left":
			format.border.Left = name
		case "right":
			format.border.Right = name
		}
	}
	format.fill = fillToken(style.Fill)
	return format, nil
}

// fillToken reduces a fill to a comparable token: the upper-cased colors of a
// pattern or gradient fill, empty when the cell is unfilled.
func fillToken(fill excelize.Fill) string {
	if fill.Type == "" || len(fill.Color) == 0 {
		return ""
	}
	if fill.Type == "pattern" && fill.Pattern == 0 {
		return ""
	}
	colors := make([]string, 0, len(fill.Color))
	for _, c := range fill.Color {
		colors = append(colors, strings.ToUpper(strings.TrimPrefix(c, "#")))
	}
	return fill.Type + ":" + strings.Join(colors, ",")
}
