package borderscan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/parser"
	"github.com/xuri/excelize/v2"
)

const analysisSheet = "Analysis Output"

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func styleBox(t *testing.T, f *excelize.File, sheet string, r1, c1, r2, c2 int) {
	t.Helper()
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			var borders []excelize.Border
			if r == r1 {
				borders = append(borders, excelize.Border{Type: "top", Color: "000000", Style: 2})
			}
			if r == r2 {
				borders = append(borders, excelize.Border{Type: "bottom", Color: "000000", Style: 2})
			}
			if c == c1 {
				borders = append(borders, excelize.Border{Type: "left", Color: "000000", Style: 2})
			}
			if c == c2 {
				borders = append(borders, excelize.Border{Type: "right", Color: "000000", Style: 2})
			}
			if len(borders) == 0 {
				continue
			}
			styleID, err := f.NewStyle(&excelize.Style{Border: borders})
			require.NoError(t, err)
			cell, err := excelize.CoordinatesToCellName(c, r)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStyle(sheet, cell, cell, styleID))
		}
	}
}

func setRows(t *testing.T, f *excelize.File, sheet string, startRow, startCol int, rows [][]string) {
	t.Helper()
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
}

// writeStatementWorkbook builds a sheet with a box above the default start
// row, a simple table at B46:C49 and a statement at B52:D56.
func writeStatementWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", analysisSheet))

	styleBox(t, f, analysisSheet, 2, 2, 4, 3)
	setRows(t, f, analysisSheet, 2, 2, [][]string{
		{"Ignored", "Header"},
		{"x", "y"},
		{"z", "w"},
	})

	styleBox(t, f, analysisSheet, 46, 2, 49, 3)
	setRows(t, f, analysisSheet, 46, 2, [][]string{
		{"Month", "Savings"},
		{"January", "$250"},
		{"February", "$80"},
		{"March", "$420"},
	})

	styleBox(t, f, analysisSheet, 52, 2, 56, 4)
	setRows(t, f, analysisSheet, 52, 2, [][]string{
		{"", "30-Sep-23", "31-Oct-23"},
		{"Assets", "", ""},
		{"   Cash", "", ""},
		{"      1060 TD Chequing", "587,881.66", "750,736.21"},
		{"Total Assets", "$ 589,470.09", "$ 768,193.72"},
	})

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Empty", "A1", "nothing here"))

	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtract(t *testing.T) {
	path := writeStatementWorkbook(t)

	sheet, err := Extract(path, analysisSheet, quietOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"B46:C49", "B52:D56"}, sheet.TableRanges)
	require.Len(t, sheet.Regions, 2)
	assert.Equal(t, models.TableSimple, sheet.Regions[0].Kind)
	assert.Equal(t, models.TableComplex, sheet.Regions[1].Kind)

	require.Len(t, sheet.SimpleTables, 1)
	records := sheet.SimpleTables[0].Records
	require.Len(t, records, 3)
	assert.Equal(t, map[string]string{"Month": "March", "Savings": "$420"}, records[2].Map())

	require.Len(t, sheet.HierarchicalTables, 1)
	tree := sheet.HierarchicalTables[0].Tree
	assert.Equal(t, []string{"Assets", "Total Assets"}, tree.Labels())

	bank, ok := tree.Lookup("Assets", "Cash", "1060 TD Chequing")
	require.True(t, ok)
	v, _ := bank.Values().Get("31-Oct-23")
	assert.Equal(t, "750,736.21", v)

	total, ok := tree.Child("Total Assets")
	require.True(t, ok)
	v, _ = total.Values().Get("30-Sep-23")
	assert.Equal(t, "$ 589,470.09", v)
}

func TestExtractStartRowOption(t *testing.T) {
	path := writeStatementWorkbook(t)

	opts := quietOptions()
	opts.StartRow = 1
	sheet, err := Extract(path, analysisSheet, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"B2:C4", "B46:C49", "B52:D56"}, sheet.TableRanges)

	opts.MaxRow = 50
	sheet, err = Extract(path, analysisSheet, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"B2:C4", "B46:C49"}, sheet.TableRanges)
}

func TestExtractErrors(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), analysisSheet, quietOptions())
	assert.True(t, errors.Is(err, ErrFileNotFound))

	bad := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0644))
	_, err = Extract(bad, analysisSheet, quietOptions())
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	path := writeStatementWorkbook(t)
	_, err = Extract(path, "Nope", quietOptions())
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestExtractGridStrict(t *testing.T) {
	g := parser.GridFromRows([][]string{
		{"", "Jan"},
		{"Prepaid", "5"},
		{"  License", "3"},
	})
	g.SetBorder(1, 1, parser.Border{Top: parser.BorderMedium, Left: parser.BorderMedium})
	g.SetBorder(1, 2, parser.Border{Top: parser.BorderMedium, Right: parser.BorderMedium})
	g.SetBorder(3, 2, parser.Border{Bottom: parser.BorderMedium, Right: parser.BorderMedium})

	opts := quietOptions()
	opts.StartRow = 1
	sheet, err := ExtractGrid(g, "grid", opts)
	require.NoError(t, err)
	require.Len(t, sheet.HierarchicalTables, 1)

	opts.Strict = true
	_, err = ExtractGrid(g, "grid", opts)
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, StageHierarchy, extractionErr.Component)
	assert.Equal(t, "grid", extractionErr.SheetName)
	assert.Contains(t, err.Error(), `sheet "grid": hierarchy stage failed`)
	assert.True(t, errors.Is(err, parser.ErrNodeConflict))
}

func TestExtractGridNoTables(t *testing.T) {
	sheet, err := ExtractGrid(parser.NewGrid(3, 3), "blank", quietOptions())
	require.NoError(t, err)
	assert.NotNil(t, sheet.TableRanges)
	assert.Empty(t, sheet.TableRanges)
	assert.Empty(t, sheet.SimpleTables)
	assert.Empty(t, sheet.HierarchicalTables)
}

func TestExtractWorkbook(t *testing.T) {
	path := writeStatementWorkbook(t)

	wb, err := ExtractWorkbook(context.Background(), path, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, "statement.xlsx", wb.BookName)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, []string{"B46:C49", "B52:D56"}, wb.Sheets[analysisSheet].TableRanges)
	assert.Empty(t, wb.Sheets["Empty"].TableRanges)

	opts := quietOptions()
	opts.Sheets = []string{"Empty"}
	wb, err = ExtractWorkbook(context.Background(), path, opts)
	require.NoError(t, err)
	assert.Len(t, wb.Sheets, 1)

	opts.Sheets = []string{"Nope"}
	_, err = ExtractWorkbook(context.Background(), path, opts)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestFilterSheet(t *testing.T) {
	path := writeStatementWorkbook(t)
	sheet, err := Extract(path, analysisSheet, quietOptions())
	require.NoError(t, err)

	area, err := parser.ParseRange("A50:Z60")
	require.NoError(t, err)
	filtered := FilterSheet(*sheet, area)
	assert.Equal(t, []string{"B52:D56"}, filtered.TableRanges)
	assert.Empty(t, filtered.SimpleTables)
	assert.Len(t, filtered.HierarchicalTables, 1)
}
