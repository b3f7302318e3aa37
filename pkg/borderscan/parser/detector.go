package parser

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"github.com/xuri/excelize/v2"
)

// FillMatcher reports whether next continues the fill of prev.
type FillMatcher func(prev, next Cell) bool

// SameFill is the default FillMatcher: both cells are filled with the same token.
func SameFill(prev, next Cell) bool {
	return prev.Fill != "" && prev.Fill == next.Fill
}

// TableDetectionParams holds parameters for table detection.
// Zero values select the defaults of DefaultTableParams.
type TableDetectionParams struct {
	// StartRow is the first row scanned for corners.
	StartRow int
	// MaxRow bounds the scan and the downward search for closing corners.
	MaxRow int
	// MaxCol bounds the rightward search; 0 uses the grid width.
	MaxCol int
	// Strict reports unclosed regions as errors instead of clamping them.
	Strict bool
	// SameFill decides header banding.
	SameFill FillMatcher
	// Logger receives recoveries and detected regions.
	Logger *slog.Logger
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		StartRow: 45,
		MaxRow:   100,
		SameFill: SameFill,
	}
}

func (p TableDetectionParams) withDefaults() TableDetectionParams {
	def := DefaultTableParams()
	if p.StartRow <= 0 {
		p.StartRow = def.StartRow
	}
	if p.MaxRow <= 0 {
		p.MaxRow = def.MaxRow
	}
	if p.SameFill == nil {
		p.SameFill = def.SameFill
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return p
}

// DetectedTable is a region together with its extracted values.
type DetectedTable struct {
	Region models.Region
	// Grid is re-indexed so that (1,1) is the region's top-left cell.
	Grid *Grid
}

// Detection is the result of one scan, every list in scan order.
type Detection struct {
	Ranges  []string
	Regions []models.Region
	Simple  []DetectedTable
	Complex []DetectedTable
}

// visitMask marks cells already claimed by a region. It belongs to a single
// DetectRegions call.
type visitMask struct {
	rows, cols int
	seen       []bool
}

func newVisitMask(rows, cols int) *visitMask {
	return &visitMask{rows: rows, cols: cols, seen: make([]bool, max(rows, 0)*max(cols, 0))}
}

func (m *visitMask) visited(row, col int) bool {
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		return false
	}
	return m.seen[(row-1)*m.cols+col-1]
}

func (m *visitMask) spanVisited(row, c1, c2 int) bool {
	for c := c1; c <= c2; c++ {
		if m.visited(row, c) {
			return true
		}
	}
	return false
}

func (m *visitMask) mark(b models.Bounds) {
	for r := max(b.R1, 1); r <= min(b.R2, m.rows); r++ {
		for c := max(b.C1, 1); c <= min(b.C2, m.cols); c++ {
			m.seen[(r-1)*m.cols+c-1] = true
		}
	}
}

// DetectRegions scans g for rectangles boxed by medium borders. Rows are
// scanned top to bottom from params.StartRow, columns left to right. A region
// starts at an unvisited upper-left corner, ends at the first top-right corner
// to its right and then at the first bottom-right corner below that. A region
// whose corner cell is empty is complex, otherwise simple.
func DetectRegions(g *Grid, params TableDetectionParams) (*Detection, error) {
	params = params.withDefaults()

	rowLimit := min(params.MaxRow, g.Rows())
	colLimit := g.Cols()
	if params.MaxCol > 0 {
		colLimit = params.MaxCol
	}
	colLimit = min(colLimit, excelize.MaxColumns)

	mask := newVisitMask(rowLimit, colLimit)
	det := &Detection{}

	for row := params.StartRow; row <= rowLimit; row++ {
		for col := 1; col <= colLimit; col++ {
			if mask.visited(row, col) {
				continue
			}
			corner := g.Cell(row, col)
			if !HasUpperLeftCorner(corner) {
				continue
			}

			kind := models.TableSimple
			if corner.IsEmpty() {
				kind = models.TableComplex
			}

			bounds, err := closeRegion(g, mask, row, col, rowLimit, colLimit, params)
			if err != nil {
				return nil, err
			}
			rangeStr, err := FormatRange(bounds)
			if err != nil {
				return nil, err
			}

			region := models.Region{
				Bounds:     bounds,
				Range:      rangeStr,
				Kind:       kind,
				HeaderRows: headerRows(g, bounds, params.SameFill),
			}
			mask.mark(bounds)

			table := DetectedTable{
				Region: region,
				Grid:   g.SubGrid(bounds.R1, bounds.C1, bounds.R2, bounds.C2),
			}
			det.Ranges = append(det.Ranges, rangeStr)
			det.Regions = append(det.Regions, region)
			if kind == models.TableComplex {
				det.Complex = append(det.Complex, table)
			} else {
				det.Simple = append(det.Simple, table)
			}

			params.Logger.Debug("table region detected",
				slog.String("range", rangeStr),
				slog.String("kind", string(kind)))
		}
	}

	return det, nil
}

// closeRegion finds the end column and end row of the region whose
// upper-left corner is (row, col). Missing corners clamp to the limits, and
// the region never extends into cells claimed by an earlier region.
func closeRegion(g *Grid, mask *visitMask, row, col, rowLimit, colLimit int, params TableDetectionParams) (models.Bounds, error) {
	b := models.Bounds{R1: row, C1: col, R2: row, C2: col}

	endCol, ok := findEndCol(g, mask, row, col, colLimit)
	if !ok {
		if err := malformed(params, b, "top-right", endCol); err != nil {
			return b, err
		}
	}
	b.C2 = endCol

	endRow, ok := findEndRow(g, mask, row, col, endCol, rowLimit)
	if !ok {
		if err := malformed(params, b, "bottom-right", endRow); err != nil {
			return b, err
		}
	}
	b.R2 = endRow

	return b, nil
}

// findEndCol walks right along row to the first top-right corner. Without
// one it stops before the first claimed cell or at colLimit.
func findEndCol(g *Grid, mask *visitMask, row, startCol, colLimit int) (int, bool) {
	for c := startCol; c <= colLimit; c++ {
		if c > startCol && mask.visited(row, c) {
			return c - 1, false
		}
		if HasTopRightCorner(g.Cell(row, c)) {
			return c, true
		}
	}
	return colLimit, false
}

// findEndRow walks down endCol to the first bottom-right corner. Without one
// it stops before the first row whose span [startCol, endCol] touches a
// claimed cell, or at rowLimit.
func findEndRow(g *Grid, mask *visitMask, startRow, startCol, endCol, rowLimit int) (int, bool) {
	for r := startRow; r <= rowLimit; r++ {
		if r > startRow && mask.spanVisited(r, startCol, endCol) {
			return r - 1, false
		}
		if HasBottomRightCorner(g.Cell(r, endCol)) {
			return r, true
		}
	}
	return rowLimit, false
}

func malformed(params TableDetectionParams, b models.Bounds, edge string, limit int) error {
	start, _ := excelize.CoordinatesToCellName(b.C1, b.R1)
	if params.Strict {
		return fmt.Errorf("%w: no %s corner for region at %s", ErrMalformedRegion, edge, start)
	}
	params.Logger.Warn("closing corner not found, clamping region",
		slog.String("start", start),
		slog.String("edge", edge),
		slog.Int("clamp", limit))
	return nil
}

// headerRows counts the leading rows of b whose first cell continues the
// fill of the row above.
func headerRows(g *Grid, b models.Bounds, same FillMatcher) int {
	n := 1
	for r := b.R1 + 1; r <= b.R2; r++ {
		if !same(g.Cell(r-1, b.C1), g.Cell(r, b.C1)) {
			break
		}
		n++
	}
	return n
}
