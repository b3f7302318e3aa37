package borderscan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Extract extracts the tables of a single sheet of an Excel file.
func Extract(path, sheetName string, opts Options) (*models.SheetData, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := loadSheet(f, sheetName, opts)
	if err != nil {
		return nil, err
	}
	return ExtractGrid(g, sheetName, opts)
}

// ExtractWorkbook extracts the tables of every sheet, or of opts.Sheets when
// set. Sheets are read one after another and then processed concurrently.
func ExtractWorkbook(ctx context.Context, path string, opts Options) (*models.WorkbookData, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := opts.Sheets
	if len(names) == 0 {
		names = f.GetSheetList()
	}

	grids := make([]*parser.Grid, len(names))
	for i, name := range names {
		if grids[i], err = loadSheet(f, name, opts); err != nil {
			return nil, err
		}
	}

	results := make([]*models.SheetData, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := ExtractGrid(grids[i], name, opts)
			if err != nil {
				return err
			}
			results[i] = sheet
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sheets := make(map[string]models.SheetData, len(names))
	for i, name := range names {
		sheets[name] = *results[i]
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

// ExtractGrid detects the tables of a loaded grid, flattens the simple ones
// and rebuilds the complex ones.
func ExtractGrid(g *parser.Grid, sheetName string, opts Options) (*models.SheetData, error) {
	opts.Logger = opts.ShouldLog().With(slog.String("sheet", sheetName))

	det, err := parser.DetectRegions(g, opts.TableParams())
	if err != nil {
		return nil, NewExtractionError(sheetName, StageRegions, err)
	}

	sheet := &models.SheetData{
		TableRanges: append([]string{}, det.Ranges...),
		Regions:     det.Regions,
	}

	for _, t := range det.Simple {
		sheet.SimpleTables = append(sheet.SimpleTables, models.SimpleTable{
			Range:   t.Region.Range,
			Records: parser.FlattenSimple(t.Grid),
		})
	}

	for _, t := range det.Complex {
		tree, err := parser.BuildHierarchy(t.Grid, opts.HierarchyParams())
		if err != nil {
			return nil, NewExtractionError(sheetName, StageHierarchy, fmt.Errorf("%s: %w", t.Region.Range, err))
		}
		sheet.HierarchicalTables = append(sheet.HierarchicalTables, models.HierarchicalTable{
			Range: t.Region.Range,
			Tree:  tree,
		})
	}

	opts.Logger.Info("sheet extracted",
		slog.Int("regions", len(det.Regions)),
		slog.Int("simple", len(det.Simple)),
		slog.Int("complex", len(det.Complex)))

	return sheet, nil
}

// FilterSheet keeps the tables whose region intersects area.
func FilterSheet(sheet models.SheetData, area models.Bounds) models.SheetData {
	kept := make(map[string]bool)
	out := models.SheetData{TableRanges: []string{}}
	for _, r := range sheet.Regions {
		if r.Intersects(area) {
			kept[r.Range] = true
			out.Regions = append(out.Regions, r)
			out.TableRanges = append(out.TableRanges, r.Range)
		}
	}
	for _, t := range sheet.SimpleTables {
		if kept[t.Range] {
			out.SimpleTables = append(out.SimpleTables, t)
		}
	}
	for _, t := range sheet.HierarchicalTables {
		if kept[t.Range] {
			out.HierarchicalTables = append(out.HierarchicalTables, t)
		}
	}
	return out
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}

func loadSheet(f *excelize.File, sheetName string, opts Options) (*parser.Grid, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	params := opts.TableParams()
	g, err := parser.LoadGrid(f, sheetName, params.MaxRow, params.MaxCol)
	if err != nil {
		return nil, NewExtractionError(sheetName, StageGrid, err)
	}
	return g, nil
}
