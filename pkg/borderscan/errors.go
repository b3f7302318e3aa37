package borderscan

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook path does not exist.
var ErrFileNotFound = errors.New("workbook not found")

// ErrInvalidFormat indicates the workbook cannot be opened as xlsx.
var ErrInvalidFormat = errors.New("workbook is not a readable xlsx file")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Stages of a sheet extraction reported by ExtractionError.
const (
	// StageGrid reads cell values, borders and fills.
	StageGrid = "grid"
	// StageRegions scans the grid for bordered regions.
	StageRegions = "regions"
	// StageHierarchy rebuilds the label tree of a complex region.
	StageHierarchy = "hierarchy"
)

// ExtractionError reports the sheet and stage at which extraction stopped.
type ExtractionError struct {
	SheetName string
	Component string // one of the Stage constants
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("sheet %q: %s stage failed: %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError wraps err with the sheet and stage it occurred in.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
