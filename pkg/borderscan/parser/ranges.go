package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"github.com/xuri/excelize/v2"
)

// FormatRange renders bounds in A1 notation, e.g. "B46:F60".
func FormatRange(b models.Bounds) (string, error) {
	start, err := excelize.CoordinatesToCellName(b.C1, b.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(b.C2, b.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// ParseRange parses a range such as $A$1:$D$10, A1:D10 or a single cell A1.
// A leading sheet qualifier ('Sheet 1'!A1:D10) is ignored.
func ParseRange(rangeStr string) (models.Bounds, error) {
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return models.Bounds{}, fmt.Errorf("invalid range %q", rangeStr)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Bounds{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Bounds{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Bounds{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
