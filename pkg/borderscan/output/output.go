// Package output serializes extraction results.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"gopkg.in/yaml.v2"
)

// Format selects the serialization of Marshal.
type Format string

const (
	// FormatJSON writes JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be json or yaml)", s)
}

// ToJSON serializes workbook data to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshalJSON(wb, pretty)
}

// SheetToJSON serializes a single sheet to JSON.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ToYAML serializes any extraction result to YAML, keeping table order.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// Marshal serializes v in the given format. pretty only affects JSON.
func Marshal(v interface{}, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatYAML:
		return ToYAML(v)
	case FormatJSON, "":
		return marshalJSON(v, pretty)
	}
	return nil, fmt.Errorf("invalid format: %s", format)
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
