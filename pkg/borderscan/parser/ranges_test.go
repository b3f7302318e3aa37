package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Bounds
	}{
		{"A1:D10", models.Bounds{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$B$46:$F$60", models.Bounds{R1: 46, C1: 2, R2: 60, C2: 6}},
		{"'Analysis Output'!A1:B2", models.Bounds{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"C3", models.Bounds{R1: 3, C1: 3, R2: 3, C2: 3}},
		{"D10:A1", models.Bounds{R1: 1, C1: 1, R2: 10, C2: 4}},
	}

	for _, tt := range tests {
		b, err := ParseRange(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, b, tt.input)
	}

	for _, bad := range []string{"", "A1:B2:C3", "1A:B2", "A1:"} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatRange(t *testing.T) {
	s, err := FormatRange(models.Bounds{R1: 46, C1: 2, R2: 60, C2: 28})
	require.NoError(t, err)
	assert.Equal(t, "B46:AB60", s)

	b, err := ParseRange(s)
	require.NoError(t, err)
	assert.Equal(t, models.Bounds{R1: 46, C1: 2, R2: 60, C2: 28}, b)

	_, err = FormatRange(models.Bounds{})
	assert.Error(t, err)
}
