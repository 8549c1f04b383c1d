package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStops(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"Nonstop", 0},
		{"nonstop", 0},
		{"NONSTOP", 0},
		{"Non-stop", 0},
		{"0", 0},
		{"1 Stop", 1},
		{"2 stops", 2},
		{"3", 3},
		{"via ATL (1 stop)", 1},
		{"TBD", 1},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStops(tt.input))
		})
	}
}

func TestParseStops_ReportsDefault(t *testing.T) {
	n, err := parseStops("TBD")
	assert.Equal(t, DefaultStops, n)
	assert.ErrorIs(t, err, errUnrecognizedStops)

	n, err = parseStops("Nonstop")
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}
