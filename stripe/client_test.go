package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected int64
	}{
		{name: "Whole", price: 10, expected: 1000},
		{name: "Cents", price: 10.99, expected: 1099},
		// Sub-cent fractions truncate, they do not round.
		{name: "Truncates", price: 10.999, expected: 1099},
		{name: "Zero", price: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinorUnits(tt.price))
		})
	}
}
