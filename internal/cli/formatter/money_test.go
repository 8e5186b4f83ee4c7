package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-980.25, "-$980.25"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMoney(tc.in), "input %v", tc.in)
	}
}

func TestVarianceStyle(t *testing.T) {
	assert.Equal(t, StyleGreen, VarianceStyle(100))
	assert.Equal(t, StyleRed, VarianceStyle(-1))
	assert.Equal(t, StyleDim, VarianceStyle(0))
}
