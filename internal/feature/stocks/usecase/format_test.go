package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/stocks/usecase"
)

func TestFormatLargeNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected string
	}{
		{2940000000000, "2.94T"},
		{1e12, "1.00T"},
		{565000000000, "565.00B"},
		{1e9, "1.00B"},
		{59328000, "59.33M"},
		{1e6, "1.00M"},
		{999999, "999,999"},
		{1234.5678, "1,234.568"},
		{0, "0"},
		{-2500000, "-2,500,000"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, usecase.FormatLargeNumber(tt.in), "input %v", tt.in)
	}
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+0.66%", usecase.FormatPercentage(0.66))
	assert.Equal(t, "+0.00%", usecase.FormatPercentage(0))
	assert.Equal(t, "-0.51%", usecase.FormatPercentage(-0.51))
	assert.Equal(t, "+12.35%", usecase.FormatPercentage(12.345678))
}
