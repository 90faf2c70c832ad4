package otp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelayBinIndex(t *testing.T) {
	tests := []struct {
		name  string
		delay float64
		want  int
	}{
		{"early departure", -25, 0},
		{"exactly zero is early/on time", 0, 0},
		{"just over zero", 0.5, 1},
		{"exactly 15 stays in 0-15", 15, 1},
		{"just over 15", 15.01, 2},
		{"exactly 30 stays in 15-30", 30, 2},
		{"exactly 60 stays in 30-60", 60, 3},
		{"exactly 120 stays in 1-2 hrs", 120, 4},
		{"over 120", 121, 5},
		{"huge delay", 1440, 5},
		{"negative infinity end", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DelayBinIndex(tt.delay))
		})
	}
}

func TestDelayBinLabelsOrder(t *testing.T) {
	want := [NumDelayBins]string{
		"Early/On time", "0–15 min", "15–30 min", "30–60 min", "1–2 hrs", "2+ hrs",
	}
	assert.Equal(t, want, DelayBinLabels)
}
