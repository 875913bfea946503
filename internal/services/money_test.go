package services

import (
	"testing"

	"dia/internal/testutil"
)

func TestRoundUpAmount(t *testing.T) {
	tests := []struct {
		name          string
		amount        float64
		wantRoundUp   float64
		wantRoundedTo float64
	}{
		{"fractional", 4.35, 0.65, 5},
		{"just_below_whole", 9.99, 0.01, 10},
		{"just_above_whole", 7.01, 0.99, 8},
		{"whole_number", 12, 1.0, 12},
		{"small_fraction", 0.10, 0.90, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundUp, roundedTo := roundUpAmount(tt.amount)
			testutil.AssertMoneyEqual(t, tt.wantRoundUp, roundUp, "round-up")
			testutil.AssertMoneyEqual(t, tt.wantRoundedTo, roundedTo, "rounded to")
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.6500000000000004, 0.65},
		{0.017925, 0.02},
		{100, 100},
		{1.005, 1.01},
		{-2.675, -2.68},
	}

	for _, tt := range tests {
		testutil.AssertMoneyEqual(t, tt.want, round2(tt.in), "round2")
	}
}
