package common

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	cases := []struct {
		name string
		data []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 42},
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"duplicates", []float64{5, 5, 1, 5}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Median(tc.data); got != tc.want {
				t.Errorf("Median(%v) = %g, want %g", tc.data, got, tc.want)
			}
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	data := []float64{3, 1, 2}
	Median(data)
	if data[0] != 3 || data[1] != 1 || data[2] != 2 {
		t.Errorf("input mutated: %v", data)
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   float64
	}{
		{2.344, 2, 2.34},
		{2.346, 2, 2.35},
		{-2.346, 2, -2.35},
		{117.5, 2, 117.5},
		{1.2346, 3, 1.235},
		{0.5, 0, 1},
		{-0.5, 0, -1},
	}

	for _, tc := range cases {
		if got := RoundTo(tc.value, tc.places); got != tc.want {
			t.Errorf("RoundTo(%g, %d) = %g, want %g", tc.value, tc.places, got, tc.want)
		}
	}
}

func TestMeanMaxRMS(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %g, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean of empty = %g, want 0", got)
	}
	if got := Max([]float64{-3, 7, 2}); got != 7 {
		t.Errorf("Max = %g, want 7", got)
	}
	if got := RMS([]float64{3, 4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("RMS = %g, want %g", got, math.Sqrt(12.5))
	}
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS of empty = %g, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %g, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp below = %g, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp above = %g, want 10", got)
	}
}
