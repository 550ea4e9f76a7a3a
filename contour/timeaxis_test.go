package contour

import (
	"testing"
)

func TestTimingsWithoutReset(t *testing.T) {
	spans := Partition(20000, 20)
	timings := NewTimeAxis(1000, 0).Timings(spans)

	if len(timings) != 20 {
		t.Fatalf("expected 20 timings, got %d", len(timings))
	}
	for i, tm := range timings {
		if tm.Index != i+1 {
			t.Errorf("mark %d: index %d, want %d", i, tm.Index, i+1)
		}
		want := float64(i) + 0.5
		if !almostEqual(tm.RelativeSec, want) {
			t.Errorf("mark %d: relative time %g, want %g", i, tm.RelativeSec, want)
		}
		if !almostEqual(tm.MidpointSec, want) {
			t.Errorf("mark %d: midpoint %g, want %g", i, tm.MidpointSec, want)
		}
	}
}

func TestTimingsWithReset(t *testing.T) {
	spans := Partition(20000, 20)
	timings := NewTimeAxis(1000, 10).Timings(spans)

	// First half: dense numbering on the absolute axis.
	for i := 0; i < 10; i++ {
		if timings[i].Index != i+1 {
			t.Errorf("mark %d: index %d, want %d", i, timings[i].Index, i+1)
		}
		if !almostEqual(timings[i].RelativeSec, float64(i)+0.5) {
			t.Errorf("mark %d: relative time %g, want %g", i, timings[i].RelativeSec, float64(i)+0.5)
		}
	}

	// Second half: numbering restarts at 1 and times re-base to the end of
	// the 10th mark's segment (10.0 s).
	for i := 10; i < 20; i++ {
		if timings[i].Index != i-9 {
			t.Errorf("mark %d: index %d, want %d", i, timings[i].Index, i-9)
		}
		want := float64(i) + 0.5 - 10.0
		if !almostEqual(timings[i].RelativeSec, want) {
			t.Errorf("mark %d: relative time %g, want %g", i, timings[i].RelativeSec, want)
		}
		// Midpoints stay absolute for reference-map lookups.
		if !almostEqual(timings[i].MidpointSec, float64(i)+0.5) {
			t.Errorf("mark %d: midpoint %g, want %g", i, timings[i].MidpointSec, float64(i)+0.5)
		}
	}
}

func TestTimingsMonotonePerHalf(t *testing.T) {
	spans := Partition(31337, 20)
	timings := NewTimeAxis(8000, 10).Timings(spans)

	for i := 1; i < len(timings); i++ {
		if i == 10 {
			continue
		}
		if timings[i].RelativeSec <= timings[i-1].RelativeSec {
			t.Errorf("relative time not increasing at mark %d: %g after %g",
				i, timings[i].RelativeSec, timings[i-1].RelativeSec)
		}
	}
	if timings[10].RelativeSec >= timings[9].RelativeSec {
		t.Errorf("reset boundary should drop the relative time: %g after %g",
			timings[10].RelativeSec, timings[9].RelativeSec)
	}
}
