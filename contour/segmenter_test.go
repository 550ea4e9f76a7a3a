package contour

import (
	"testing"
)

func TestPartitionTiling(t *testing.T) {
	cases := []struct {
		name   string
		length int
		count  int
	}{
		{"even split", 100, 10},
		{"remainder absorbed by last span", 103, 10},
		{"single span", 1000, 1},
		{"length shorter than count", 5, 10},
		{"empty waveform", 0, 4},
		{"prime length", 997, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spans := Partition(tc.length, tc.count)

			if len(spans) != tc.count {
				t.Fatalf("expected %d spans, got %d", tc.count, len(spans))
			}
			if spans[0].Start != 0 {
				t.Errorf("first span starts at %d, want 0", spans[0].Start)
			}
			if spans[len(spans)-1].End != tc.length {
				t.Errorf("last span ends at %d, want %d", spans[len(spans)-1].End, tc.length)
			}

			width := tc.length / tc.count
			for i, span := range spans {
				if span.End < span.Start {
					t.Errorf("span %d is inverted: %+v", i, span)
				}
				if i > 0 && span.Start != spans[i-1].End {
					t.Errorf("span %d does not touch its predecessor: %+v after %+v", i, span, spans[i-1])
				}
				if i < len(spans)-1 && span.Len() != width {
					t.Errorf("span %d has width %d, want %d", i, span.Len(), width)
				}
			}
		})
	}
}

func TestPartitionDegenerate(t *testing.T) {
	if spans := Partition(100, 0); spans != nil {
		t.Errorf("zero count should produce no spans, got %v", spans)
	}
	if spans := Partition(100, -1); spans != nil {
		t.Errorf("negative count should produce no spans, got %v", spans)
	}

	// length < count leaves everything to the last span
	spans := Partition(3, 5)
	for i := 0; i < 4; i++ {
		if spans[i].Len() != 0 {
			t.Errorf("span %d should be empty, got %+v", i, spans[i])
		}
	}
	if spans[4].Len() != 3 {
		t.Errorf("last span should absorb the full length, got %+v", spans[4])
	}
}
