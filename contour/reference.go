package contour

import (
	"math"
)

// ReferenceScanner builds a fine-grained pitch map over a whole waveform,
// used to patch coarse marks whose smoothed estimate is implausibly low.
// Each probe is the raw median-of-frames primitive result for its span; no
// sub-window fallback is applied, trading per-point robustness for fine time
// resolution.
type ReferenceScanner struct {
	marks      int
	minValidHz float64
	primitive  PitchPrimitive
}

// NewReferenceScanner creates a scanner producing the given number of probes
func NewReferenceScanner(marks int, minValidHz float64, primitive PitchPrimitive) *ReferenceScanner {
	return &ReferenceScanner{
		marks:      marks,
		minValidHz: minValidHz,
		primitive:  primitive,
	}
}

// Scan probes the waveform once and returns the resulting reference map.
// Each point's time is the temporal midpoint of its span.
func (rs *ReferenceScanner) Scan(samples []float64, sampleRate int) *ReferenceMap {
	spans := Partition(len(samples), rs.marks)
	points := make([]ReferencePoint, len(spans))

	for i, span := range spans {
		points[i] = ReferencePoint{
			TimeSec: (float64(span.Start) + float64(span.End)) / 2.0 / float64(sampleRate),
			Pitch:   medianFrames(rs.primitive, samples[span.Start:span.End], sampleRate),
		}
	}

	return &ReferenceMap{points: points, minValidHz: rs.minValidHz}
}

// ReferenceMap is the ordered, read-only output of a reference scan for one
// file.
type ReferenceMap struct {
	points     []ReferencePoint
	minValidHz float64
}

// Points returns the scanned reference points in time order
func (m *ReferenceMap) Points() []ReferencePoint {
	return m.points
}

// NearestValid returns the Hz of the valid point (determined and at or above
// the configured floor) closest in time to targetTime, with ties broken by
// scan order, i.e. the earliest point. When no valid point exists the floor
// value itself is returned.
func (m *ReferenceMap) NearestValid(targetTime float64) float64 {
	bestHz := m.minValidHz
	bestDistance := math.Inf(1)

	for _, p := range m.points {
		if !p.Pitch.Valid || p.Pitch.Hz < m.minValidHz {
			continue
		}
		distance := math.Abs(p.TimeSec - targetTime)
		if distance < bestDistance {
			bestDistance = distance
			bestHz = p.Pitch.Hz
		}
	}

	return bestHz
}
