package contour

// MarkTiming carries the time-axis output for one coarse mark: its 1-based
// index, the relative time reported downstream, and the absolute segment
// midpoint used for reference-map lookups.
type MarkTiming struct {
	Index       int
	RelativeSec float64
	MidpointSec float64
}

// TimeAxis converts sample-index spans into per-mark times and indices.
// When a reset boundary is configured it models two independently-timed
// takes concatenated in one recording: marks before the boundary keep their
// absolute midpoint time and dense 1-based numbering, and from the boundary
// mark onward the time axis re-bases to the end of the previous mark's
// segment and numbering restarts at 1.
type TimeAxis struct {
	sampleRate int
	resetMark  int
}

// NewTimeAxis creates a time axis for the given sample rate. resetMark is
// the 0-based mark index at which the axis restarts; zero or negative
// disables the reset.
func NewTimeAxis(sampleRate, resetMark int) *TimeAxis {
	return &TimeAxis{
		sampleRate: sampleRate,
		resetMark:  resetMark,
	}
}

// Timings computes the per-mark timing for an ordered span sequence. Spans
// must be in time order; the reset anchor depends on the previous span's end
// time.
func (ta *TimeAxis) Timings(spans []Span) []MarkTiming {
	timings := make([]MarkTiming, len(spans))

	resetAnchor := 0.0
	prevEnd := 0.0

	for i, span := range spans {
		startSec := float64(span.Start) / float64(ta.sampleRate)
		endSec := float64(span.End) / float64(ta.sampleRate)
		midpoint := (startSec + endSec) / 2.0

		if ta.resetMark > 0 && i == ta.resetMark {
			resetAnchor = prevEnd
		}

		if ta.resetMark > 0 && i >= ta.resetMark {
			timings[i] = MarkTiming{
				Index:       i - ta.resetMark + 1,
				RelativeSec: midpoint - resetAnchor,
				MidpointSec: midpoint,
			}
		} else {
			timings[i] = MarkTiming{
				Index:       i + 1,
				RelativeSec: midpoint,
				MidpointSec: midpoint,
			}
		}

		prevEnd = endSec
	}

	return timings
}
