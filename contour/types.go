// Package contour implements the robust pitch-contour pipeline: a trimmed
// waveform is partitioned into a fixed number of time marks, each mark gets a
// reliable fundamental-frequency estimate via a sub-window fallback, the
// per-mark sequence is smoothed, implausibly low marks are optionally patched
// from a fine-grained reference scan, and mark times are renumbered across a
// configured reset boundary.
package contour

// Span is a half-open range [Start, End) of sample indices within a waveform.
type Span struct {
	Start int
	End   int
}

// Len returns the number of samples the span covers
func (s Span) Len() int {
	return s.End - s.Start
}

// Estimate is an optional segment-level pitch value. The zero value means the
// fundamental frequency could not be determined for the span.
type Estimate struct {
	Hz    float64
	Valid bool
}

// ReferencePoint is one fine-grained pitch probe from a reference scan,
// stamped with the temporal midpoint of its span.
type ReferencePoint struct {
	TimeSec float64
	Pitch   Estimate
}

// MarkResult is the unit of output: one row per coarse time mark. Hz is
// always a concrete, bounded number by the time a MarkResult is emitted.
type MarkResult struct {
	Sounding        string  `json:"sounding"`
	TimeMark        int     `json:"time_mark"`
	RelativeTimeSec float64 `json:"relative_time_sec"`
	Hz              float64 `json:"hz"`
}

// PitchPrimitive produces a frame-wise fundamental-frequency track for a span
// of samples. A NaN entry marks a frame whose pitch could not be determined;
// an error is recovered by the caller as an all-undetermined track and never
// aborts processing.
type PitchPrimitive interface {
	Frames(samples []float64, sampleRate int) ([]float64, error)
}
