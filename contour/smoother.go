package contour

import (
	"github.com/voicelab/pitchmark/algorithms/common"
)

// Smooth applies 3-point neighbor averaging across an ordered Hz sequence
// and returns a new sequence of identical length. The first element averages
// with its single successor, the last with its single predecessor, interior
// elements with both neighbors. Every output value is rounded to 2 decimal
// digits. A single-element sequence is returned unchanged apart from
// rounding.
func Smooth(hz []float64) []float64 {
	smoothed := make([]float64, len(hz))

	for i := range hz {
		var window []float64
		switch {
		case len(hz) == 1:
			window = hz
		case i == 0:
			window = hz[:2]
		case i == len(hz)-1:
			window = hz[len(hz)-2:]
		default:
			window = hz[i-1 : i+2]
		}
		smoothed[i] = common.RoundTo(common.Mean(window), 2)
	}

	return smoothed
}
