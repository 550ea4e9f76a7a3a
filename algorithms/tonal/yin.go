package tonal

import (
	"math"

	"github.com/voicelab/pitchmark/algorithms/spectral"
)

// TrackerParams contains parameters for frame-wise pitch tracking
type TrackerParams struct {
	// Frequency range constraints
	MinFreq float64 `json:"min_freq"` // Minimum frequency (Hz)
	MaxFreq float64 `json:"max_freq"` // Maximum frequency (Hz)

	FrameLength int `json:"frame_length"`
	HopLength   int `json:"hop_length"`

	// Threshold is the YIN trough threshold on the cumulative mean
	// normalized difference (0.1-0.5)
	Threshold float64 `json:"threshold"`

	// VoicedCeiling is the largest normalized difference at which the
	// fallback global minimum still counts as voiced; frames above it are
	// reported as undetermined
	VoicedCeiling float64 `json:"voiced_ceiling"`
}

// DefaultTrackerParams returns parameters tuned for adult speech
func DefaultTrackerParams() TrackerParams {
	return TrackerParams{
		MinFreq:       50.0,
		MaxFreq:       500.0,
		FrameLength:   2048,
		HopLength:     512,
		Threshold:     0.15,
		VoicedCeiling: 0.5,
	}
}

// Tracker estimates a frame-wise fundamental frequency track using the YIN
// algorithm with an FFT-accelerated difference function.
//
// References:
// - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency estimator for speech and music"
type Tracker struct {
	params TrackerParams
	fft    *spectral.FFT
}

// NewTracker creates a pitch tracker with default parameters
func NewTracker() *Tracker {
	return NewTrackerWithParams(DefaultTrackerParams())
}

// NewTrackerWithParams creates a pitch tracker with custom parameters
func NewTrackerWithParams(params TrackerParams) *Tracker {
	return &Tracker{
		params: params,
		fft:    spectral.NewFFT(),
	}
}

// Params returns the current tracker parameters
func (t *Tracker) Params() TrackerParams {
	return t.params
}

// Frames returns one fundamental-frequency estimate per analysis frame.
// Undetermined frames (unvoiced, aperiodic, or out of the search band) are
// reported as NaN. Spans shorter than one frame are analyzed as a single
// truncated frame when they still cover the longest candidate period;
// otherwise no frames are produced.
func (t *Tracker) Frames(samples []float64, sampleRate int) ([]float64, error) {
	if len(samples) == 0 || sampleRate <= 0 {
		return nil, nil
	}

	frameLength := t.params.FrameLength
	if frameLength > len(samples) {
		frameLength = len(samples)
	}

	tauMin := int(float64(sampleRate) / t.params.MaxFreq)
	if tauMin < 1 {
		tauMin = 1
	}
	tauMax := int(math.Ceil(float64(sampleRate) / t.params.MinFreq))

	// The difference function compares a half-frame window against lagged
	// copies of itself, so every candidate period must fit in half a frame.
	window := frameLength / 2
	if tauMax >= window || tauMin >= tauMax {
		return nil, nil
	}

	var track []float64
	for start := 0; start+frameLength <= len(samples); start += t.params.HopLength {
		frame := samples[start : start+frameLength]
		track = append(track, t.framePitch(frame, sampleRate, tauMin, tauMax))
	}

	return track, nil
}

// framePitch estimates the fundamental frequency of a single frame, NaN when
// undetermined
func (t *Tracker) framePitch(frame []float64, sampleRate, tauMin, tauMax int) float64 {
	diff := t.differenceFunction(frame, tauMax)

	// Cumulative mean normalized difference function
	cmndf := make([]float64, len(diff))
	cmndf[0] = 1.0

	runningSum := 0.0
	for tau := 1; tau < len(diff); tau++ {
		runningSum += diff[tau]
		if runningSum <= 0 {
			cmndf[tau] = 1.0
		} else {
			cmndf[tau] = diff[tau] * float64(tau) / runningSum
		}
	}

	// Find the first trough below threshold within the search band
	bestTau := -1
	for tau := tauMin; tau <= tauMax; tau++ {
		if cmndf[tau] < t.params.Threshold {
			for tau+1 <= tauMax && cmndf[tau+1] < cmndf[tau] {
				tau++
			}
			bestTau = tau
			break
		}
	}

	// Fall back to the global minimum, subject to the voicing ceiling
	if bestTau < 0 {
		minVal := math.Inf(1)
		for tau := tauMin; tau <= tauMax; tau++ {
			if cmndf[tau] < minVal {
				minVal = cmndf[tau]
				bestTau = tau
			}
		}
		if bestTau < 0 || minVal > t.params.VoicedCeiling {
			return math.NaN()
		}
	}

	period := parabolicInterpolation(cmndf, bestTau)
	if period <= 0 || math.IsNaN(period) {
		return math.NaN()
	}

	frequency := float64(sampleRate) / period
	if frequency < t.params.MinFreq || frequency > t.params.MaxFreq {
		return math.NaN()
	}

	return frequency
}

// differenceFunction computes the YIN difference d(tau) for tau in
// [0, tauMax] over a window of half the frame:
//
//	d(tau) = e(0) + e(tau) - 2*r(tau)
//
// where e(a) is the window energy starting at a and r(tau) the windowed
// autocorrelation, computed as a linear cross-correlation via FFT.
func (t *Tracker) differenceFunction(frame []float64, tauMax int) []float64 {
	n := len(frame)
	window := n / 2
	size := n + window

	a := t.fft.Compute(frame, size)

	// Correlating against the reversed window prefix turns the convolution
	// the FFT computes into the lagged products YIN needs.
	reversed := make([]float64, window)
	for j := 0; j < window; j++ {
		reversed[window-1-j] = frame[j]
	}
	b := t.fft.Compute(reversed, size)

	product := make([]complex128, len(a))
	for i := range a {
		product[i] = a[i] * b[i]
	}
	correlation := t.fft.ComputeInverseReal(product)

	// Prefix sums of squared samples for the energy terms
	cumEnergy := make([]float64, n+1)
	for i, v := range frame {
		cumEnergy[i+1] = cumEnergy[i] + v*v
	}
	energy := func(start int) float64 {
		return cumEnergy[start+window] - cumEnergy[start]
	}

	diff := make([]float64, tauMax+1)
	e0 := energy(0)
	for tau := 0; tau <= tauMax; tau++ {
		d := e0 + energy(tau) - 2*correlation[window-1+tau]
		if d < 0 {
			// Numerical noise from the FFT round trip
			d = 0
		}
		diff[tau] = d
	}

	return diff
}

// parabolicInterpolation refines a trough location to sub-sample accuracy
func parabolicInterpolation(data []float64, troughIdx int) float64 {
	if troughIdx <= 0 || troughIdx >= len(data)-1 {
		return float64(troughIdx)
	}

	y1 := data[troughIdx-1]
	y2 := data[troughIdx]
	y3 := data[troughIdx+1]

	a := (y1 - 2*y2 + y3) / 2
	b := (y3 - y1) / 2

	if a == 0 {
		return float64(troughIdx)
	}

	return float64(troughIdx) - b/(2*a)
}
