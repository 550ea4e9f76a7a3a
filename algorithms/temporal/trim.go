package temporal

import (
	"math"

	"github.com/voicelab/pitchmark/algorithms/common"
)

// TrimParams contains parameters for silence trimming
type TrimParams struct {
	// TopDB is the threshold below the peak RMS frame, in decibels, under
	// which a frame counts as silence
	TopDB       float64 `json:"top_db"`
	FrameLength int     `json:"frame_length"`
	HopLength   int     `json:"hop_length"`
}

// DefaultTrimParams returns trim parameters matching common speech usage
func DefaultTrimParams() TrimParams {
	return TrimParams{
		TopDB:       30.0,
		FrameLength: 2048,
		HopLength:   512,
	}
}

// SilenceTrimmer removes leading and trailing silence from a waveform by
// thresholding its RMS envelope relative to the loudest frame.
type SilenceTrimmer struct {
	params   TrimParams
	envelope *Envelope
}

// NewSilenceTrimmer creates a trimmer with default parameters
func NewSilenceTrimmer() *SilenceTrimmer {
	return NewSilenceTrimmerWithParams(DefaultTrimParams())
}

// NewSilenceTrimmerWithParams creates a trimmer with custom parameters
func NewSilenceTrimmerWithParams(params TrimParams) *SilenceTrimmer {
	return &SilenceTrimmer{
		params:   params,
		envelope: NewEnvelope(),
	}
}

// Trim returns a copy of signal with leading and trailing silence removed.
// The result is empty when no frame rises above the threshold, including for
// all-zero input. Trimming is deterministic and leaves the input untouched.
func (st *SilenceTrimmer) Trim(signal []float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	rms := st.envelope.ComputeRMS(signal, st.params.FrameLength, st.params.HopLength)
	if len(rms) == 0 {
		return []float64{}
	}

	ref := common.Max(rms)
	threshold := ref * math.Pow(10, -st.params.TopDB/20.0)

	firstFrame := -1
	lastFrame := -1
	for i, v := range rms {
		if v > threshold {
			if firstFrame < 0 {
				firstFrame = i
			}
			lastFrame = i
		}
	}

	if firstFrame < 0 {
		return []float64{}
	}

	start := firstFrame * st.params.HopLength
	end := lastFrame*st.params.HopLength + st.params.FrameLength
	if end > len(signal) {
		end = len(signal)
	}

	trimmed := make([]float64, end-start)
	copy(trimmed, signal[start:end])
	return trimmed
}
