package contour

import (
	"math"

	"github.com/voicelab/pitchmark/algorithms/common"
	"github.com/voicelab/pitchmark/logging"
)

// EstimatorConfig contains parameters for robust per-segment estimation
type EstimatorConfig struct {
	// MaxValidHz is the artifact ceiling: whole-segment estimates at or
	// above it are treated as tracking artifacts and trigger the
	// sub-window fallback
	MaxValidHz float64 `json:"max_valid_hz"`

	// SubWindows is the number of equal sub-spans analyzed in the fallback
	SubWindows int `json:"sub_windows"`
}

// DefaultEstimatorConfig returns the estimator defaults for adult speech
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		MaxValidHz: 350.0,
		SubWindows: 5,
	}
}

// RobustEstimator turns a frame-wise pitch primitive into a single reliable
// Hz value per segment. Artifacts on a long segment are often localized, an
// unvoiced consonant or breath noise in part of the span, so when the
// whole-segment estimate is untrustworthy the estimator re-analyzes the
// segment in narrower sub-windows to isolate a cleaner voiced region.
type RobustEstimator struct {
	config    EstimatorConfig
	primitive PitchPrimitive
}

// NewRobustEstimator creates a robust estimator over the given primitive
func NewRobustEstimator(config EstimatorConfig, primitive PitchPrimitive) *RobustEstimator {
	return &RobustEstimator{
		config:    config,
		primitive: primitive,
	}
}

// medianFrames aggregates the primitive's frame track over the samples into
// a single optional Hz value: the median of all determined frames. A failing
// primitive or an all-undetermined track yields an invalid Estimate.
func medianFrames(primitive PitchPrimitive, samples []float64, sampleRate int) Estimate {
	frames, err := primitive.Frames(samples, sampleRate)
	if err != nil {
		logging.Error(err, "pitch primitive failed, treating span as undetermined", logging.Fields{
			"samples": len(samples),
		})
		return Estimate{}
	}

	voiced := make([]float64, 0, len(frames))
	for _, hz := range frames {
		if !math.IsNaN(hz) {
			voiced = append(voiced, hz)
		}
	}

	if len(voiced) == 0 {
		return Estimate{}
	}

	return Estimate{Hz: common.Median(voiced), Valid: true}
}

// Estimate returns a concrete Hz value for the segment, never undetermined.
// The whole-segment median is used when it is trustworthy; otherwise the
// median of the trustworthy sub-window estimates; otherwise the ceiling
// itself, signalling that no reliable low estimate could be obtained while
// still giving downstream averaging and export a usable number.
func (re *RobustEstimator) Estimate(samples []float64, sampleRate int) float64 {
	whole := medianFrames(re.primitive, samples, sampleRate)
	if whole.Valid && whole.Hz < re.config.MaxValidHz {
		return whole.Hz
	}

	var valid []float64
	for _, span := range Partition(len(samples), re.config.SubWindows) {
		sub := medianFrames(re.primitive, samples[span.Start:span.End], sampleRate)
		if sub.Valid && sub.Hz < re.config.MaxValidHz {
			valid = append(valid, sub.Hz)
		}
	}

	if len(valid) > 0 {
		return common.Median(valid)
	}

	return re.config.MaxValidHz
}
