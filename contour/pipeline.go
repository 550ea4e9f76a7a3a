package contour

import (
	"fmt"
	"time"

	"github.com/voicelab/pitchmark/algorithms/common"
	"github.com/voicelab/pitchmark/logging"
)

// Config parameterizes the pipeline. The two historical processing variants
// are presets of the same pipeline: a plain fixed-mark contour, and a finer
// contour with reference-scan gap filling and a mid-recording time-axis
// reset.
type Config struct {
	// TimeMarks is the number of coarse analysis windows per recording
	TimeMarks int `json:"time_marks"`

	// SubWindows is the fallback sub-window count of the robust estimator
	SubWindows int `json:"sub_windows"`

	// MaxValidHz is the artifact ceiling for per-segment estimates
	MaxValidHz float64 `json:"max_valid_hz"`

	// MinValidHz is the gap-filling floor: smoothed marks below it are
	// replaced from the reference scan. Only used when GapFill is set.
	MinValidHz float64 `json:"min_valid_hz"`

	// GapFill enables the per-file reference scan and the patching of
	// implausibly low smoothed marks
	GapFill bool `json:"gap_fill"`

	// PreScanMarks is the reference-scan resolution
	PreScanMarks int `json:"pre_scan_marks"`

	// ResetMark is the 0-based coarse mark index at which the time axis and
	// mark numbering restart; zero or negative disables the reset
	ResetMark int `json:"reset_mark"`
}

// DefaultConfig returns the plain 10-mark variant: no gap filling, no reset
func DefaultConfig() *Config {
	return &Config{
		TimeMarks:  10,
		SubWindows: 5,
		MaxValidHz: 350.0,
	}
}

// GapFillConfig returns the 20-mark variant with reference-scan gap filling
// and a time-axis reset after the 10th mark, for recordings holding two
// concatenated takes
func GapFillConfig() *Config {
	return &Config{
		TimeMarks:    20,
		SubWindows:   5,
		MaxValidHz:   350.0,
		MinValidHz:   75.0,
		GapFill:      true,
		PreScanMarks: 300,
		ResetMark:    10,
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	if c.TimeMarks <= 0 {
		return fmt.Errorf("time marks must be positive: %d", c.TimeMarks)
	}
	if c.SubWindows <= 0 {
		return fmt.Errorf("sub windows must be positive: %d", c.SubWindows)
	}
	if c.MaxValidHz <= 0 {
		return fmt.Errorf("max valid hz must be positive: %g", c.MaxValidHz)
	}
	if c.GapFill {
		if c.MinValidHz <= 0 {
			return fmt.Errorf("min valid hz must be positive when gap filling: %g", c.MinValidHz)
		}
		if c.PreScanMarks <= 0 {
			return fmt.Errorf("pre-scan marks must be positive when gap filling: %d", c.PreScanMarks)
		}
	}
	return nil
}

// Pipeline composes the segmenter, robust estimator, smoother, reference
// scanner and time axis into a per-file contour extractor. It is
// single-threaded: coarse marks are estimated strictly in time order because
// the reset boundary depends on the previous mark's end time.
type Pipeline struct {
	config    *Config
	primitive PitchPrimitive
	estimator *RobustEstimator
	scanner   *ReferenceScanner
}

// NewPipeline creates a pipeline over the given pitch primitive. A nil
// config selects DefaultConfig.
func NewPipeline(config *Config, primitive PitchPrimitive) (*Pipeline, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	p := &Pipeline{
		config:    config,
		primitive: primitive,
		estimator: NewRobustEstimator(EstimatorConfig{
			MaxValidHz: config.MaxValidHz,
			SubWindows: config.SubWindows,
		}, primitive),
	}

	if config.GapFill {
		p.scanner = NewReferenceScanner(config.PreScanMarks, config.MinValidHz, primitive)
	}

	return p, nil
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() *Config {
	return p.config
}

// Process extracts the pitch contour of one trimmed waveform and returns one
// MarkResult per configured time mark, in time order. Estimation failures
// degrade to fallback values; Process never fails for a decodable waveform.
func (p *Pipeline) Process(sounding string, samples []float64, sampleRate int) []MarkResult {
	logger := logging.WithFields(logging.Fields{
		"component": "contour_pipeline",
		"sounding":  sounding,
	})

	started := time.Now()
	logger.Info("processing sounding", logging.Fields{
		"samples":     len(samples),
		"sample_rate": sampleRate,
	})

	var reference *ReferenceMap
	if p.scanner != nil {
		reference = p.scanner.Scan(samples, sampleRate)
	}

	spans := Partition(len(samples), p.config.TimeMarks)

	hz := make([]float64, len(spans))
	for i, span := range spans {
		logger.Debug("estimating segment", logging.Fields{
			"segment": fmt.Sprintf("%d/%d", i+1, len(spans)),
		})
		hz[i] = p.estimator.Estimate(samples[span.Start:span.End], sampleRate)
	}

	// Smoothing runs exactly once, before gap filling: replaced values must
	// not feed back into neighbor averages.
	hz = Smooth(hz)

	timings := NewTimeAxis(sampleRate, p.config.ResetMark).Timings(spans)

	results := make([]MarkResult, len(spans))
	for i := range spans {
		if p.config.GapFill && hz[i] < p.config.MinValidHz {
			replacement := common.RoundTo(reference.NearestValid(timings[i].MidpointSec), 2)
			logger.Debug("gap-filling low mark", logging.Fields{
				"mark":        i + 1,
				"smoothed_hz": hz[i],
				"replacement": replacement,
			})
			hz[i] = replacement
		}

		results[i] = MarkResult{
			Sounding:        sounding,
			TimeMark:        timings[i].Index,
			RelativeTimeSec: common.RoundTo(timings[i].RelativeSec, 3),
			Hz:              hz[i],
		}
	}

	logger.Info("sounding finished", logging.Fields{
		"marks":   len(results),
		"elapsed": time.Since(started).Round(time.Millisecond).String(),
	})

	return results
}
