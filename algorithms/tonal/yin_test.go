package tonal

import (
	"math"
	"testing"

	"github.com/voicelab/pitchmark/algorithms/common"
)

func sine(freq float64, seconds float64, sampleRate int) []float64 {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.8 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return samples
}

func TestTrackerPureTones(t *testing.T) {
	cases := []struct {
		name       string
		freq       float64
		sampleRate int
	}{
		{"low male voice", 100, 44100},
		{"mid voice", 150, 44100},
		{"high voice", 220, 44100},
		{"upper band", 300, 16000},
		{"near ceiling", 440, 44100},
	}

	tracker := NewTracker()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			track, err := tracker.Frames(sine(tc.freq, 2, tc.sampleRate), tc.sampleRate)
			if err != nil {
				t.Fatal(err)
			}
			if len(track) == 0 {
				t.Fatal("no frames produced")
			}

			var valid []float64
			for _, hz := range track {
				if !math.IsNaN(hz) {
					valid = append(valid, hz)
				}
			}
			if len(valid) < len(track)/2 {
				t.Fatalf("only %d of %d frames voiced for a pure tone", len(valid), len(track))
			}
			if got := common.Median(valid); math.Abs(got-tc.freq) > 1.5 {
				t.Errorf("median pitch %g Hz, want %g Hz within 1.5", got, tc.freq)
			}
		})
	}
}

func TestTrackerSilence(t *testing.T) {
	tracker := NewTracker()
	track, err := tracker.Frames(make([]float64, 16000), 16000)
	if err != nil {
		t.Fatal(err)
	}
	if len(track) == 0 {
		t.Fatal("expected frames for a full-length silent signal")
	}
	for i, hz := range track {
		if !math.IsNaN(hz) {
			t.Errorf("frame %d of silence reported %g Hz, want undetermined", i, hz)
		}
	}
}

func TestTrackerShortInput(t *testing.T) {
	tracker := NewTracker()

	// 100 samples at 16 kHz cannot cover the longest candidate period
	track, err := tracker.Frames(sine(150, 0.00625, 16000), 16000)
	if err != nil {
		t.Fatal(err)
	}
	if track != nil {
		t.Errorf("expected no frames for an undersized span, got %v", track)
	}
}

func TestTrackerEmptyInput(t *testing.T) {
	tracker := NewTracker()
	if track, err := tracker.Frames(nil, 16000); err != nil || track != nil {
		t.Errorf("empty input: got (%v, %v), want (nil, nil)", track, err)
	}
	if track, err := tracker.Frames([]float64{0.1}, 0); err != nil || track != nil {
		t.Errorf("zero sample rate: got (%v, %v), want (nil, nil)", track, err)
	}
}

func TestTrackerFrameCount(t *testing.T) {
	tracker := NewTracker()
	params := tracker.Params()

	n := 16000
	track, err := tracker.Frames(sine(150, 1, 16000), 16000)
	if err != nil {
		t.Fatal(err)
	}

	want := (n-params.FrameLength)/params.HopLength + 1
	if len(track) != want {
		t.Errorf("got %d frames, want %d", len(track), want)
	}
}
