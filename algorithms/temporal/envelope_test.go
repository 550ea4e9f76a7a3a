package temporal

import (
	"math"
	"testing"
)

func TestComputeRMS(t *testing.T) {
	e := NewEnvelope()

	t.Run("constant signal", func(t *testing.T) {
		signal := make([]float64, 4096)
		for i := range signal {
			signal[i] = 0.5
		}

		rms := e.ComputeRMS(signal, 1024, 256)
		want := (4096-1024)/256 + 1
		if len(rms) != want {
			t.Fatalf("got %d frames, want %d", len(rms), want)
		}
		for i, v := range rms {
			if math.Abs(v-0.5) > 1e-12 {
				t.Errorf("frame %d: rms %g, want 0.5", i, v)
			}
		}
	})

	t.Run("sub-frame signal", func(t *testing.T) {
		rms := e.ComputeRMS([]float64{0.3, 0.3, 0.3}, 1024, 256)
		if len(rms) != 1 {
			t.Fatalf("got %d frames, want 1", len(rms))
		}
		if math.Abs(rms[0]-0.3) > 1e-12 {
			t.Errorf("rms %g, want 0.3", rms[0])
		}
	})

	t.Run("degenerate input", func(t *testing.T) {
		if rms := e.ComputeRMS(nil, 1024, 256); len(rms) != 0 {
			t.Errorf("empty signal: got %v", rms)
		}
		if rms := e.ComputeRMS([]float64{1}, 0, 256); len(rms) != 0 {
			t.Errorf("zero frame size: got %v", rms)
		}
		if rms := e.ComputeRMS([]float64{1}, 1024, 0); len(rms) != 0 {
			t.Errorf("zero hop size: got %v", rms)
		}
	})
}
