package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality for the pitch tracker
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the forward transform of a real signal, zero-padded to
// size when size exceeds the input length. mjibson/go-dsp handles all sizes,
// including non-power-of-2.
func (f *FFT) Compute(x []float64, size int) []complex128 {
	if size < len(x) {
		size = len(x)
	}
	if size == 0 {
		return []complex128{}
	}

	if len(x) < size {
		padded := make([]float64, size)
		copy(padded, x)
		x = padded
	}

	return fft.FFTReal(x)
}

// ComputeInverseReal computes the inverse transform and returns the real part
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}
