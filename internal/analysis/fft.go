package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var (
	ErrTooShort = errors.New("analysis: need at least 4 samples")
	ErrNoPeak   = errors.New("analysis: signal has no periodic component")
)

// Hann applies a Hann window to a copy of data.
func Hann(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	if n == 1 {
		out[0] = data[0]
		return out
	}
	for i, v := range data {
		out[i] = v * 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}

// PowerSpectrum returns the magnitudes of bins 0..n/2 of the mean-removed,
// windowed signal. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(Hann(centered))
	ps := make([]float64, len(data)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod estimates the period of the strongest oscillation in
// samples taken every dt. The peak bin is refined by parabolic
// interpolation over its neighbours.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	n := len(samples)
	if n < 4 {
		return 0, ErrTooShort
	}

	ps := PowerSpectrum(samples)
	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] < 1e-12 {
		return 0, ErrNoPeak
	}

	offset := 0.0
	if peak+1 < len(ps) {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
	}

	return float64(n) * dt / (float64(peak) + offset), nil
}
