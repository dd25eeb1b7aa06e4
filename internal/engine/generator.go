package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-sampling-lab/internal/mathutil"
)

// SineParams holds the fixed parameters of the generated signal.
type SineParams struct {
	SampleRate float64 // Samples per second
	Amplitude  float64 // Peak amplitude (ignored for the zero-frequency signal)
	Phase      float64 // Phase offset in radians
	Periods    int     // Signal periods to generate, or seconds when frequency is 0
}

// Sinusoid generates Periods periods of a sine wave at freq Hz.
//
// For freq == 0 the result is a constant signal of amplitude 1 sampled at
// Periods*SampleRate points spread evenly over [0, Periods] seconds, both
// ends included. Otherwise floor(SampleRate*Periods/freq) points, rounded
// up to an even count, are spread evenly over [0, Periods/freq) with the
// end excluded.
//
// freq is assumed to be non-negative; it is not validated here. Callers
// bound the allocation with CheckLength first.
func Sinusoid(freq float64, p SineParams) Series {
	if freq == 0 {
		return constantSeries(p)
	}

	period := 1 / freq
	totalTime := float64(p.Periods) * period
	numPoints := mathutil.RoundUpEven(int(p.SampleRate * totalTime))
	if numPoints == 0 {
		return Series{T: []float64{}, Y: []float64{}}
	}

	// Span includes both ends, so lay out one extra point and drop it.
	t := floats.Span(make([]float64, numPoints+1), 0, totalTime)[:numPoints:numPoints]

	y := make([]float64, numPoints)
	omega := 2 * math.Pi * freq
	for i, ti := range t {
		y[i] = math.Sin(omega*ti + p.Phase)
	}
	f64.Scale(y, y, p.Amplitude)

	return Series{T: t, Y: y}
}

// CheckLength returns ErrTooManySamples when Sinusoid would generate more
// than MaxSeriesLen samples for freq. The count is evaluated in floating
// point, so frequencies near zero cannot overflow it.
func CheckLength(freq float64, p SineParams) error {
	var n float64
	if freq == 0 {
		n = float64(p.Periods) * p.SampleRate
	} else {
		n = p.SampleRate * (float64(p.Periods) * (1 / freq))
	}
	if n > MaxSeriesLen {
		return fmt.Errorf("%w: %.0f samples at %g Hz, limit %d", ErrTooManySamples, n, freq, MaxSeriesLen)
	}
	return nil
}

// constantSeries builds the zero-frequency (DC) signal.
func constantSeries(p SineParams) Series {
	numPoints := int(float64(p.Periods) * p.SampleRate)
	switch {
	case numPoints <= 0:
		return Series{T: []float64{}, Y: []float64{}}
	case numPoints == 1:
		return Series{T: []float64{0}, Y: []float64{dcAmplitude}}
	}

	t := floats.Span(make([]float64, numPoints), 0, float64(p.Periods))
	y := make([]float64, numPoints)
	for i := range y {
		y[i] = dcAmplitude
	}
	return Series{T: t, Y: y}
}
