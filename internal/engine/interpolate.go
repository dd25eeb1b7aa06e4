package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Reconstruct upsamples a decimated series onto a grid of twice as many
// evenly spaced points covering [T[0], T[n-1]], both ends included.
// Amplitudes come from piecewise-linear interpolation of the input.
//
// The grid is not aligned with the pre-decimation time stamps; use
// ResampleTo to evaluate the reconstruction on the original grid.
func Reconstruct(s Series) (Series, error) {
	fit, err := fitLinear(s)
	if err != nil {
		return Series{}, err
	}

	n := s.Len() * reconstructionFactor
	t := floats.Span(make([]float64, n), s.T[0], s.T[s.Len()-1])
	return Series{T: t, Y: predictAll(fit, t)}, nil
}

// ResampleTo evaluates the piecewise-linear interpolant of s at every time
// in grid. Points before T[0] take Y[0] and points after T[n-1] take
// Y[n-1]; the interpolant is clamped, never extrapolated.
func ResampleTo(grid []float64, s Series) ([]float64, error) {
	fit, err := fitLinear(s)
	if err != nil {
		return nil, err
	}
	return predictAll(fit, grid), nil
}

// fitLinear checks the interpolation preconditions and fits s.
// gonum panics on the same conditions; they are reported as errors here.
func fitLinear(s Series) (*interp.PiecewiseLinear, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Len() < minInterpolationPoints {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewSamples, s.Len(), minInterpolationPoints)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.T, s.Y); err != nil {
		return nil, fmt.Errorf("linear fit: %w", err)
	}
	return &pl, nil
}

func predictAll(p interp.Predictor, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Predict(x)
	}
	return ys
}
