package engine

import (
	"fmt"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// MSE returns the mean squared difference between two equal-length
// amplitude sequences. The result is never negative.
func MSE(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, ErrEmptySeries
	}

	diff := floats.SubTo(make([]float64, len(a)), a, b)
	return f64.DotProduct(diff, diff) / float64(len(diff)), nil
}
