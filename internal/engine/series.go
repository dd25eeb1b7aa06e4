// Package engine implements the sampling stages: sinusoid generation,
// stride-2 decimation, piecewise-linear reconstruction and error metrics.
//
// Every function is pure. Inputs are never modified and every result is
// backed by freshly allocated slices.
package engine

import (
	"errors"
	"fmt"
)

// Precondition errors returned by the engine.
var (
	// ErrTooFewSamples indicates a series too short to define a line.
	ErrTooFewSamples = errors.New("too few samples for linear interpolation")

	// ErrLengthMismatch indicates two sequences that must pair up do not.
	ErrLengthMismatch = errors.New("sequence lengths differ")

	// ErrNotIncreasing indicates time stamps that are not strictly increasing.
	ErrNotIncreasing = errors.New("time stamps not strictly increasing")

	// ErrEmptySeries indicates an error metric over zero samples.
	ErrEmptySeries = errors.New("empty series")

	// ErrTooManySamples indicates a signal longer than MaxSeriesLen.
	ErrTooManySamples = errors.New("signal exceeds maximum length")
)

// Series is a sampled signal: amplitude Y[i] observed at time T[i] seconds.
type Series struct {
	T []float64
	Y []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.T)
}

// Validate checks that T and Y pair up and T is strictly increasing.
func (s Series) Validate() error {
	if len(s.T) != len(s.Y) {
		return fmt.Errorf("%w: %d time stamps, %d amplitudes", ErrLengthMismatch, len(s.T), len(s.Y))
	}
	for i := 1; i < len(s.T); i++ {
		if s.T[i] <= s.T[i-1] {
			return fmt.Errorf("%w: t[%d]=%g after t[%d]=%g", ErrNotIncreasing, i, s.T[i], i-1, s.T[i-1])
		}
	}
	return nil
}
