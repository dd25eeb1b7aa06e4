package sampling

import (
	"fmt"

	"github.com/tphakala/go-sampling-lab/internal/mathutil"
)

// ProcessSignal is a convenience function for a single run with
// DefaultConfig.
func ProcessSignal(freq float64) (*Result, error) {
	a, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return a.Process(freq)
}

// Sweep is a convenience function that sweeps freqs with DefaultConfig.
func Sweep(freqs []float64) (SweepResult, error) {
	a, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return a.Sweep(freqs)
}

// FrequencyRange returns start, start+step, ... up to and including stop.
func FrequencyRange(start, stop, step float64) ([]float64, error) {
	freqs := mathutil.InclusiveRange(start, stop, step)
	if freqs == nil {
		return nil, fmt.Errorf("%w: start=%g stop=%g step=%g", ErrInvalidRange, start, stop, step)
	}
	return freqs, nil
}

// DefaultSweep returns the integer frequencies 0 through 50 Hz.
func DefaultSweep() []float64 {
	return mathutil.InclusiveRange(DefaultSweepStart, DefaultSweepStop, DefaultSweepStep)
}
