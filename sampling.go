package sampling

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/tphakala/go-sampling-lab/internal/engine"
	"github.com/tphakala/go-sampling-lab/internal/mathutil"
	"github.com/tphakala/go-sampling-lab/internal/pipeline"
)

// StageInfo records the input and output length of one pipeline stage.
type StageInfo = pipeline.StageInfo

// Config holds the fixed signal parameters shared by every run.
type Config struct {
	// SampleRate is the rate of the generated signal in Hz.
	SampleRate float64

	// Amplitude is the peak amplitude of non-zero frequencies.
	// The zero-frequency signal is always a constant 1.
	Amplitude float64

	// Phase is the phase offset in radians.
	Phase float64

	// Periods is the number of signal periods generated per run.
	// For the zero-frequency signal it is the duration in seconds.
	Periods int

	// EnableParallel runs sweep frequencies on separate goroutines.
	// Results are identical to the sequential sweep.
	EnableParallel bool

	// MaxWorkers bounds how many frequencies a parallel sweep processes at
	// once. Zero means runtime.GOMAXPROCS(0).
	MaxWorkers int
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid sampling configuration")

	// ErrFrequencyOutOfRange indicates a frequency outside [0, SampleRate/2].
	ErrFrequencyOutOfRange = errors.New("frequency out of range")

	// ErrInvalidRange indicates a sweep range that yields no frequencies.
	ErrInvalidRange = errors.New("invalid frequency range")

	// ErrTooFewSamples indicates a decimated signal too short to interpolate.
	ErrTooFewSamples = engine.ErrTooFewSamples

	// ErrLengthMismatch indicates sequences that must pair up do not.
	ErrLengthMismatch = engine.ErrLengthMismatch

	// ErrEmptySeries indicates an error metric over zero samples.
	ErrEmptySeries = engine.ErrEmptySeries

	// ErrTooManySamples indicates a frequency so low that the generated
	// signal would exceed engine.MaxSeriesLen samples.
	ErrTooManySamples = engine.ErrTooManySamples
)

// DefaultConfig returns the reference configuration: 100 Hz sampling,
// unit amplitude, zero phase and 30 periods, sequential sweeps.
func DefaultConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		Amplitude:  DefaultAmplitude,
		Phase:      DefaultPhase,
		Periods:    DefaultPeriods,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isFinite(c.SampleRate) || c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive and finite", ErrInvalidConfig)
	}

	if c.Periods < minPeriods {
		return fmt.Errorf("%w: periods must be at least %d", ErrInvalidConfig, minPeriods)
	}

	if !isFinite(c.Amplitude) {
		return fmt.Errorf("%w: amplitude must be finite", ErrInvalidConfig)
	}

	if !isFinite(c.Phase) {
		return fmt.Errorf("%w: phase must be finite", ErrInvalidConfig)
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("%w: max workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// MaxFrequency returns the Nyquist limit of the generated signal.
func (c *Config) MaxFrequency() float64 {
	return mathutil.NyquistLimit(c.SampleRate)
}

// DecimatedNyquist returns the Nyquist limit after decimation, above which
// reconstruction error is expected to grow sharply.
func (c *Config) DecimatedNyquist() float64 {
	return mathutil.DecimatedNyquistLimit(c.SampleRate, engine.DecimationFactor)
}

// CheckFrequency validates a user-supplied frequency against
// [0, MaxFrequency]. The processing functions do not call it; it belongs
// to whatever layer accepts input.
//
// Frequencies close to zero pass this check but need very long signals.
// Analyzer.Process rejects any frequency whose signal would exceed
// engine.MaxSeriesLen samples with ErrTooManySamples before allocating it.
func (c *Config) CheckFrequency(freq float64) error {
	if !isFinite(freq) || freq < 0 || freq > c.MaxFrequency() {
		return fmt.Errorf("%w: %g Hz not in [0, %g]", ErrFrequencyOutOfRange, freq, c.MaxFrequency())
	}
	return nil
}

// Workers returns the number of goroutines a parallel sweep uses.
func (c *Config) Workers() int {
	if c.MaxWorkers > 0 {
		return c.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// workerLimit caps Workers at the number of frequencies to process.
func (c *Config) workerLimit(n int) int {
	return max(min(c.Workers(), n), 1)
}

func (c *Config) sineParams() engine.SineParams {
	return engine.SineParams{
		SampleRate: c.SampleRate,
		Amplitude:  c.Amplitude,
		Phase:      c.Phase,
		Periods:    c.Periods,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
