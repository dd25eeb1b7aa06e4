package sampling

import (
	"fmt"

	"github.com/tphakala/go-sampling-lab/internal/engine"
	"github.com/tphakala/go-sampling-lab/internal/pipeline"
)

// Analyzer runs the generate → decimate → reconstruct → compare pipeline
// for a fixed configuration. It holds no state between runs and is safe
// for concurrent use.
type Analyzer struct {
	config Config
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Frequency is the input frequency in Hz.
	Frequency float64

	// Time holds the original sample time stamps in seconds.
	Time []float64

	// Original holds the generated amplitudes.
	Original []float64

	// Restored holds the reconstruction evaluated at Time.
	Restored []float64

	// MSE is the mean squared error between Original and Restored.
	MSE float64

	// Stages records the length seen by each reconstruction stage.
	Stages []StageInfo
}

// New creates an Analyzer. The configuration is copied.
func New(config *Config) (*Analyzer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{config: *config}, nil
}

// Config returns a copy of the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.config
}

// Process runs the pipeline once at freq Hz.
//
// freq is not range checked; use Config.CheckFrequency on user input.
// Configurations too coarse to leave two decimated samples fail with
// ErrTooFewSamples. Frequencies low enough to need more than
// engine.MaxSeriesLen samples fail with ErrTooManySamples.
func (a *Analyzer) Process(freq float64) (*Result, error) {
	params := a.config.sineParams()
	if err := engine.CheckLength(freq, params); err != nil {
		return nil, fmt.Errorf("process %g Hz: %w", freq, err)
	}
	original := engine.Sinusoid(freq, params)

	p, err := pipeline.BuildReconstruction(original.T)
	if err != nil {
		return nil, fmt.Errorf("process %g Hz: %w", freq, err)
	}

	restored, trace, err := p.Run(original)
	if err != nil {
		return nil, fmt.Errorf("process %g Hz: %w", freq, err)
	}

	mse, err := engine.MSE(original.Y, restored.Y)
	if err != nil {
		return nil, fmt.Errorf("process %g Hz: %w", freq, err)
	}

	return &Result{
		Frequency: freq,
		Time:      original.T,
		Original:  original.Y,
		Restored:  restored.Y,
		MSE:       mse,
		Stages:    trace,
	}, nil
}
