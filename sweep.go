package sampling

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// SweepPoint pairs a frequency with the reconstruction error measured at it.
type SweepPoint struct {
	Frequency float64
	MSE       float64
}

// SweepResult holds one point per swept frequency, in sweep order.
type SweepResult []SweepPoint

// Frequencies returns the frequency column, for plotting.
func (r SweepResult) Frequencies() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.Frequency
	}
	return out
}

// Errors returns the MSE column, for plotting.
func (r SweepResult) Errors() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.MSE
	}
	return out
}

// Peak returns the point with the largest error. The first such point wins
// ties; ok is false for an empty result.
func (r SweepResult) Peak() (peak SweepPoint, ok bool) {
	for i, p := range r {
		if i == 0 || p.MSE > peak.MSE {
			peak = p
		}
	}
	return peak, len(r) > 0
}

// MeanError returns the average MSE over the sweep, or 0 when empty.
func (r SweepResult) MeanError() float64 {
	if len(r) == 0 {
		return 0
	}
	return stat.Mean(r.Errors(), nil)
}

// Sweep runs the pipeline once per frequency and returns the errors in the
// order the frequencies were given. A failure aborts the sweep with the
// error of the lowest-indexed failing frequency, in both the sequential and
// the parallel path.
func (a *Analyzer) Sweep(freqs []float64) (SweepResult, error) {
	if a.config.EnableParallel && len(freqs) > 1 {
		return a.sweepParallel(freqs)
	}
	return a.sweepSequential(freqs)
}

// sweepSequential processes frequencies one by one.
func (a *Analyzer) sweepSequential(freqs []float64) (SweepResult, error) {
	result := make(SweepResult, len(freqs))
	for i, freq := range freqs {
		res, err := a.Process(freq)
		if err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
		result[i] = SweepPoint{Frequency: freq, MSE: res.MSE}
	}
	return result, nil
}

// sweepParallel processes frequencies on at most workerLimit goroutines.
// Each task writes only its own index, so the merge needs no ordering step.
//
// Dispatch stops after the first failure, but tasks already dispatched run
// to completion. Tasks are dispatched in index order, so every frequency
// below a failing one has been processed and the lowest failing index is
// always known.
func (a *Analyzer) sweepParallel(freqs []float64) (SweepResult, error) {
	result := make(SweepResult, len(freqs))
	errs := make([]error, len(freqs))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(a.config.workerLimit(len(freqs)))

	for i, freq := range freqs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := a.Process(freq)
			if err != nil {
				errs[i] = err
				return err
			}
			result[i] = SweepPoint{Frequency: freq, MSE: res.MSE}
			return nil
		})
	}

	if g.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, fmt.Errorf("sweep: %w", err)
			}
		}
	}

	return result, nil
}
