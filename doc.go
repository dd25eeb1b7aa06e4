// Package sampling demonstrates how decimation and linear reconstruction
// degrade a sampled sinusoid as its frequency approaches the Nyquist limit.
//
// Each run generates a sine wave, keeps every other sample, rebuilds the
// signal by piecewise-linear interpolation, evaluates the rebuild on the
// original time stamps and reports the mean squared error (MSE). A sweep
// repeats the run across a frequency range.
//
// # Quick Start
//
// For a single run with the default configuration (100 Hz sampling, unit
// amplitude, 30 periods):
//
//	res, err := sampling.ProcessSignal(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MSE: %.2e\n", res.MSE)
//
// For a sweep from DC to 50 Hz:
//
//	sweep, err := sampling.Sweep(sampling.DefaultSweep())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range sweep {
//	    fmt.Println(p.Frequency, p.MSE)
//	}
//
// # Pipeline
//
//	Generate -> Decimate (x1/2) -> Reconstruct (x2, linear) -> Resample (original grid) -> MSE
//
// The zero-frequency signal is a constant 1, which survives the pipeline
// with zero error. Below the decimated Nyquist limit (SampleRate/4) the
// error stays small; approaching it, the error grows by orders of
// magnitude.
//
// Interpolation is clamped: time stamps past the last decimated sample take
// the last decimated amplitude rather than an extrapolated one.
//
// # Errors
//
// Precondition violations are returned as wrapped sentinel errors
// ([ErrTooFewSamples], [ErrTooManySamples], [ErrLengthMismatch],
// [ErrEmptySeries]) and abort the run. Processing never validates the
// frequency; input layers should call [Config.CheckFrequency] first.
//
// # Thread Safety
//
// [Analyzer] holds only its configuration and may be shared between
// goroutines. Setting [Config.EnableParallel] spreads swept frequencies over
// at most [Config.Workers] goroutines with results identical to the
// sequential sweep.
package sampling
