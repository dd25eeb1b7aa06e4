// Package mathutil provides small numeric helpers shared by the sampling engine.
package mathutil

import "math"

// RoundUpEven returns n if it is even, otherwise n+1.
// Negative inputs are treated as zero.
func RoundUpEven(n int) int {
	if n <= 0 {
		return 0
	}
	if !IsEven(n) {
		return n + 1
	}
	return n
}

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%evenDivisor == 0
}

// NyquistLimit returns the highest frequency representable at sampleRate.
func NyquistLimit(sampleRate float64) float64 {
	return sampleRate / evenDivisor
}

// DecimatedNyquistLimit returns the Nyquist limit after keeping one of every
// factor samples.
func DecimatedNyquistLimit(sampleRate float64, factor int) float64 {
	if factor < 1 {
		factor = 1
	}
	return NyquistLimit(sampleRate / float64(factor))
}

// InclusiveRange returns start, start+step, ... up to and including stop.
//
// Values are computed as start + i*step rather than by accumulation so that
// long ranges do not drift. It returns nil when step is not positive, when
// stop < start, or when any argument is not finite.
func InclusiveRange(start, stop, step float64) []float64 {
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) {
		return nil
	}
	if step <= 0 || stop < start {
		return nil
	}

	count := int(math.Floor((stop-start)/step+rangeTolerance)) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
