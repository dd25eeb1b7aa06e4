package mathutil

// Range construction constants
const (
	// rangeTolerance absorbs accumulated rounding when deciding whether the
	// stop value of an inclusive range is reachable (e.g. 0.1 steps).
	rangeTolerance = 1e-9

	// evenDivisor is used for parity checks and halving.
	evenDivisor = 2
)
