package sampling

// Signal defaults
const (
	DefaultSampleRate = 100.0 // Samples per second
	DefaultAmplitude  = 1.0   // Peak amplitude
	DefaultPhase      = 0.0   // Phase offset in radians
	DefaultPeriods    = 30    // Periods generated per run
)

// Sweep defaults, matching an integer sweep from DC to the Nyquist limit of
// the default sample rate.
const (
	DefaultSweepStart = 0.0
	DefaultSweepStop  = 50.0
	DefaultSweepStep  = 1.0
)

// Config limits
const (
	minPeriods = 1 // At least one period (or one second of DC)
)
