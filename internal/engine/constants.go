package engine

// Decimation and reconstruction constants
const (
	// DecimationFactor is the stride used by Decimate: one sample of every two is kept.
	DecimationFactor = 2

	// reconstructionFactor is the density of the reconstruction grid
	// relative to the decimated series.
	reconstructionFactor = 2

	// minInterpolationPoints is the smallest series that defines a line.
	minInterpolationPoints = 2
)

// Sinusoid constants
const (
	// dcAmplitude is the fixed level of the zero-frequency signal.
	dcAmplitude = 1.0

	// MaxSeriesLen is the longest signal Sinusoid may be asked for,
	// about 128 MiB per float64 slice.
	MaxSeriesLen = 1 << 24
)
