package sampling

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	assert.InDelta(t, 100.0, c.SampleRate, 0)
	assert.InDelta(t, 1.0, c.Amplitude, 0)
	assert.InDelta(t, 0.0, c.Phase, 0)
	assert.Equal(t, 30, c.Periods)
	assert.False(t, c.EnableParallel)

	assert.InDelta(t, 50.0, c.MaxFrequency(), 0)
	assert.InDelta(t, 25.0, c.DecimatedNyquist(), 0)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"Zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"Negative sample rate", func(c *Config) { c.SampleRate = -100 }},
		{"Infinite sample rate", func(c *Config) { c.SampleRate = math.Inf(1) }},
		{"Zero periods", func(c *Config) { c.Periods = 0 }},
		{"NaN amplitude", func(c *Config) { c.Amplitude = math.NaN() }},
		{"Infinite phase", func(c *Config) { c.Phase = math.Inf(-1) }},
		{"Negative max workers", func(c *Config) { c.MaxWorkers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)

			_, err := New(c)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_Workers(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, runtime.GOMAXPROCS(0), c.Workers(), "zero means GOMAXPROCS")

	c.MaxWorkers = 3
	assert.Equal(t, 3, c.Workers())

	tests := []struct {
		name  string
		freqs int
		want  int
	}{
		{"Fewer frequencies than workers", 2, 2},
		{"Capped at MaxWorkers", 1000, 3},
		{"Never below one", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.workerLimit(tt.freqs))
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_CopiesConfig(t *testing.T) {
	c := DefaultConfig()
	a, err := New(c)
	require.NoError(t, err)

	c.SampleRate = 1
	assert.InDelta(t, 100.0, a.Config().SampleRate, 0)
}

// TestCheckFrequency tests the input-boundary range check.
func TestCheckFrequency(t *testing.T) {
	c := DefaultConfig()

	for _, f := range []float64{0, 0.5, 25, 49.99, 50} {
		assert.NoError(t, c.CheckFrequency(f), "%g Hz", f)
	}

	for _, f := range []float64{-0.001, -10, 50.0001, 100, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, c.CheckFrequency(f), ErrFrequencyOutOfRange, "%g Hz", f)
	}
}

func TestFrequencyRange(t *testing.T) {
	freqs, err := FrequencyRange(0, 50, 1)
	require.NoError(t, err)
	assert.Len(t, freqs, 51)
	assert.Equal(t, freqs, DefaultSweep())

	_, err = FrequencyRange(10, 0, 1)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = FrequencyRange(0, 10, 0)
	require.ErrorIs(t, err, ErrInvalidRange)
}
