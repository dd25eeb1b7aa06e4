package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-sampling-lab/internal/testutil"
)

func TestDecimate_HalvesEvenSeries(t *testing.T) {
	for _, freq := range []float64{0, 1, 10, 40} {
		s := Sinusoid(freq, defaultParams())
		require.True(t, s.Len()%2 == 0)

		d := Decimate(s)
		assert.Equal(t, s.Len()/2, d.Len(), "frequency %g Hz", freq)
		require.NoError(t, d.Validate())
		testutil.AssertSubsequence(t, s.T, d.T)
	}
}

func TestDecimate_KeepsEvenIndices(t *testing.T) {
	s := Series{
		T: []float64{0, 1, 2, 3, 4},
		Y: []float64{10, 11, 12, 13, 14},
	}

	d := Decimate(s)
	assert.Equal(t, []float64{0, 2, 4}, d.T, "ceil(5/2) samples")
	assert.Equal(t, []float64{10, 12, 14}, d.Y)
}

func TestDecimate_DoesNotAlias(t *testing.T) {
	s := Series{T: []float64{0, 1, 2, 3}, Y: []float64{5, 6, 7, 8}}
	orig := Series{T: slices.Clone(s.T), Y: slices.Clone(s.Y)}

	d := Decimate(s)
	d.Y[0] = 100

	assert.Equal(t, orig, s, "input must not change")
}

func TestDecimate_Edges(t *testing.T) {
	empty := Decimate(Series{})
	assert.Zero(t, empty.Len())

	one := Decimate(Series{T: []float64{0.5}, Y: []float64{2}})
	assert.Equal(t, []float64{0.5}, one.T)
	assert.Equal(t, []float64{2}, one.Y)
}
