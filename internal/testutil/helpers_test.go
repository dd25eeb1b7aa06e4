package testutil

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingT captures failure output instead of failing the test.
type recordingT struct {
	messages []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) output() string {
	return strings.Join(r.messages, "\n")
}

// TestHelpers_ForwardMessages tests that every failing helper reports the
// caller's formatted message along with its own description.
func TestHelpers_ForwardMessages(t *testing.T) {
	tests := []struct {
		name   string
		check  func(t TestingT) bool
		reason string
	}{
		{"NoNaNOrInf", func(t TestingT) bool {
			return AssertNoNaNOrInf(t, []float64{0, math.NaN()}, "frequency %g Hz", 7.0)
		}, "found NaN: s[1]"},
		{"AllInRange", func(t TestingT) bool {
			return AssertAllInRange(t, []float64{0, 3}, -1, 1, "frequency %g Hz", 7.0)
		}, "value out of range: s[1]"},
		{"StrictlyIncreasing", func(t TestingT) bool {
			return AssertStrictlyIncreasing(t, []float64{0, 1, 1}, "frequency %g Hz", 7.0)
		}, "not strictly increasing"},
		{"BitIdentical", func(t TestingT) bool {
			return AssertBitIdentical(t, []float64{1, 2}, []float64{1, 3}, "frequency %g Hz", 7.0)
		}, "bits differ at index 1"},
		{"RelativeError", func(t TestingT) bool {
			return AssertRelativeError(t, 1, 2, 1e-3, "frequency %g Hz", 7.0)
		}, "relative error"},
		{"EvenLength", func(t TestingT) bool {
			return AssertEvenLength(t, []float64{1, 2, 3}, "frequency %g Hz", 7.0)
		}, "slice length 3 is not even"},
		{"InRange", func(t TestingT) bool {
			return AssertInRange(t, 5, 0, 1, "frequency %g Hz", 7.0)
		}, "value out of range: 5.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingT{}
			assert.False(t, tt.check(rec))
			assert.Contains(t, rec.output(), tt.reason)
			assert.Contains(t, rec.output(), "frequency 7 Hz")
		})
	}
}

func TestHelpers_PassingChecksStaySilent(t *testing.T) {
	rec := &recordingT{}

	assert.True(t, AssertNoNaNOrInf(rec, []float64{0, 1}, "unused"))
	assert.True(t, AssertAllInRange(rec, []float64{-1, 1}, -1, 1, "unused"))
	assert.True(t, AssertStrictlyIncreasing(rec, []float64{0, 1, 2}, "unused"))
	assert.True(t, AssertEvenLength(rec, []float64{1, 2}, "unused"))
	assert.True(t, AssertInRange(rec, 0.5, 0, 1, "unused"))
	assert.True(t, AssertRelativeError(rec, 1, 1+1e-12, 1e-9, "unused"))

	assert.Empty(t, rec.messages)
}
