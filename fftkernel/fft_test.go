package fftkernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		var td [N]complex128
		for i := range td {
			re := rapid.Float64Range(-10, 10).Draw(tt, "re")
			im := rapid.Float64Range(-10, 10).Draw(tt, "im")
			td[i] = complex(re, im)
		}
		orig := td
		Forward(&td)
		buf := td[:]
		Inverse(buf)
		for i := range td {
			assert.InDelta(tt, real(orig[i]), real(td[i]), 1e-9)
			assert.InDelta(tt, imag(orig[i]), imag(td[i]), 1e-9)
		}
	})
}

func TestToBinIndexRange(t *testing.T) {
	seen := make(map[int]bool)
	for k := -32; k <= 31; k++ {
		pos := ToBinIndex(k)
		assert.GreaterOrEqual(t, pos, 0)
		assert.Less(t, pos, N)
		seen[pos] = true
	}
	assert.Len(t, seen, N)
}

func TestForwardOfImpulseIsFlat(t *testing.T) {
	var td [N]complex128
	td[0] = complex(1, 0)
	Forward(&td)
	for _, s := range td {
		assert.InDelta(t, 1.0, math.Hypot(real(s), imag(s)), 1e-9)
	}
}
