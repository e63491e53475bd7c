package interleave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestInterleaveDeinterleaveRoundTrip(t *testing.T) {
	cases := []struct{ cbps, bpsc int }{
		{48, 1}, {96, 2}, {192, 4}, {288, 6},
	}
	for _, c := range cases {
		rapid.Check(t, func(tt *rapid.T) {
			bits := make([]byte, c.cbps)
			for i := range bits {
				bits[i] = byte(rapid.IntRange(0, 1).Draw(tt, "bit"))
			}
			interleaved := Interleave(bits, c.cbps, c.bpsc)
			back := Deinterleave(interleaved, c.cbps, c.bpsc)
			assert.Equal(tt, bits, back)
		})
	}
}

func TestInterleaveIsPermutation(t *testing.T) {
	cbps, bpsc := 192, 4
	bits := make([]byte, cbps)
	for i := range bits {
		bits[i] = 1
	}
	bits[5] = 0
	out := Interleave(bits, cbps, bpsc)
	zeroCount := 0
	for _, b := range out {
		if b == 0 {
			zeroCount++
		}
	}
	assert.Equal(t, 1, zeroCount)
}
