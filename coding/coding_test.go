package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEncodeDecodeRoundTripNoNoise(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		n := rapid.IntRange(1, 200).Draw(tt, "n")
		bits := make([]byte, n)
		for i := range bits {
			bits[i] = byte(rapid.IntRange(0, 1).Draw(tt, "bit"))
		}
		coded := Encode(bits)
		decoded := Decode(coded)
		assert.Equal(tt, bits, decoded)
	})
}

func TestPunctureDepunctureRoundTrip2_3(t *testing.T) {
	// 2/3 pattern: keep A0,B0,A1, drop B1 (period 2 input bits).
	pattern := []bool{true, true, true, false}
	bits := []byte{1, 0, 1, 1, 0, 0}
	coded := Encode(bits)
	punctured := Puncture(coded, pattern)
	depunctured := Depuncture(punctured, pattern, len(coded))
	assert.Equal(t, len(coded), len(depunctured))
	decoded := Decode(depunctured)
	assert.Equal(t, bits, decoded)
}

func TestDecodeCorrectsSingleBitError(t *testing.T) {
	bits := []byte{1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0}
	coded := Encode(bits)
	coded[10] ^= 1
	decoded := Decode(coded)
	assert.Equal(t, bits, decoded)
}
