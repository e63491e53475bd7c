package scrambler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func bitsFromByte(b byte) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = (b >> (7 - i)) & 1
	}
	return out
}

func TestScrambleIsIdempotentUnderReapplication(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		seed := byte(rapid.IntRange(1, 127).Draw(tt, "seed"))
		n := rapid.IntRange(0, 500).Draw(tt, "n")
		bits := make([]byte, n)
		for i := range bits {
			bits[i] = byte(rapid.IntRange(0, 1).Draw(tt, "bit"))
		}
		scrambled := Scramble(bits, seed)
		back := Scramble(scrambled, seed)
		assert.Equal(tt, bits, back)
	})
}

func TestRecoverSeedFromKnownZeroPrefix(t *testing.T) {
	for seed := byte(1); seed < 0x80; seed++ {
		zeros := make([]byte, 7)
		scrambled := Scramble(zeros, seed)
		got := RecoverSeed(scrambled)
		require.Equal(t, seed, got, "seed 0x%02x", seed)
	}
}

func TestLFSRPeriodDividesMax(t *testing.T) {
	l := New(0x7F)
	start := l.State()
	steps := 0
	for {
		l.Next()
		steps++
		if l.State() == start || steps > 200 {
			break
		}
	}
	assert.LessOrEqual(t, steps, 127)
}

func TestPilotPolarityIsUnitMagnitude(t *testing.T) {
	for i := 0; i < 300; i++ {
		p := PilotPolarity(i)
		assert.True(t, p == 1 || p == -1)
	}
}

func TestPilotPolarityPeriodic127(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, PilotPolarity(i), PilotPolarity(i+127))
	}
}
