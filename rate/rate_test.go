package rate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAllValidCodes(t *testing.T) {
	for _, r := range []Rate{
		Rate1_2BPSK, Rate2_3BPSK, Rate3_4BPSK,
		Rate1_2QPSK, Rate2_3QPSK, Rate3_4QPSK,
		Rate1_2QAM16, Rate2_3QAM16, Rate3_4QAM16,
		Rate2_3QAM64, Rate3_4QAM64,
	} {
		p, err := Lookup(r)
		require.NoError(t, err)
		assert.Equal(t, 48*p.BPSC, p.CBPS, "cbps = 48 * bpsc for %s", p.Name)
		assert.InDelta(t, float64(p.CBPS)*0.5/p.PunctureKeep, float64(p.DBPS), 1e-9, "dbps = cbps * 0.5 / punctureKeep for %s", p.Name)
	}
}

func TestLookupUnknownRate(t *testing.T) {
	_, err := Lookup(Rate(0x0))
	assert.Error(t, err)
	var unk ErrUnknownRate
	assert.ErrorAs(t, err, &unk)
}

func TestNumSymbolsScenarioOne(t *testing.T) {
	p, err := Lookup(Rate1_2BPSK)
	require.NoError(t, err)
	// 16 (service) + 8*(3+4) (PSDU incl. CRC-32) + 6 (tail) = 78 bits,
	// ceil(78/24) = 4 symbols at DBPS=24.
	assert.Equal(t, 4, p.NumSymbols(3))
}

func TestNumSymbolsScenarioTwo(t *testing.T) {
	p, err := Lookup(Rate3_4QAM16)
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumSymbols(64))
}

func TestPuncturePatternLengthsMatchPeriod(t *testing.T) {
	for _, r := range []Rate{Rate2_3BPSK, Rate3_4BPSK, Rate2_3QPSK, Rate3_4QPSK, Rate2_3QAM16, Rate3_4QAM16, Rate2_3QAM64, Rate3_4QAM64} {
		p, err := Lookup(r)
		require.NoError(t, err)
		pattern, period := p.PuncturePattern()
		require.NotNil(t, pattern)
		assert.Equal(t, period*2, len(pattern))
	}
}
