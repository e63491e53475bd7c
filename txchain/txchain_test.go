package txchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ieee80211aphy/preamble"
	"ieee80211aphy/rate"
)

func TestBuildFrameScenarioOneLength(t *testing.T) {
	payload := []byte("ABC")
	samples, err := BuildFrame(payload, rate.Rate1_2BPSK, DefaultSeed)
	require.NoError(t, err)

	// 16 (service) + 8*(3+4) (PSDU incl. CRC-32) + 6 (tail) = 78 bits,
	// padded to ceil(78/24)=4 symbols at DBPS=24 for 1/2 BPSK: one
	// SIGNAL symbol plus 4 DATA symbols after the 320-sample preamble.
	want := preamble.Length + 80*(1+4)
	assert.Equal(t, want, len(samples))
}

func TestBuildFrameScenarioTwoLength(t *testing.T) {
	payload := make([]byte, 64)
	samples, err := BuildFrame(payload, rate.Rate3_4QAM16, DefaultSeed)
	require.NoError(t, err)

	// 16 + 8*(64+4) + 6 = 566 bits, padded to ceil(566/144)=4 symbols
	// at DBPS=144 for 3/4 16-QAM.
	want := preamble.Length + 80*(1+4)
	assert.Equal(t, want, len(samples))
}

func TestBuildFrameRejectsOversizePayload(t *testing.T) {
	_, err := BuildFrame(make([]byte, 0x1000), rate.Rate1_2BPSK, DefaultSeed)
	assert.Error(t, err)
}
