package ppdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ieee80211aphy/rate"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	for _, r := range []rate.Rate{rate.Rate1_2BPSK, rate.Rate3_4QAM16, rate.Rate2_3QAM64} {
		h := Header{Rate: r, Length: 100}
		bits, err := EncodeHeader(h)
		require.NoError(t, err)
		got, err := DecodeHeader(bits)
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}

func TestHeaderDecodeDetectsBitFlip(t *testing.T) {
	h := Header{Rate: rate.Rate1_2BPSK, Length: 3}
	bits, err := EncodeHeader(h)
	require.NoError(t, err)
	bits[2] ^= 1
	_, err = DecodeHeader(bits)
	assert.ErrorIs(t, err, ErrBadParity)
}

func TestDataFieldRoundTripScenarioOne(t *testing.T) {
	p, err := rate.Lookup(rate.Rate1_2BPSK)
	require.NoError(t, err)
	payload := []byte("ABC")
	coded, err := EncodeDataField(payload, p, scrambler_testSeed)
	require.NoError(t, err)
	back, err := DecodeDataField(coded, p, len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

func TestDataFieldRoundTripScenarioTwo(t *testing.T) {
	p, err := rate.Lookup(rate.Rate3_4QAM16)
	require.NoError(t, err)
	payload := make([]byte, 64)
	coded, err := EncodeDataField(payload, p, scrambler_testSeed)
	require.NoError(t, err)
	back, err := DecodeDataField(coded, p, len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

func TestDataFieldRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		rates := []rate.Rate{
			rate.Rate1_2BPSK, rate.Rate2_3BPSK, rate.Rate3_4BPSK,
			rate.Rate1_2QPSK, rate.Rate2_3QPSK, rate.Rate3_4QPSK,
			rate.Rate1_2QAM16, rate.Rate2_3QAM16, rate.Rate3_4QAM16,
			rate.Rate2_3QAM64, rate.Rate3_4QAM64,
		}
		r := rates[rapid.IntRange(0, len(rates)-1).Draw(tt, "rate")]
		p, err := rate.Lookup(r)
		require.NoError(tt, err)
		n := rapid.IntRange(0, 40).Draw(tt, "n")
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 255).Draw(tt, "byte"))
		}
		seed := byte(rapid.IntRange(1, 127).Draw(tt, "seed"))
		coded, err := EncodeDataField(payload, p, seed)
		require.NoError(tt, err)
		back, err := DecodeDataField(coded, p, len(payload))
		require.NoError(tt, err)
		assert.Equal(tt, payload, back)
	})
}

func TestDataFieldDetectsCorruption(t *testing.T) {
	p, err := rate.Lookup(rate.Rate1_2BPSK)
	require.NoError(t, err)
	payload := []byte("hello world")
	coded, err := EncodeDataField(payload, p, scrambler_testSeed)
	require.NoError(t, err)
	for i := 100; i < 140 && i < len(coded); i++ {
		coded[i] ^= 1
	}
	_, err = DecodeDataField(coded, p, len(payload))
	assert.ErrorIs(t, err, ErrCRCMismatch)
}

const scrambler_testSeed = 0x5D
