package sdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 5_000_000.0, p.SampleRate)
	assert.Equal(t, 1.0, p.TXAmp)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	p := DefaultParams()
	for _, opt := range []Option{
		WithFreq(2_412_000_000),
		WithSampleRate(10_000_000),
		WithTXGain(30),
		WithRXGain(10),
		WithTXAmp(0.5),
		WithDeviceAddr("0000000000000000457863dc2a9a6c6f"),
	} {
		opt(&p)
	}
	assert.Equal(t, uint64(2_412_000_000), p.FreqHz)
	assert.Equal(t, 10_000_000.0, p.SampleRate)
	assert.Equal(t, 30, p.TXGain)
	assert.Equal(t, 10, p.RXGain)
	assert.Equal(t, 0.5, p.TXAmp)
	assert.Equal(t, "0000000000000000457863dc2a9a6c6f", p.DeviceAddr)
}

func TestQuantizeSaturatesInsteadOfWrapping(t *testing.T) {
	assert.Equal(t, byte(int8(127)), quantize(2.0))   // 2.0*110 = 220, clamps to 127
	assert.Equal(t, byte(int8(-128)), quantize(-2.0)) // -220, clamps to -128
	assert.Equal(t, byte(int8(0)), quantize(0))
	assert.Equal(t, byte(int8(55)), quantize(0.5)) // within range: no clamping
}
