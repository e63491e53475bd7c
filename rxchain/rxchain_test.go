package rxchain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ieee80211aphy/rate"
	"ieee80211aphy/txchain"
)

func TestDetectorTagsSTSPlateauOnce(t *testing.T) {
	var samples []complex128
	period := []complex128{1, 1i, -1, -1i}
	for i := 0; i < 200; i++ {
		samples = append(samples, period[i%len(period)])
	}
	// Noise tail so the plateau ends.
	for i := 0; i < 40; i++ {
		samples = append(samples, complex(float64(i%7)-3, float64(i%5)-2))
	}

	d := NewDetector()
	tagged, err := d.Feed(samples)
	require.NoError(t, err)

	starts, ends := 0, 0
	for _, s := range tagged {
		switch s.Tag {
		case TagSTSStart:
			starts++
		case TagSTSEnd:
			ends++
		}
	}
	assert.Equal(t, 1, starts)
	assert.LessOrEqual(t, ends, 1)
}

func TestChainDecodesTransmittedFrame(t *testing.T) {
	payload := []byte("ABC")
	waveform, err := txchain.BuildFrame(payload, rate.Rate1_2BPSK, txchain.DefaultSeed)
	require.NoError(t, err)

	chain := NewChain()
	in := make(chan []complex128, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		in <- waveform
		close(in)
	}()

	done := make(chan struct{})
	go func() {
		chain.Run(ctx, in)
		close(done)
	}()

	select {
	case frame := <-chain.Frames:
		require.NoError(t, frame.Err)
		assert.Equal(t, payload, frame.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a decoded frame")
	}
	<-done
}

func TestBufferOverflowIsReported(t *testing.T) {
	d := NewDetector()
	huge := make([]complex128, BufferCap+1)
	_, err := d.Feed(huge)
	assert.Error(t, err)
	var overflow ErrBufferOverflow
	assert.ErrorAs(t, err, &overflow)
}
