package rxchain

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// chanCap is the Go channel buffer used between stages. It stands in
// for the reference implementation's per-stage BUFFER_MAX-sized
// ring buffer; a full channel here means the same thing a full
// input_buffer meant there, a producer stalls until its consumer
// drains it.
const chanCap = 4096

// stageBudget is the nominal per-batch processing time a stage should
// stay under to keep up with a 5Msps stream without building an
// ever-growing channel backlog, mirroring receiver_chain.cpp's
// run_block budget check against the sample rate. It's deliberately
// generous (this is a diagnostic, not a real-time deadline enforced by
// the Go scheduler).
const stageBudget = 10 * time.Millisecond

func timeStage(name string, fn func()) {
	start := time.Now()
	fn()
	if elapsed := time.Since(start); elapsed > stageBudget {
		log.Debug("stage overran budget", "stage", name, "elapsed", elapsed, "budget", stageBudget)
	}
}

// Chain wires the six receive stages into a goroutine pipeline modeled
// on the reference receiver_chain.cpp, connected by bounded channels
// instead of semaphore-guarded buffers. It runs four goroutines: the
// detector; timing sync, channel estimation and FFT symbols together
// (runMiddle); the phase tracker; and the frame decoder.
// Each goroutine blocks on its input channel, processes whatever
// batch it received, and pushes results downstream, so back-pressure
// propagates the same way the original's wake/done signal pairs did.
type Chain struct {
	detector     *Detector
	timingSync   *TimingSync
	fftSymbols   *FFTSymbols
	channelEst   *ChannelEst
	phaseTracker *PhaseTracker
	frameDecoder *FrameDecoder

	Frames chan DecodedFrame
	Errors chan error
}

// NewChain builds a fresh receive pipeline.
func NewChain() *Chain {
	ce := NewChannelEst()
	return &Chain{
		detector:     NewDetector(),
		timingSync:   NewTimingSync(),
		fftSymbols:   NewFFTSymbols(),
		channelEst:   ce,
		phaseTracker: NewPhaseTracker(ce),
		frameDecoder: NewFrameDecoder(),
		Frames:       make(chan DecodedFrame, chanCap),
		Errors:       make(chan error, chanCap),
	}
}

// Run drives samples from in through every stage until ctx is canceled
// or in is closed, publishing decoded frames on c.Frames and stage
// errors on c.Errors. Run blocks; call it from its own goroutine.
func (c *Chain) Run(ctx context.Context, in <-chan []complex128) {
	defer close(c.Frames)
	defer close(c.Errors)

	tagged := make(chan []TaggedSample, chanCap)
	symbols := make(chan []Symbol64, chanCap)
	data := make(chan []Symbol48, chanCap)

	done := make(chan struct{})
	go func() {
		defer close(tagged)
		c.runDetector(ctx, in, tagged)
	}()
	go func() {
		defer close(symbols)
		c.runMiddle(ctx, tagged, symbols)
	}()
	go func() {
		defer close(data)
		c.runPhaseTracker(ctx, symbols, data)
	}()
	go func() {
		defer close(done)
		c.runFrameDecoder(ctx, data)
	}()

	<-done
}

func (c *Chain) runDetector(ctx context.Context, in <-chan []complex128, out chan<- []TaggedSample) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-in:
			if !ok {
				return
			}
			var ts []TaggedSample
			var err error
			timeStage("detector", func() { ts, err = c.detector.Feed(batch) })
			if err != nil {
				c.sendErr(ctx, err)
				return
			}
			if len(ts) > 0 {
				select {
				case out <- ts:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// runMiddle runs TimingSync, then fans its output to FFTSymbols and
// ChannelEst (both consume the same tagged stream independently), and
// forwards FFTSymbols' Symbol64 output downstream.
func (c *Chain) runMiddle(ctx context.Context, in <-chan []TaggedSample, out chan<- []Symbol64) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-in:
			if !ok {
				return
			}
			var synced []TaggedSample
			var err error
			timeStage("timingsync", func() { synced, err = c.timingSync.Feed(batch) })
			if err != nil {
				c.sendErr(ctx, err)
				return
			}
			if len(synced) == 0 {
				continue
			}
			var ceErr error
			timeStage("channelest", func() { ceErr = c.channelEst.Feed(synced) })
			if ceErr != nil {
				c.sendErr(ctx, ceErr)
				return
			}
			var syms []Symbol64
			timeStage("fftsymbols", func() { syms, err = c.fftSymbols.Feed(synced) })
			if err != nil {
				c.sendErr(ctx, err)
				return
			}
			if len(syms) > 0 {
				select {
				case out <- syms:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (c *Chain) runPhaseTracker(ctx context.Context, in <-chan []Symbol64, out chan<- []Symbol48) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-in:
			if !ok {
				return
			}
			var syms []Symbol48
			timeStage("phasetracker", func() { syms = c.phaseTracker.Feed(batch) })
			if len(syms) > 0 {
				select {
				case out <- syms:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (c *Chain) runFrameDecoder(ctx context.Context, in <-chan []Symbol48) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-in:
			if !ok {
				return
			}
			var frames []DecodedFrame
			timeStage("framedecoder", func() { frames = c.frameDecoder.Feed(batch) })
			for _, frame := range frames {
				select {
				case c.Frames <- frame:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (c *Chain) sendErr(ctx context.Context, err error) {
	select {
	case c.Errors <- err:
	case <-ctx.Done():
	}
}
