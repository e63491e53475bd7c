// Package sdr wraps the samuel/go-hackrf driver behind the Sink/Source
// interfaces txchain and rxchain need: a callback-driven TX sample
// source and an RX sample sink, with the center frequency, sample rate,
// gain, and digital amplitude scaling the reference implementation's
// usrp_params exposes, applied through functional options in the
// teacher's style.
package sdr

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samuel/go-hackrf/hackrf"
)

// Params holds the radio configuration. Defaults match the reference
// implementation's usrp_params: a 5.72GHz center frequency and 5Msps
// sample rate (usrp.h).
type Params struct {
	FreqHz     uint64
	SampleRate float64
	TXGain     int
	RXGain     int
	TXAmp      float64 // digital amplitude scaling applied before DAC quantization
	DeviceAddr string
}

// Option configures a Params.
type Option func(*Params)

// WithFreq sets the center frequency in Hz.
func WithFreq(hz uint64) Option { return func(p *Params) { p.FreqHz = hz } }

// WithSampleRate sets the sample rate in samples/second.
func WithSampleRate(sps float64) Option { return func(p *Params) { p.SampleRate = sps } }

// WithTXGain sets the TX VGA gain (0-47 dB on HackRF).
func WithTXGain(db int) Option { return func(p *Params) { p.TXGain = db } }

// WithRXGain sets the RX LNA gain.
func WithRXGain(db int) Option { return func(p *Params) { p.RXGain = db } }

// WithTXAmp sets the digital amplitude scaling factor applied to every
// I/Q sample before it is quantized to the device's wire format.
func WithTXAmp(amp float64) Option { return func(p *Params) { p.TXAmp = amp } }

// WithDeviceAddr records a HackRF serial number in Params.DeviceAddr.
// Open does not use it: it always opens the first available device.
func WithDeviceAddr(addr string) Option { return func(p *Params) { p.DeviceAddr = addr } }

// DefaultParams mirrors usrp_params' defaults. 5.72GHz lies within the
// HackRF's tuning range, so the original's center frequency is kept.
func DefaultParams() Params {
	return Params{
		FreqHz:     5_720_000_000, // within HackRF's ~6GHz ceiling
		SampleRate: 5_000_000,
		TXGain:     20,
		RXGain:     20,
		TXAmp:      1.0,
	}
}

// Sink transmits a burst of baseband I/Q samples.
type Sink interface {
	// Send queues samples for transmission without waiting for
	// completion.
	Send(samples []complex128) error
	// SendSync transmits samples and blocks until the burst has been
	// fully drained to the device, mirroring usrp::send_burst_sync.
	SendSync(ctx context.Context, samples []complex128) error
}

// Source receives a stream of baseband I/Q samples.
type Source interface {
	// Recv blocks until at least one sample is available or ctx is
	// done, returning the samples received so far.
	Recv(ctx context.Context) ([]complex128, error)
	// Events returns a channel of asynchronous resource errors
	// (overflow/underflow) the device reports outside the normal
	// Send/Recv call path.
	Events() <-chan error
}

// HackRF is a Sink and Source backed by one physical HackRF device.
type HackRF struct {
	params Params
	dev    *hackrf.Device

	txBuf    []complex128
	txIdx    int
	txBurst  int // remaining samples in the current SendSync burst
	txDone   chan error

	rxChan chan complex128
	events chan error
}

// Open initializes the HackRF library (process-wide; safe to call once
// per process) and opens a device, configuring it per opts over
// DefaultParams.
func Open(opts ...Option) (*HackRF, error) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	if err := hackrf.Init(); err != nil {
		return nil, fmt.Errorf("sdr: hackrf.Init: %w", err)
	}
	dev, err := hackrf.Open()
	if err != nil {
		return nil, fmt.Errorf("sdr: hackrf.Open: %w", err)
	}

	dev.SetFreq(p.FreqHz)
	dev.SetSampleRate(p.SampleRate)
	dev.SetTXVGAGain(p.TXGain)
	dev.SetLNAGain(p.RXGain)
	dev.SetAmpEnable(true)

	h := &HackRF{
		params: p,
		dev:    dev,
		rxChan: make(chan complex128, 1<<20),
		events: make(chan error, 64),
	}
	logStatus(p)
	return h, nil
}

// Close stops any active transfer and releases the device.
func (h *HackRF) Close() error {
	h.dev.StopTX()
	h.dev.StopRX()
	err := h.dev.Close()
	hackrf.Exit()
	return err
}

// Send starts (or replaces) a looping non-blocking transmit of samples,
// matching the teacher's StartTX callback: each callback invocation
// quantizes the next chunk of the precomputed buffer to signed 8-bit
// I/Q, scaled by params.TXAmp.
func (h *HackRF) Send(samples []complex128) error {
	h.txBuf = samples
	h.txIdx = 0
	h.txBurst = 0
	return h.startTX()
}

// SendSync transmits samples once and blocks until the burst completes
// or is canceled, mirroring usrp::send_burst_sync's ACK-wait semantics.
func (h *HackRF) SendSync(ctx context.Context, samples []complex128) error {
	h.txBuf = samples
	h.txIdx = 0
	h.txBurst = len(samples)
	h.txDone = make(chan error, 1)

	if err := h.startTX(); err != nil {
		return err
	}
	select {
	case err := <-h.txDone:
		h.dev.StopTX()
		return err
	case <-ctx.Done():
		h.dev.StopTX()
		return ctx.Err()
	}
}

const quantizationScale = 110.0 // digital gain applied before int8 quantization, per the teacher's StartTX

// quantize clamps x*quantizationScale to the signed 8-bit range before
// narrowing, so an over-amplitude sample saturates instead of wrapping
// sign through Go's int8 conversion.
func quantize(x float64) byte {
	v := x * quantizationScale
	switch {
	case v > 127:
		v = 127
	case v < -128:
		v = -128
	}
	return byte(int8(v))
}

func (h *HackRF) startTX() error {
	return h.dev.StartTX(func(buf []byte) error {
		n := len(buf) / 2
		for i := 0; i < n; i++ {
			if len(h.txBuf) == 0 {
				buf[2*i], buf[2*i+1] = 0, 0
				continue
			}
			sample := h.txBuf[h.txIdx] * complex(h.params.TXAmp, 0)
			buf[2*i] = quantize(real(sample))
			buf[2*i+1] = quantize(imag(sample))
			h.txIdx = (h.txIdx + 1) % len(h.txBuf)

			if h.txBurst > 0 {
				h.txBurst--
				if h.txBurst == 0 && h.txDone != nil {
					select {
					case h.txDone <- nil:
					default:
					}
					return errors.New("sdr: burst complete")
				}
			}
		}
		return nil
	})
}

// Recv blocks until samples are available from the receive stream
// started by StartRX, or ctx is done.
func (h *HackRF) Recv(ctx context.Context) ([]complex128, error) {
	select {
	case s := <-h.rxChan:
		out := []complex128{s}
		for {
			select {
			case s := <-h.rxChan:
				out = append(out, s)
			default:
				return out, nil
			}
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Events returns the asynchronous resource-error channel.
func (h *HackRF) Events() <-chan error { return h.events }

// StartRX begins streaming received samples into the Recv buffer,
// converting each pair of signed 8-bit I/Q values back into a unit-scale
// complex128.
func (h *HackRF) StartRX() error {
	return h.dev.StartRX(func(buf []byte) error {
		n := len(buf) / 2
		for i := 0; i < n; i++ {
			re := float64(int8(buf[2*i])) / 127.0
			im := float64(int8(buf[2*i+1])) / 127.0
			select {
			case h.rxChan <- complex(re, im):
			default:
				select {
				case h.events <- fmt.Errorf("sdr: RX overflow, sample dropped"):
				default:
				}
			}
		}
		return nil
	})
}

var _ Sink = (*HackRF)(nil)
var _ Source = (*HackRF)(nil)

// logStatus emits a structured startup log line in the teacher's style.
func logStatus(p Params) {
	log.Info("hackrf configured", "freq_hz", p.FreqHz, "sample_rate", p.SampleRate, "tx_gain", p.TXGain, "rx_gain", p.RXGain, "tx_amp", p.TXAmp)
}
