// Command phyctl drives a HackRF through the 802.11a PHY: tx mode
// builds one frame and transmits it on a loop, rx mode opens the
// receive chain and logs every decoded frame, following the teacher's
// flag-driven, signal-terminated style.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"ieee80211aphy/rate"
	"ieee80211aphy/rxchain"
	"ieee80211aphy/sdr"
	"ieee80211aphy/sigwait"
	"ieee80211aphy/txchain"
)

func main() {
	mode := flag.String("mode", "tx", "tx or rx")
	freqHz := flag.Uint64("freq", 2_412_000_000, "center frequency in Hz")
	sampleRate := flag.Float64("sample-rate", 5_000_000, "sample rate in samples/second")
	txGain := flag.Int("tx-gain", 20, "TX VGA gain (0-47)")
	rxGain := flag.Int("rx-gain", 20, "RX LNA gain (0-40)")
	txAmp := flag.Float64("tx-amp", 1.0, "digital amplitude scaling before quantization")
	payload := flag.String("payload", "hello 802.11a", "tx mode: payload bytes to send, as text")
	rateName := flag.String("rate", "1/2 BPSK", "tx mode: PHY rate name, e.g. \"1/2 BPSK\", \"3/4 16-QAM\"")
	flag.Parse()

	logger := log.New(os.Stderr)
	logger.SetLevel(log.InfoLevel)

	dev, err := sdr.Open(
		sdr.WithFreq(*freqHz),
		sdr.WithSampleRate(*sampleRate),
		sdr.WithTXGain(*txGain),
		sdr.WithRXGain(*rxGain),
		sdr.WithTXAmp(*txAmp),
	)
	if err != nil {
		logger.Fatal("failed to open device", "err", err)
	}
	defer dev.Close()

	switch *mode {
	case "tx":
		runTX(logger, dev, *payload, *rateName)
	case "rx":
		runRX(logger, dev)
	default:
		logger.Fatal("unknown mode", "mode", *mode)
	}
}

func runTX(logger *log.Logger, dev *sdr.HackRF, payload, rateName string) {
	r, err := rateByName(rateName)
	if err != nil {
		logger.Fatal("bad rate", "err", err)
	}
	waveform, err := txchain.BuildFrame([]byte(payload), r, txchain.DefaultSeed)
	if err != nil {
		logger.Fatal("failed to build frame", "err", err)
	}
	logger.Info("transmitting", "rate", rateName, "bytes", len(payload), "samples", len(waveform))

	if err := dev.Send(waveform); err != nil {
		logger.Fatal("failed to start TX", "err", err)
	}
	logger.Info("transmission is live and looping, press Ctrl+C to stop")
	sigwait.WaitForSignal()
	logger.Info("stopping transmission")
}

func runRX(logger *log.Logger, dev *sdr.HackRF) {
	if err := dev.StartRX(); err != nil {
		logger.Fatal("failed to start RX", "err", err)
	}
	logger.Info("receiving, press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chain := rxchain.NewChain()
	samples := make(chan []complex128, 16)
	go func() {
		defer close(samples)
		for {
			batch, err := dev.Recv(ctx)
			if err != nil {
				return
			}
			select {
			case samples <- batch:
			case <-ctx.Done():
				return
			}
		}
	}()

	go chain.Run(ctx, samples)

	go func() {
		for err := range chain.Errors {
			logger.Warn("stage error", "err", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for frame := range chain.Frames {
			if frame.Err != nil {
				logger.Warn("frame decode failed", "err", frame.Err)
				continue
			}
			logger.Info("frame decoded", "rate", frame.Header.Rate, "bytes", len(frame.Payload))
		}
	}()

	sigwait.WaitForSignal()
	cancel()
	<-done
}

func rateByName(name string) (rate.Rate, error) {
	for _, r := range []rate.Rate{
		rate.Rate1_2BPSK, rate.Rate2_3BPSK, rate.Rate3_4BPSK,
		rate.Rate1_2QPSK, rate.Rate2_3QPSK, rate.Rate3_4QPSK,
		rate.Rate1_2QAM16, rate.Rate2_3QAM16, rate.Rate3_4QAM16,
		rate.Rate2_3QAM64, rate.Rate3_4QAM64,
	} {
		p, err := rate.Lookup(r)
		if err != nil {
			continue
		}
		if p.Name == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("phyctl: unknown rate %q", name)
}
