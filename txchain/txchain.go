// Package txchain assembles a complete transmittable PPDU waveform: the
// fixed preamble, the SIGNAL symbol, and the DATA symbols, each OFDM
// symbol built by interleaving and mapping coded bits onto subcarriers
// and running the inverse FFT, with a cyclic prefix copied ahead of
// every symbol. Mirrors the reference implementation's frame_builder:
// "ppdu encode -> symbol_mapper.map -> ifft.inverse -> cyclic prefix ->
// preamble prepend".
package txchain

import (
	"fmt"

	"ieee80211aphy/coding"
	"ieee80211aphy/fftkernel"
	"ieee80211aphy/interleave"
	"ieee80211aphy/modulate"
	"ieee80211aphy/ppdu"
	"ieee80211aphy/preamble"
	"ieee80211aphy/rate"
	"ieee80211aphy/scrambler"
)

// symbolsFromBits splits a bitstream into per-OFDM-symbol groups of cbps
// bits, interleaves each group, and maps it into 48 data constellation
// points.
func symbolsFromBits(bits []byte, cbps, bpsc int) ([][48]complex128, error) {
	if len(bits)%cbps != 0 {
		return nil, fmt.Errorf("txchain: bitstream length %d not a multiple of cbps %d", len(bits), cbps)
	}
	n := len(bits) / cbps
	out := make([][48]complex128, n)
	pointsPerSym := cbps / bpsc
	if pointsPerSym != 48 {
		return nil, fmt.Errorf("txchain: cbps/bpsc = %d, want 48", pointsPerSym)
	}
	for s := 0; s < n; s++ {
		group := bits[s*cbps : (s+1)*cbps]
		interleaved := interleave.Interleave(group, cbps, bpsc)
		var sym [48]complex128
		for i := 0; i < 48; i++ {
			point, err := modulate.Map(interleaved[i*bpsc:(i+1)*bpsc], bpsc)
			if err != nil {
				return nil, err
			}
			sym[i] = point
		}
		out[s] = sym
	}
	return out, nil
}

// ofdmSymbolToWaveform maps one 48-point data (or SIGNAL) symbol into a
// 64-bin frequency domain frame, inverse-transforms it, and prepends its
// cyclic prefix, returning 80 time-domain samples.
func ofdmSymbolToWaveform(data [48]complex128, ofdmSymbolIndex int) [80]complex128 {
	bins := modulate.BuildSymbol(data, ofdmSymbolIndex)
	buf := bins // copy, Inverse mutates in place
	timeSlice := buf[:]
	fftkernel.Inverse(timeSlice)
	var out [80]complex128
	copy(out[:preamble.CPLength], buf[fftkernel.N-preamble.CPLength:])
	copy(out[preamble.CPLength:], buf[:])
	return out
}

// BuildFrame encodes payload at rate r into a complete transmittable
// waveform: preamble, SIGNAL symbol, and DATA symbols, concatenated in
// time order and ready for a Sink to transmit.
func BuildFrame(payload []byte, r rate.Rate, seed byte) ([]complex128, error) {
	p, err := rate.Lookup(r)
	if err != nil {
		return nil, err
	}
	if len(payload) > 0xFFF {
		return nil, fmt.Errorf("txchain: BuildFrame: payload too long (%d bytes)", len(payload))
	}

	header := ppdu.Header{Rate: r, Length: len(payload)}
	headerBits, err := ppdu.EncodeHeader(header)
	if err != nil {
		return nil, err
	}
	// SIGNAL field is always encoded rate 1/2 BPSK, unpunctured.
	signalCoded := coding.Encode(headerBits[:])
	signalSymbols, err := symbolsFromBits(signalCoded, 48, 1)
	if err != nil {
		return nil, err
	}

	dataCoded, err := ppdu.EncodeDataField(payload, p, seed)
	if err != nil {
		return nil, err
	}
	dataSymbols, err := symbolsFromBits(dataCoded, p.CBPS, p.BPSC)
	if err != nil {
		return nil, err
	}

	out := append([]complex128{}, preambleSlice()...)
	for i, sym := range signalSymbols {
		w := ofdmSymbolToWaveform(sym, i)
		out = append(out, w[:]...)
	}
	for i, sym := range dataSymbols {
		w := ofdmSymbolToWaveform(sym, len(signalSymbols)+i)
		out = append(out, w[:]...)
	}
	return out, nil
}

func preambleSlice() []complex128 {
	s := preamble.Samples()
	return s[:]
}

// DefaultSeed is the scrambler seed BuildFrame's callers typically pass;
// re-exported here so cmd/phyctl doesn't need to import scrambler just
// for this one constant.
const DefaultSeed = scrambler.DefaultSeed
