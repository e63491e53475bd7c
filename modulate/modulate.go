// Package modulate implements the 802.11a subcarrier constellation maps
// (BPSK, QPSK, 16-QAM, 64-QAM; clause 17.3.5.8) and the placement of
// data, pilot, and null subcarriers into and out of a 64-bin OFDM symbol
// (clause 17.3.5.9), reusing the FFT kernel's negative-first bin
// ordering and the scrambler's LFSR-driven pilot polarity sequence.
package modulate

import (
	"fmt"
	"math"

	"ieee80211aphy/fftkernel"
	"ieee80211aphy/scrambler"
)

// Data subcarrier indices (of 64), in transmission order, per clause
// 17.3.5.9: indices -26..-1 and +1..+26 excluding the four pilot slots
// at -21, -7, +7, +21.
var dataSubcarriers = buildDataSubcarriers()

// Pilot subcarrier indices and their fixed (pre-polarity) BPSK values.
var pilotSubcarriers = [4]int{-21, -7, 7, 21}
var pilotValues = [4]float64{1, 1, 1, -1}

func buildDataSubcarriers() []int {
	var out []int
	pilotSet := map[int]bool{-21: true, -7: true, 7: true, 21: true}
	for k := -26; k <= 26; k++ {
		if k == 0 || pilotSet[k] {
			continue
		}
		out = append(out, k)
	}
	return out
}

// amplitudeLevels maps a Gray-coded group of bits to the (unscaled,
// odd-integer) in-phase/quadrature amplitude level used by 16-QAM (2
// bits per rail) and 64-QAM (3 bits per rail), per clause 17.3.5.8
// Tables 17-9/17-10.
var amplitudeLevels2 = map[byte]float64{0b00: -3, 0b01: -1, 0b11: 1, 0b10: 3}
var amplitudeLevels3 = map[byte]float64{
	0b000: -7, 0b001: -5, 0b011: -3, 0b010: -1,
	0b110: 1, 0b111: 3, 0b101: 5, 0b100: 7,
}

func bitsToByte(bits []byte) byte {
	var v byte
	for _, b := range bits {
		v = (v << 1) | (b & 1)
	}
	return v
}

// Map converts bpsc consecutive coded bits into one constellation point,
// scaled so the average constellation energy is unity (Kmod factors of
// clause 17.3.5.8).
func Map(bits []byte, bpsc int) (complex128, error) {
	switch bpsc {
	case 1:
		if bits[0] == 0 {
			return complex(-1, 0), nil
		}
		return complex(1, 0), nil
	case 2:
		kmod := 1 / math.Sqrt2
		i := rail1(bits[0])
		q := rail1(bits[1])
		return complex(i*kmod, q*kmod), nil
	case 4:
		kmod := 1 / math.Sqrt(10)
		i := amplitudeLevels2[bitsToByte(bits[0:2])]
		q := amplitudeLevels2[bitsToByte(bits[2:4])]
		return complex(i*kmod, q*kmod), nil
	case 6:
		kmod := 1 / math.Sqrt(42)
		i := amplitudeLevels3[bitsToByte(bits[0:3])]
		q := amplitudeLevels3[bitsToByte(bits[3:6])]
		return complex(i*kmod, q*kmod), nil
	default:
		return 0, fmt.Errorf("modulate: Map: unsupported bpsc %d", bpsc)
	}
}

func rail1(bit byte) float64 {
	if bit == 0 {
		return -1
	}
	return 1
}

var amplitudeLevels2Inv = invert(amplitudeLevels2, 2)
var amplitudeLevels3Inv = invert(amplitudeLevels3, 3)

func invert(m map[byte]float64, width int) map[float64][]byte {
	out := make(map[float64][]byte, len(m))
	for bits, level := range m {
		b := make([]byte, width)
		for i := 0; i < width; i++ {
			b[width-1-i] = (bits >> i) & 1
		}
		out[level] = b
	}
	return out
}

func nearestLevel(levels map[float64][]byte, v float64) []byte {
	var best []byte
	bestDist := math.Inf(1)
	for level, bits := range levels {
		d := math.Abs(v - level)
		if d < bestDist {
			bestDist = d
			best = bits
		}
	}
	return best
}

// Demap inverts Map via nearest-constellation-point hard decision,
// returning bpsc bits.
func Demap(sym complex128, bpsc int) ([]byte, error) {
	switch bpsc {
	case 1:
		if real(sym) >= 0 {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case 2:
		bit := func(v float64) byte {
			if v >= 0 {
				return 1
			}
			return 0
		}
		return []byte{bit(real(sym)), bit(imag(sym))}, nil
	case 4:
		kmod := 1 / math.Sqrt(10)
		ib := nearestLevel(amplitudeLevels2Inv, real(sym)/kmod)
		qb := nearestLevel(amplitudeLevels2Inv, imag(sym)/kmod)
		return append(append([]byte{}, ib...), qb...), nil
	case 6:
		kmod := 1 / math.Sqrt(42)
		ib := nearestLevel(amplitudeLevels3Inv, real(sym)/kmod)
		qb := nearestLevel(amplitudeLevels3Inv, imag(sym)/kmod)
		return append(append([]byte{}, ib...), qb...), nil
	default:
		return nil, fmt.Errorf("modulate: Demap: unsupported bpsc %d", bpsc)
	}
}

// BuildSymbol places 48 already-mapped data constellation points, the 4
// polarity-scrambled pilots, and silence on the remaining (null/DC)
// subcarriers into one 64-bin frequency-domain OFDM symbol, indexed by
// fftkernel.ToBinIndex so it can be fed straight to fftkernel.Inverse.
func BuildSymbol(data [48]complex128, ofdmSymbolIndex int) [fftkernel.N]complex128 {
	var bins [fftkernel.N]complex128
	for i, k := range dataSubcarriers {
		bins[fftkernel.ToBinIndex(k)] = data[i]
	}
	polarity := scrambler.PilotPolarity(ofdmSymbolIndex)
	for i, k := range pilotSubcarriers {
		bins[fftkernel.ToBinIndex(k)] = complex(pilotValues[i]*polarity, 0)
	}
	return bins
}

// ExtractData reads the 48 data subcarriers back out of a frequency
// domain OFDM symbol (as produced by fftkernel.Forward), ignoring pilot
// and null bins.
func ExtractData(bins [fftkernel.N]complex128) [48]complex128 {
	var data [48]complex128
	for i, k := range dataSubcarriers {
		data[i] = bins[fftkernel.ToBinIndex(k)]
	}
	return data
}

// ExtractPilots reads the 4 pilot subcarriers back out of a frequency
// domain OFDM symbol, in channel estimation / phase tracking use.
func ExtractPilots(bins [fftkernel.N]complex128) [4]complex128 {
	var p [4]complex128
	for i, k := range pilotSubcarriers {
		p[i] = bins[fftkernel.ToBinIndex(k)]
	}
	return p
}

// ExpectedPilots returns the expected (noiseless) pilot values for OFDM
// symbol index n, for use by channel estimation / phase tracking.
func ExpectedPilots(ofdmSymbolIndex int) [4]complex128 {
	polarity := scrambler.PilotPolarity(ofdmSymbolIndex)
	var p [4]complex128
	for i := range pilotValues {
		p[i] = complex(pilotValues[i]*polarity, 0)
	}
	return p
}
