// Package fftkernel implements the fixed 64-point forward and inverse
// transforms shared by the transmit and receive chains: frame_builder
// runs the inverse transform to build OFDM symbols, fft_symbols runs the
// forward transform to recover them.
//
// Both directions reorder between FFTW-style natural bin order (DC
// first, ascending) and the negative-first subcarrier order the rest of
// the PHY expects, via the same block-swap permutation the reference
// implementation uses (swap the two 32-bin halves). That permutation is
// its own inverse, so the same helper serves both directions.
package fftkernel

import "math"

// N is the fixed transform length: 64 OFDM subcarriers.
const N = 64

// ToBinIndex maps a subcarrier index k (-32..31, DC at 0) to its
// position in the negative-first ordering used throughout this PHY:
// position = k+32. Subcarrier +32 and -32 alias to the same Nyquist bin
// and are both unused (guard band), so the aliasing is harmless.
func ToBinIndex(k int) int { return k + 32 }

// blockSwap exchanges the lower and upper halves of a 64-element array
// in place. Applied twice it is the identity, so it serves as both the
// natural-order -> negative-first map and its own inverse.
func blockSwap(data *[N]complex128) {
	var half [N / 2]complex128
	copy(half[:], data[:N/2])
	copy(data[:N/2], data[N/2:])
	copy(data[N/2:], half[:])
}

// Forward performs one in-place 64-point forward FFT: data is given in
// natural time-domain sample order (index 0..63) and is replaced with
// its frequency-domain representation in negative-first subcarrier
// order (ToBinIndex).
func Forward(data *[N]complex128) {
	dft(data[:], false)
	blockSwap(data)
}

// Inverse performs an in-place inverse FFT over a sequence whose length
// is a multiple of N. Each consecutive 64-sample block is expected in
// negative-first order and is replaced by its time-domain samples,
// scaled by 1/N.
func Inverse(data []complex128) {
	if len(data)%N != 0 {
		panic("fftkernel: Inverse: length must be a multiple of 64")
	}
	for x := 0; x < len(data); x += N {
		block := (*[N]complex128)(data[x : x+N])
		blockSwap(block)
		dft(block[:], true)
		for i := range block {
			block[i] /= complex(float64(N), 0)
		}
	}
}

// dft computes an in-place radix-2 Cooley-Tukey DFT (inverse=false) or
// IDFT (inverse=true, unscaled) over a power-of-two-length slice.
func dft(a []complex128, inverse bool) {
	n := len(a)
	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for length := 2; length <= n; length <<= 1 {
		ang := sign * 2 * math.Pi / float64(length)
		wlen := complex(math.Cos(ang), math.Sin(ang))
		for i := 0; i < n; i += length {
			w := complex(1.0, 0.0)
			for j := 0; j < length/2; j++ {
				u := a[i+j]
				v := a[i+j+length/2] * w
				a[i+j] = u + v
				a[i+j+length/2] = u - v
				w *= wlen
			}
		}
	}
}
