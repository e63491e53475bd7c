// Package scrambler implements the 802.11a data scrambler: a 7-bit
// additive LFSR (generator polynomial x^7+x^4+1) whose output keystream
// is XORed with the data bitstream. Because it is additive rather than
// multiplicative (the keystream does not depend on the data), scrambling
// is its own inverse for a fixed seed — the same function scrambles at
// the transmitter and descrambles at the receiver.
//
// The same generator, reseeded all-ones, also produces the 127-bit pilot
// polarity sequence consumed by the modulate package.
package scrambler

// DefaultSeed is the 7-bit nonzero seed this transmitter emits with.
// Any nonzero seed is standard-legal; this value matches the worked
// example in 802.11a-1999 clause 17 Annex G.
const DefaultSeed byte = 0x5D

// Seed used to generate the 127-bit pilot polarity sequence (modulate
// package): the all-ones state, per 802.11a clause 17.3.5.9.
const PilotPolaritySeed byte = 0x7F

// LFSR is a 7-bit Fibonacci LFSR for generator polynomial x^7+x^4+1.
// The register's low 7 bits hold state; each call to Next shifts in the
// feedback bit and returns the bit shifted out.
type LFSR struct {
	state byte // 7 bits used, state&0x7F
}

// New creates an LFSR with the given nonzero 7-bit seed.
func New(seed byte) *LFSR {
	return &LFSR{state: seed & 0x7F}
}

// Next advances the LFSR by one bit and returns the output bit (0 or 1).
// Feedback taps bit6 and bit3 (0-indexed from the LSB), matching the
// standard's x^7+x^4+1 polynomial applied to a 7-bit shift register.
func (l *LFSR) Next() byte {
	b6 := (l.state >> 6) & 1
	b3 := (l.state >> 3) & 1
	fb := b6 ^ b3
	out := b6
	l.state = ((l.state << 1) | fb) & 0x7F
	return out
}

// State returns the LFSR's current 7-bit register contents.
func (l *LFSR) State() byte { return l.state }

// Scramble XORs each bit of bits (one byte per bit, 0 or 1) with a
// keystream generated from seed, returning a new slice the same length.
// Because the scrambler is additive, Scramble(Scramble(x, s), s) == x.
func Scramble(bits []byte, seed byte) []byte {
	out := make([]byte, len(bits))
	l := New(seed)
	for i, b := range bits {
		out[i] = b ^ l.Next()
	}
	return out
}

// RecoverSeed reconstructs the scrambler seed from the first 7 bits of a
// scrambled bitstream whose corresponding plaintext is known to be zero
// (the PLCP service field's first 7 bits, which 802.11a mandates be
// transmitted as zero). Because the first 7 LFSR outputs are exactly the
// initial register contents read out MSB-first (bit6 down to bit0), the
// first 7 ciphertext bits directly equal the seed.
func RecoverSeed(firstSevenCipherBits []byte) byte {
	var seed byte
	for i := 0; i < 7 && i < len(firstSevenCipherBits); i++ {
		seed = (seed << 1) | (firstSevenCipherBits[i] & 1)
	}
	return seed
}

// PilotPolarity returns the +1/-1 polarity multiplier for OFDM symbol
// index n (0 = the SIGNAL symbol), drawn from the 127-length sequence
// generated by the all-ones-seeded generator, cycling with period 127.
func PilotPolarity(symbolIndex int) float64 {
	l := New(PilotPolaritySeed)
	idx := symbolIndex % 127
	var bit byte
	for i := 0; i <= idx; i++ {
		bit = l.Next()
	}
	if bit == 0 {
		return 1
	}
	return -1
}
