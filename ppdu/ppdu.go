// Package ppdu implements the PLCP header (SIGNAL field) and DATA field
// codecs: the bit-level pipeline between a MAC payload and the
// scrambled, convolutionally coded, punctured bitstream that the
// transmit chain interleaves and maps onto subcarriers, and back again
// on receive. Framed the way the reference implementation's ppdu class
// separates header encode/decode from data encode/decode.
package ppdu

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"ieee80211aphy/coding"
	"ieee80211aphy/rate"
	"ieee80211aphy/scrambler"
)

// Header is the decoded PLCP SIGNAL field.
type Header struct {
	Rate   rate.Rate
	Length int // payload length in octets (PSDU minus its 4-byte CRC-32), 0..4095
}

// ErrBadParity is returned by DecodeHeader when the SIGNAL field's
// parity bit does not match its 17 preceding bits, indicating a
// corrupted header.
var ErrBadParity = fmt.Errorf("ppdu: SIGNAL field parity check failed")

func bitParity(bits []byte) byte {
	var p byte
	for _, b := range bits {
		p ^= b & 1
	}
	return p
}

// EncodeHeader packs a Header into the 24-bit SIGNAL field: 4 rate bits,
// 1 reserved bit (0), 12 length bits (LSB first), 1 even-parity bit over
// the preceding 17 bits, and 6 zero tail bits to flush the convolutional
// encoder.
func EncodeHeader(h Header) ([24]byte, error) {
	var out [24]byte
	p, err := rate.Lookup(h.Rate)
	if err != nil {
		return out, err
	}
	if h.Length < 0 || h.Length > 0xFFF {
		return out, fmt.Errorf("ppdu: EncodeHeader: length %d out of range", h.Length)
	}
	field := byte(p.Field)
	for i := 0; i < 4; i++ {
		out[i] = (field >> i) & 1
	}
	out[4] = 0 // reserved
	for i := 0; i < 12; i++ {
		out[5+i] = byte((h.Length >> i) & 1)
	}
	out[17] = bitParity(out[:17])
	// out[18:24] tail bits already zero.
	return out, nil
}

// DecodeHeader reverses EncodeHeader, validating the parity bit and rate
// field.
func DecodeHeader(bits [24]byte) (Header, error) {
	var field byte
	for i := 0; i < 4; i++ {
		field |= bits[i] << i
	}
	var length int
	for i := 0; i < 12; i++ {
		length |= int(bits[5+i]) << i
	}
	if bitParity(bits[:17]) != bits[17] {
		return Header{}, ErrBadParity
	}
	r := rate.Rate(field)
	if _, err := rate.Lookup(r); err != nil {
		return Header{}, err
	}
	return Header{Rate: r, Length: length}, nil
}

func bytesToBits(data []byte) []byte {
	bits := make([]byte, 8*len(data))
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = (b >> j) & 1
		}
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// EncodeDataField builds the scrambled, convolutionally coded, punctured
// DATA field bitstream for one PPDU: a 16-bit SERVICE field (all zero,
// per clause 17.3.5.3) followed by the PSDU (the payload plus its
// trailing CRC-32), followed by 6 zero tail bits, followed by zero pad
// bits out to a whole number of OFDM symbols, then scrambled with seed,
// re-zeroed at the tail position (the encoder must see a true zero
// flush regardless of the scrambler), then rate-1/2 convolutionally
// encoded and punctured to p's coding rate.
func EncodeDataField(payload []byte, p rate.Params, seed byte) ([]byte, error) {
	crc := crc32.ChecksumIEEE(payload)
	var crcBytes [4]byte
	binary.BigEndian.PutUint32(crcBytes[:], crc)
	psdu := append(append([]byte{}, payload...), crcBytes[:]...)

	service := make([]byte, 16)
	psduBits := bytesToBits(psdu)
	tail := make([]byte, 6)

	data := append(append(append([]byte{}, service...), psduBits...), tail...)
	tailStart := len(service) + len(psduBits)

	// p.NumSymbols is the single shared "how many DATA symbols" formula
	// (rate.Params.NumSymbols); using it here instead of padding to the
	// next DBPS multiple independently keeps this in lockstep with
	// DecodeDataField and rxchain.FrameDecoder.
	fullLen := p.NumSymbols(len(payload)) * p.DBPS
	pad := fullLen - len(data)
	data = append(data, make([]byte, pad)...)

	scrambled := scrambler.Scramble(data, seed)
	for i := 0; i < 6; i++ {
		scrambled[tailStart+i] = 0
	}

	coded := coding.Encode(scrambled)
	pattern, _ := p.PuncturePattern()
	if pattern == nil {
		return coded, nil
	}
	return coding.Puncture(coded, pattern), nil
}

// ErrCRCMismatch is returned by DecodeDataField when the recovered
// PSDU's trailing CRC-32 does not match its payload.
var ErrCRCMismatch = fmt.Errorf("ppdu: DATA field CRC-32 mismatch")

// DecodeDataField reverses EncodeDataField: depunctures, Viterbi
// decodes, descrambles (recovering the seed from the known-zero SERVICE
// field rather than requiring it as an argument), and validates the
// trailing CRC-32, returning the original payload.
func DecodeDataField(codedBits []byte, p rate.Params, length int) ([]byte, error) {
	fullLen := p.NumSymbols(length) * p.DBPS

	pattern, _ := p.PuncturePattern()
	var depunctured []byte
	if pattern == nil {
		depunctured = codedBits
	} else {
		depunctured = coding.Depuncture(codedBits, pattern, fullLen*2)
	}

	scrambled := coding.Decode(depunctured)

	seed := scrambler.RecoverSeed(scrambled[:7])
	data := scrambler.Scramble(scrambled, seed)

	psduBits := data[16 : 16+8*(length+4)]
	psdu := bitsToBytes(psduBits)
	if len(psdu) < 4 {
		return nil, fmt.Errorf("ppdu: DecodeDataField: PSDU too short")
	}
	payload := psdu[:len(psdu)-4]
	gotCRC := binary.BigEndian.Uint32(psdu[len(psdu)-4:])
	if crc32.ChecksumIEEE(payload) != gotCRC {
		return nil, ErrCRCMismatch
	}
	return payload, nil
}
