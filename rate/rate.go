// Package rate holds the PHY rate table: the eleven SIGNAL-field coded
// rates defined by 802.11a clause 17, and the coded/data bits-per-symbol
// derived from each.
package rate

import "fmt"

// Rate names one of the eleven legal PHY data rates by its 4-bit
// SIGNAL-field code.
type Rate byte

// Valid SIGNAL rate field codes, per 802.11a Table 17-6.
const (
	Rate1_2BPSK  Rate = 0xD
	Rate2_3BPSK  Rate = 0xE
	Rate3_4BPSK  Rate = 0xF
	Rate1_2QPSK  Rate = 0x5
	Rate2_3QPSK  Rate = 0x6
	Rate3_4QPSK  Rate = 0x7
	Rate1_2QAM16 Rate = 0x9
	Rate2_3QAM16 Rate = 0xA
	Rate3_4QAM16 Rate = 0xB
	Rate2_3QAM64 Rate = 0x1
	Rate3_4QAM64 Rate = 0x3
)

// Params carries the parameters needed by the ppdu codec for a given
// PHY rate: coded and data bits per OFDM symbol, bits per subcarrier,
// and relative coding rate against the mother 1/2 code.
type Params struct {
	Field   Rate    // SIGNAL rate field value
	CBPS    int     // coded bits per symbol, after puncturing
	DBPS    int     // data bits per symbol, i.e. CBPS * 0.5 / PunctureKeep
	BPSC    int     // bits per subcarrier
	// PunctureKeep is the fraction of the mother 1/2 code's coded bits
	// kept after puncturing (1.0 = unpunctured). DBPS derives from it:
	// DBPS == CBPS * 0.5 / PunctureKeep. Matches the "keep" fraction of
	// the pattern PuncturePattern returns.
	PunctureKeep float64
	Name         string
}

var table = map[Rate]Params{
	Rate1_2BPSK:  {Rate1_2BPSK, 48, 24, 1, 1.0, "1/2 BPSK"},
	Rate2_3BPSK:  {Rate2_3BPSK, 48, 32, 1, 3.0 / 4.0, "2/3 BPSK"},
	Rate3_4BPSK:  {Rate3_4BPSK, 48, 36, 1, 2.0 / 3.0, "3/4 BPSK"},
	Rate1_2QPSK:  {Rate1_2QPSK, 96, 48, 2, 1.0, "1/2 QPSK"},
	Rate2_3QPSK:  {Rate2_3QPSK, 96, 64, 2, 3.0 / 4.0, "2/3 QPSK"},
	Rate3_4QPSK:  {Rate3_4QPSK, 96, 72, 2, 2.0 / 3.0, "3/4 QPSK"},
	Rate1_2QAM16: {Rate1_2QAM16, 192, 96, 4, 1.0, "1/2 16-QAM"},
	Rate2_3QAM16: {Rate2_3QAM16, 192, 128, 4, 3.0 / 4.0, "2/3 16-QAM"},
	Rate3_4QAM16: {Rate3_4QAM16, 192, 144, 4, 2.0 / 3.0, "3/4 16-QAM"},
	Rate2_3QAM64: {Rate2_3QAM64, 288, 192, 6, 3.0 / 4.0, "2/3 64-QAM"},
	Rate3_4QAM64: {Rate3_4QAM64, 288, 216, 6, 2.0 / 3.0, "3/4 64-QAM"},
}

// ErrUnknownRate is returned by Lookup for a SIGNAL field value outside
// the eleven legal codes.
type ErrUnknownRate struct{ Field byte }

func (e ErrUnknownRate) Error() string {
	return fmt.Sprintf("rate: unknown SIGNAL rate field 0x%X", e.Field)
}

// Lookup returns the Params for a SIGNAL rate field value.
func Lookup(field Rate) (Params, error) {
	p, ok := table[field]
	if !ok {
		return Params{}, ErrUnknownRate{byte(field)}
	}
	return p, nil
}

// NumSymbols computes the number of OFDM data symbols needed to carry
// length bytes of payload at this rate: the 16-bit SERVICE field, the
// PSDU (length bytes of payload plus its trailing 4-byte CRC-32), and
// the 6-bit encoder-flush tail, rounded up to a whole number of
// DBPS-sized symbols. This is the single source of truth for "how many
// DATA symbols does this frame need," shared by
// ppdu.EncodeDataField/DecodeDataField and rxchain.FrameDecoder so the
// three never disagree about where the data field ends.
func (p Params) NumSymbols(length int) int {
	bits := 16 + 8*(length+4) + 6
	return (bits + p.DBPS - 1) / p.DBPS
}

// PuncturePattern returns the keep/drop pattern used to puncture the
// mother rate-1/2 code down to this rate's relative rate, and the
// period (number of coded-bit pairs it applies to). Rate 1/2 needs no
// puncturing and returns a nil pattern.
//
// Patterns are the standard ones from 802.11a clause 17.3.5.5 (Table
// 17-9).
func (p Params) PuncturePattern() (pattern []bool, period int) {
	switch p.PunctureKeep {
	case 1.0:
		return nil, 0
	case 3.0 / 4.0: // rate 2/3: keep X1,Y1,X2; drop Y2
		return []bool{true, true, true, false}, 2
	case 2.0 / 3.0: // rate 3/4: keep X1,Y1,X2,Y3; drop Y2,X3
		return []bool{true, true, true, false, false, true}, 3
	default:
		return nil, 0
	}
}
