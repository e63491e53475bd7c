package rxchain

import (
	"fmt"

	"ieee80211aphy/coding"
	"ieee80211aphy/interleave"
	"ieee80211aphy/modulate"
	"ieee80211aphy/ppdu"
	"ieee80211aphy/rate"
)

// DecodedFrame is one successfully or unsuccessfully decoded PPDU.
type DecodedFrame struct {
	Header  ppdu.Header
	Payload []byte
	Err     error
}

type decoderState int

const (
	stateAwaitingHeader decoderState = iota
	stateAwaitingData
)

// FrameDecoder consumes the 48-data-subcarrier stream one OFDM symbol at
// a time: the first symbol of each frame is always the SIGNAL field
// (rate 1/2 BPSK), decoded into a Header that tells it how many further
// DATA symbols to collect and at what rate, after which it runs the
// full depuncture/Viterbi/descramble/CRC pipeline and emits a
// DecodedFrame. Grounded on frame_decoder.cpp's state machine.
type FrameDecoder struct {
	state   decoderState
	header  ppdu.Header
	params  rate.Params
	need    int
	collected []byte // accumulated punctured coded bits for the DATA field
}

// NewFrameDecoder returns a FrameDecoder awaiting the next SIGNAL field.
func NewFrameDecoder() *FrameDecoder { return &FrameDecoder{} }

// Feed processes newly available data-subcarrier symbols and returns
// every frame (successful or failed) completed during this call.
func (d *FrameDecoder) Feed(symbols []Symbol48) []DecodedFrame {
	var out []DecodedFrame
	for _, sym := range symbols {
		switch d.state {
		case stateAwaitingHeader:
			if frame, ok := d.consumeHeader(sym); ok {
				out = append(out, frame)
			}
		case stateAwaitingData:
			if frame, ok := d.consumeData(sym); ok {
				out = append(out, frame)
				d.state = stateAwaitingHeader
			}
		}
	}
	return out
}

func demapSymbol(sym Symbol48, bpsc int) ([]byte, error) {
	bits := make([]byte, 0, 48*bpsc)
	for _, point := range sym {
		b, err := modulate.Demap(point, bpsc)
		if err != nil {
			return nil, err
		}
		bits = append(bits, b...)
	}
	return bits, nil
}

func (d *FrameDecoder) consumeHeader(sym Symbol48) (DecodedFrame, bool) {
	coded, err := demapSymbol(sym, 1)
	if err != nil {
		return DecodedFrame{Err: err}, true
	}
	deinterleaved := interleave.Deinterleave(coded, 48, 1)
	decoded := coding.Decode(deinterleaved)
	var bits [24]byte
	copy(bits[:], decoded)
	header, err := ppdu.DecodeHeader(bits)
	if err != nil {
		return DecodedFrame{Err: fmt.Errorf("rxchain: SIGNAL decode: %w", err)}, true
	}
	params, err := rate.Lookup(header.Rate)
	if err != nil {
		return DecodedFrame{Err: err}, true
	}
	d.header = header
	d.params = params
	d.need = params.NumSymbols(header.Length)
	d.collected = d.collected[:0]
	if d.need == 0 {
		return d.finish()
	}
	d.state = stateAwaitingData
	return DecodedFrame{}, false
}

func (d *FrameDecoder) consumeData(sym Symbol48) (DecodedFrame, bool) {
	coded, err := demapSymbol(sym, d.params.BPSC)
	if err != nil {
		return DecodedFrame{Err: err}, true
	}
	deinterleaved := interleave.Deinterleave(coded, d.params.CBPS, d.params.BPSC)
	d.collected = append(d.collected, deinterleaved...)
	if len(d.collected)/d.params.CBPS < d.need {
		return DecodedFrame{}, false
	}
	return d.finish()
}

func (d *FrameDecoder) finish() (DecodedFrame, bool) {
	payload, err := ppdu.DecodeDataField(d.collected, d.params, d.header.Length)
	d.state = stateAwaitingHeader
	return DecodedFrame{Header: d.header, Payload: payload, Err: err}, true
}
