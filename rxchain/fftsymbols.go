package rxchain

import (
	"ieee80211aphy/fftkernel"
	"ieee80211aphy/preamble"
)

const symbolPeriod = preamble.CPLength + fftkernel.N // 80

// FFTSymbols converts the tagged time-domain sample stream, starting at
// TagStartOfFrame, into one frequency-domain Symbol64 per 80-sample OFDM
// symbol: it strips the 16-sample cyclic prefix and forward-transforms
// the remaining 64.
type FFTSymbols struct {
	armed bool
	buf   []complex128
}

// NewFFTSymbols returns an FFTSymbols stage.
func NewFFTSymbols() *FFTSymbols { return &FFTSymbols{} }

// Feed ingests tagged samples and returns every OFDM symbol fully
// received so far.
func (f *FFTSymbols) Feed(samples []TaggedSample) ([]Symbol64, error) {
	var out []Symbol64
	for _, s := range samples {
		if s.Tag == TagStartOfFrame {
			// A fresh frame always restarts symbol alignment, even if a
			// previous frame's tail left a partial symbol buffered.
			f.armed = true
			f.buf = f.buf[:0]
		} else if !f.armed {
			continue
		}
		f.buf = append(f.buf, s.Sample)
		if len(f.buf) > BufferCap {
			return nil, errBufferOverflow("FFTSymbols", len(f.buf))
		}
		if len(f.buf) == symbolPeriod {
			var sym Symbol64
			copy(sym[:], f.buf[preamble.CPLength:])
			fftkernel.Forward(&sym)
			out = append(out, sym)
			f.buf = f.buf[:0]
		}
	}
	return out, nil
}
