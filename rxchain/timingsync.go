package rxchain

import (
	"ieee80211aphy/preamble"
)

// ltsSearchWindow bounds how far past an STS_END tag TimingSync looks
// for the long-training-sequence correlation peak: the first LTS period
// starts preamble.LTSCPLength samples after the end of the short
// training sequence, so its peak lies within
// preamble.LTSCPLength+preamble.LTSLength of STS_END once the short
// training sequence has been correctly located, and a window a little
// larger than that covers jitter.
const ltsSearchWindow = preamble.LTSCPLength + preamble.LTSLength + 16

// TimingSync refines the coarse STS-based timing into an exact sample
// index for the start of the frame, by cross-correlating against the
// long training sequence's matched filter kernel. It tags the start of
// each LTS copy and, 128 samples past the first one, the start of the
// SIGNAL symbol (TagStartOfFrame).
//
// Samples arriving while a search is in progress are held back (not
// emitted) until the search resolves, since the LTS1 tag can land on
// any of them; everything else passes straight through.
type TimingSync struct {
	lts       [64]complex128
	searching bool
	pending   []TaggedSample
}

// NewTimingSync returns a TimingSync using the standard LTS matched
// filter kernel.
func NewTimingSync() *TimingSync {
	return &TimingSync{lts: preamble.LTSTimeDomainConj()}
}

func (ts *TimingSync) correlate(buf []TaggedSample, n int) float64 {
	var acc complex128
	for k := 0; k < 64; k++ {
		acc += buf[n+k].Sample * ts.lts[k]
	}
	return cmplxAbs(acc)
}

// Feed passes samples through, adding TagLTS1/TagLTS2/TagStartOfFrame
// where found. Returns the samples now safe to emit, which may lag the
// input while a search is pending.
func (ts *TimingSync) Feed(samples []TaggedSample) ([]TaggedSample, error) {
	var out []TaggedSample

	for _, s := range samples {
		if ts.searching {
			ts.pending = append(ts.pending, s)
			if len(ts.pending) > BufferCap {
				return nil, errBufferOverflow("TimingSync", len(ts.pending))
			}
			continue
		}
		if s.Tag == TagSTSEnd {
			ts.searching = true
			ts.pending = []TaggedSample{s}
			continue
		}
		out = append(out, s)
	}

	if ts.searching && len(ts.pending) >= ltsSearchWindow+64 {
		out = append(out, ts.resolve()...)
	}
	return out, nil
}

// resolve finds the LTS correlation peak in the pending buffer, tags
// it and the derived offsets, and returns the whole pending run for
// emission.
func (ts *TimingSync) resolve() []TaggedSample {
	buf := ts.pending
	best, bestMetric := -1, 0.0
	limit := len(buf) - 64
	for n := 0; n < limit && n < ltsSearchWindow; n++ {
		m := ts.correlate(buf, n)
		if m > bestMetric {
			bestMetric = m
			best = n
		}
	}
	if best >= 0 {
		buf[best].Tag = TagLTS1
		if best+64 < len(buf) {
			buf[best+64].Tag = TagLTS2
		}
		if best+128 < len(buf) {
			buf[best+128].Tag = TagStartOfFrame
		}
	}
	ts.searching = false
	ts.pending = nil
	return buf
}
