package rxchain

import "math"

// PlateauThreshold is the minimum normalized autocorrelation (0..1) for
// a sample to count toward the short-training-sequence plateau.
const PlateauThreshold = 0.85

// STSPlateauLength is the number of consecutive samples that must clear
// PlateauThreshold before Detector commits to a detection, debouncing
// noise spikes. Ten repeats of the 16-sample STS period give 160
// samples of plateau; requiring 3 periods' worth is a conservative
// margin against a marginal first period.
const STSPlateauLength = 48

// Detector finds the short training sequence by a sliding-window
// autocorrelation at lag 16 (the STS period): during the STS, each
// sample nearly repeats the one 16 samples earlier, so the normalized
// correlation climbs to near 1 and plateaus; outside it, it stays low.
// Grounded on frame_detector.cpp's rolling accumulator technique.
type Detector struct {
	carry     []complex128 // last 31 samples from the previous Feed call
	inPlateau bool
	run       int
	pos       int64 // total number of samples fed so far
}

// NewDetector returns a Detector ready to consume a sample stream from
// its start.
func NewDetector() *Detector {
	return &Detector{}
}

// Feed appends new samples and returns every newly produced tagged
// sample (STS_START/STS_END tags set where detected, TagNone elsewhere).
func (d *Detector) Feed(samples []complex128) ([]TaggedSample, error) {
	buf := append(append([]complex128{}, d.carry...), samples...)
	if len(buf) > BufferCap {
		return nil, errBufferOverflow("Detector", len(buf))
	}

	out := make([]TaggedSample, 0, len(samples))
	// Window needs 32 consecutive samples: k in [0,16) paired with k+16.
	// Evaluate for every *new* sample position once 32 samples are
	// available ending at it.
	start := len(d.carry)
	if start < 31 {
		start = 31
	}
	for n := start; n < len(buf); n++ {
		base := n - 31
		var c complex128
		var p float64
		for k := 0; k < 16; k++ {
			c += cmplxConj(buf[base+k]) * buf[base+k+16]
			p += cmplxAbs2(buf[base+k+16])
		}
		metric := 0.0
		if p > 0 {
			metric = cmplxAbs(c) / p
		}

		tag := TagNone
		if metric >= PlateauThreshold {
			d.run++
			if !d.inPlateau && d.run >= STSPlateauLength {
				d.inPlateau = true
				tag = TagSTSStart
			}
		} else {
			if d.inPlateau {
				d.inPlateau = false
				tag = TagSTSEnd
			}
			d.run = 0
		}
		out = append(out, TaggedSample{Sample: buf[n], Tag: tag})
	}

	if len(buf) > 31 {
		d.carry = append([]complex128{}, buf[len(buf)-31:]...)
	} else {
		d.carry = buf
	}
	d.pos += int64(len(samples))
	return out, nil
}

func cmplxConj(c complex128) complex128    { return complex(real(c), -imag(c)) }
func cmplxAbs2(c complex128) float64       { return real(c)*real(c) + imag(c)*imag(c) }
func cmplxAbs(c complex128) float64        { return math.Sqrt(cmplxAbs2(c)) }
