package rxchain

import (
	"math"
	"math/cmplx"

	"ieee80211aphy/modulate"
)

// PhaseTracker equalizes each incoming OFDM symbol against the
// ChannelEst estimate, then uses the four pilot subcarriers to measure
// and remove the residual common-phase rotation left by carrier
// frequency offset, before handing the 48 data subcarriers downstream.
type PhaseTracker struct {
	ce        *ChannelEst
	symbolIdx int
}

// NewPhaseTracker returns a PhaseTracker reading channel estimates from
// ce (shared with the same Chain's ChannelEst stage).
func NewPhaseTracker(ce *ChannelEst) *PhaseTracker {
	return &PhaseTracker{ce: ce}
}

// Feed equalizes and phase-corrects each symbol in turn, returning the
// recovered data subcarriers.
func (p *PhaseTracker) Feed(symbols []Symbol64) []Symbol48 {
	out := make([]Symbol48, 0, len(symbols))
	h := p.ce.H()
	for _, sym := range symbols {
		eq := sym
		if p.ce.Ready() {
			eq = Equalize(sym, h)
		}
		phi := p.estimatePhase(eq)
		corrected := rotate(eq, -phi)
		out = append(out, modulate.ExtractData(corrected))
		p.symbolIdx++
	}
	return out
}

// estimatePhase compares the received pilots against their expected
// (polarity-scrambled) values and returns the average phase error.
func (p *PhaseTracker) estimatePhase(sym Symbol64) float64 {
	rx := modulate.ExtractPilots(sym)
	expected := modulate.ExpectedPilots(p.symbolIdx)
	var sum complex128
	for i := range rx {
		if expected[i] == 0 {
			continue
		}
		sum += rx[i] * cmplxConj(expected[i])
	}
	if sum == 0 {
		return 0
	}
	return math.Atan2(imag(sum), real(sum))
}

func rotate(sym Symbol64, phi float64) Symbol64 {
	rot := cmplx.Exp(complex(0, phi))
	var out Symbol64
	for k, v := range sym {
		out[k] = v * rot
	}
	return out
}
