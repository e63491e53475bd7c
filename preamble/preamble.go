// Package preamble holds the hardcoded 802.11a preamble: the time-domain
// short and long training sequences transmitted before every frame, and
// their frequency-domain/conjugate reference forms used by the receiver
// for detection, timing alignment, and channel estimation.
//
// Values are transcribed from the reference implementation's preamble
// table (802.11a clause 17 Annex G waveforms) and must stay bit-exact:
// the receiver's correlators are matched filters against these exact
// samples.
package preamble

const (
	// STSLength is the short training sequence period, in samples.
	STSLength = 16
	// LTSLength is the long training sequence length, in samples.
	LTSLength = 64
	// CPLength is the cyclic prefix length for OFDM data symbols.
	CPLength = 16
	// LTSCPLength is the cyclic prefix preceding the two LTS copies.
	LTSCPLength = 32
	// Length is the full preamble length: 10*STS + LTS-CP + 2*LTS.
	Length = 10*STSLength + LTSCPLength + 2*LTSLength
)

// Samples returns the full 320-sample time-domain preamble: ten copies
// of the short training sequence, followed by the long-training-sequence
// cyclic prefix and two LTS copies.
func Samples() [Length]complex128 { return preambleSamples }

// LTSFreqDomain returns the long training sequence's frequency-domain
// reference (64 complex bins, in the fftkernel package's negative-first
// ordering), used by channel_est to compute the per-subcarrier channel
// response.
func LTSFreqDomain() [64]complex128 { return ltsFreqDomain }

// LTSTimeDomainConj returns the complex conjugate of one LTS period in
// the time domain, used by timing_sync as the matched-filter kernel for
// fine timing acquisition.
func LTSTimeDomainConj() [64]complex128 { return ltsTimeDomainConj }

// STSSamples returns one 16-sample period of the short training
// sequence, used by frame_detector for the windowed autocorrelation.
func STSSamples() [16]complex128 { return stsSamples }

var preambleSamples = [320]complex128{
	complex(0.0229993772561, 0.0229993772561), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
	complex(-0.078, 0.0), complex(0.0122845904586, -0.0975995535921),
	complex(0.0917165491224, -0.105871659819), complex(-0.0918875552628, -0.115128708911),
	complex(-0.00280594417349, -0.0537742664765), complex(0.0750736970682, 0.0740404189251),
	complex(-0.127324359908, 0.0205013799863), complex(-0.121887009061, 0.0165662181391),
	complex(-0.0350412607362, 0.150888347648), complex(-0.0564551284485, 0.0218039206074),
	complex(-0.0603101003162, -0.0812861241157), complex(0.0695568474069, -0.0141219585906),
	complex(0.0822183223031, -0.0923565519537), complex(-0.131262608975, -0.0652272290181),
	complex(-0.0572063458715, -0.0392985881741), complex(0.0369179420011, -0.0983441502871),
	complex(0.0625, 0.0625), complex(0.11923908851, 0.0040955944148),
	complex(-0.0224832063078, -0.160657332953), complex(0.0586687671287, 0.0149389994507),
	complex(0.0244758515211, 0.0585317956946), complex(-0.136804876816, 0.0473798113657),
	complex(0.000988979708988, 0.115004643624), complex(0.0533377343742, -0.00407632648051),
	complex(0.0975412607362, 0.0258883476483), complex(-0.0383159674744, 0.106170912615),
	complex(-0.115131214782, 0.0551804953744), complex(0.059823844859, 0.0877067598357),
	complex(0.0211117703493, -0.0278859188282), complex(0.0968318845911, -0.0827979094878),
	complex(0.0397496983535, 0.111157943051), complex(-0.00512125036042, 0.120325132674),
	complex(0.15625, 0.0), complex(-0.00512125036042, -0.120325132674),
	complex(0.0397496983535, -0.111157943051), complex(0.0968318845911, 0.0827979094878),
	complex(0.0211117703493, 0.0278859188282), complex(0.059823844859, -0.0877067598357),
	complex(-0.115131214782, -0.0551804953744), complex(-0.0383159674744, -0.106170912615),
	complex(0.0975412607362, -0.0258883476483), complex(0.0533377343742, 0.00407632648051),
	complex(0.000988979708988, -0.115004643624), complex(-0.136804876816, -0.0473798113657),
	complex(0.0244758515211, -0.0585317956946), complex(0.0586687671287, -0.0149389994507),
	complex(-0.0224832063078, 0.160657332953), complex(0.11923908851, -0.0040955944148),
	complex(0.0625, -0.0625), complex(0.0369179420011, 0.0983441502871),
	complex(-0.0572063458715, 0.0392985881741), complex(-0.131262608975, 0.0652272290181),
	complex(0.0822183223031, 0.0923565519537), complex(0.0695568474069, 0.0141219585906),
	complex(-0.0603101003162, 0.0812861241157), complex(-0.0564551284485, -0.0218039206074),
	complex(-0.0350412607362, -0.150888347648), complex(-0.121887009061, -0.0165662181391),
	complex(-0.127324359908, -0.0205013799863), complex(0.0750736970682, -0.0740404189251),
	complex(-0.00280594417349, 0.0537742664765), complex(-0.0918875552628, 0.115128708911),
	complex(0.0917165491224, 0.105871659819), complex(0.0122845904586, 0.0975995535921),
	complex(-0.15625, 0.0), complex(0.0122845904586, -0.0975995535921),
	complex(0.0917165491224, -0.105871659819), complex(-0.0918875552628, -0.115128708911),
	complex(-0.00280594417349, -0.0537742664765), complex(0.0750736970682, 0.0740404189251),
	complex(-0.127324359908, 0.0205013799863), complex(-0.121887009061, 0.0165662181391),
	complex(-0.0350412607362, 0.150888347648), complex(-0.0564551284485, 0.0218039206074),
	complex(-0.0603101003162, -0.0812861241157), complex(0.0695568474069, -0.0141219585906),
	complex(0.0822183223031, -0.0923565519537), complex(-0.131262608975, -0.0652272290181),
	complex(-0.0572063458715, -0.0392985881741), complex(0.0369179420011, -0.0983441502871),
	complex(0.0625, 0.0625), complex(0.11923908851, 0.0040955944148),
	complex(-0.0224832063078, -0.160657332953), complex(0.0586687671287, 0.0149389994507),
	complex(0.0244758515211, 0.0585317956946), complex(-0.136804876816, 0.0473798113657),
	complex(0.000988979708988, 0.115004643624), complex(0.0533377343742, -0.00407632648051),
	complex(0.0975412607362, 0.0258883476483), complex(-0.0383159674744, 0.106170912615),
	complex(-0.115131214782, 0.0551804953744), complex(0.059823844859, 0.0877067598357),
	complex(0.0211117703493, -0.0278859188282), complex(0.0968318845911, -0.0827979094878),
	complex(0.0397496983535, 0.111157943051), complex(-0.00512125036042, 0.120325132674),
	complex(0.15625, 0.0), complex(-0.00512125036042, -0.120325132674),
	complex(0.0397496983535, -0.111157943051), complex(0.0968318845911, 0.0827979094878),
	complex(0.0211117703493, 0.0278859188282), complex(0.059823844859, -0.0877067598357),
	complex(-0.115131214782, -0.0551804953744), complex(-0.0383159674744, -0.106170912615),
	complex(0.0975412607362, -0.0258883476483), complex(0.0533377343742, 0.00407632648051),
	complex(0.000988979708988, -0.115004643624), complex(-0.136804876816, -0.0473798113657),
	complex(0.0244758515211, -0.0585317956946), complex(0.0586687671287, -0.0149389994507),
	complex(-0.0224832063078, 0.160657332953), complex(0.11923908851, -0.0040955944148),
	complex(0.0625, -0.0625), complex(0.0369179420011, 0.0983441502871),
	complex(-0.0572063458715, 0.0392985881741), complex(-0.131262608975, 0.0652272290181),
	complex(0.0822183223031, 0.0923565519537), complex(0.0695568474069, 0.0141219585906),
	complex(-0.0603101003162, 0.0812861241157), complex(-0.0564551284485, -0.0218039206074),
	complex(-0.0350412607362, -0.150888347648), complex(-0.121887009061, -0.0165662181391),
	complex(-0.127324359908, -0.0205013799863), complex(0.0750736970682, -0.0740404189251),
	complex(-0.00280594417349, 0.0537742664765), complex(-0.0918875552628, 0.115128708911),
	complex(0.0917165491224, 0.105871659819), complex(0.0122845904586, 0.0975995535921),
	complex(-0.15625, 0.0), complex(0.0122845904586, -0.0975995535921),
	complex(0.0917165491224, -0.105871659819), complex(-0.0918875552628, -0.115128708911),
	complex(-0.00280594417349, -0.0537742664765), complex(0.0750736970682, 0.0740404189251),
	complex(-0.127324359908, 0.0205013799863), complex(-0.121887009061, 0.0165662181391),
	complex(-0.0350412607362, 0.150888347648), complex(-0.0564551284485, 0.0218039206074),
	complex(-0.0603101003162, -0.0812861241157), complex(0.0695568474069, -0.0141219585906),
	complex(0.0822183223031, -0.0923565519537), complex(-0.131262608975, -0.0652272290181),
	complex(-0.0572063458715, -0.0392985881741), complex(0.0369179420011, -0.0983441502871),
	complex(0.0625, 0.0625), complex(0.11923908851, 0.0040955944148),
	complex(-0.0224832063078, -0.160657332953), complex(0.0586687671287, 0.0149389994507),
	complex(0.0244758515211, 0.0585317956946), complex(-0.136804876816, 0.0473798113657),
	complex(0.000988979708988, 0.115004643624), complex(0.0533377343742, -0.00407632648051),
	complex(0.0975412607362, 0.0258883476483), complex(-0.0383159674744, 0.106170912615),
	complex(-0.115131214782, 0.0551804953744), complex(0.059823844859, 0.0877067598357),
	complex(0.0211117703493, -0.0278859188282), complex(0.0968318845911, -0.0827979094878),
	complex(0.0397496983535, 0.111157943051), complex(-0.00512125036042, 0.120325132674),
}

var ltsFreqDomain = [64]complex128{
	complex(0, 0), complex(0, 0), complex(0, 0), complex(0, 0),
	complex(0, 0), complex(0, 0), complex(1, 0), complex(1, 0),
	complex(-1, 0), complex(-1, 0), complex(1, 0), complex(1, 0),
	complex(-1, 0), complex(1, 0), complex(-1, 0), complex(1, 0),
	complex(1, 0), complex(1, 0), complex(1, 0), complex(1, 0),
	complex(1, 0), complex(-1, 0), complex(-1, 0), complex(1, 0),
	complex(1, 0), complex(-1, 0), complex(1, 0), complex(-1, 0),
	complex(1, 0), complex(1, 0), complex(1, 0), complex(1, 0),
	complex(0, 0), complex(1, 0), complex(-1, 0), complex(-1, 0),
	complex(1, 0), complex(1, 0), complex(-1, 0), complex(1, 0),
	complex(-1, 0), complex(1, 0), complex(-1, 0), complex(-1, 0),
	complex(-1, 0), complex(-1, 0), complex(-1, 0), complex(1, 0),
	complex(1, 0), complex(-1, 0), complex(-1, 0), complex(1, 0),
	complex(-1, 0), complex(1, 0), complex(-1, 0), complex(1, 0),
	complex(1, 0), complex(1, 0), complex(1, 0), complex(0, 0),
	complex(0, 0), complex(0, 0), complex(0, 0), complex(0, 0),
}

var ltsTimeDomainConj = [64]complex128{
	complex(0.15625, 0.0), complex(-0.00512125036042, 0.120325132674),
	complex(0.0397496983535, 0.111157943051), complex(0.0968318845911, -0.0827979094878),
	complex(0.0211117703493, -0.0278859188282), complex(0.059823844859, 0.0877067598357),
	complex(-0.115131214782, 0.0551804953744), complex(-0.0383159674744, 0.106170912615),
	complex(0.0975412607362, 0.0258883476483), complex(0.0533377343742, -0.00407632648051),
	complex(0.000988979708988, 0.115004643624), complex(-0.136804876816, 0.0473798113657),
	complex(0.0244758515211, 0.0585317956946), complex(0.0586687671287, 0.0149389994507),
	complex(-0.0224832063078, -0.160657332953), complex(0.11923908851, 0.0040955944148),
	complex(0.0625, 0.0625), complex(0.0369179420011, -0.0983441502871),
	complex(-0.0572063458715, -0.0392985881741), complex(-0.131262608975, -0.0652272290181),
	complex(0.0822183223031, -0.0923565519537), complex(0.0695568474069, -0.0141219585906),
	complex(-0.0603101003162, -0.0812861241157), complex(-0.0564551284485, 0.0218039206074),
	complex(-0.0350412607362, 0.150888347648), complex(-0.121887009061, 0.0165662181391),
	complex(-0.127324359908, 0.0205013799863), complex(0.0750736970682, 0.0740404189251),
	complex(-0.00280594417349, -0.0537742664765), complex(-0.0918875552628, -0.115128708911),
	complex(0.0917165491224, -0.105871659819), complex(0.0122845904586, -0.0975995535921),
	complex(-0.15625, -0.0), complex(0.0122845904586, 0.0975995535921),
	complex(0.0917165491224, 0.105871659819), complex(-0.0918875552628, 0.115128708911),
	complex(-0.00280594417349, 0.0537742664765), complex(0.0750736970682, -0.0740404189251),
	complex(-0.127324359908, -0.0205013799863), complex(-0.121887009061, -0.0165662181391),
	complex(-0.0350412607362, -0.150888347648), complex(-0.0564551284485, -0.0218039206074),
	complex(-0.0603101003162, 0.0812861241157), complex(0.0695568474069, 0.0141219585906),
	complex(0.0822183223031, 0.0923565519537), complex(-0.131262608975, 0.0652272290181),
	complex(-0.0572063458715, 0.0392985881741), complex(0.0369179420011, 0.0983441502871),
	complex(0.0625, -0.0625), complex(0.11923908851, -0.0040955944148),
	complex(-0.0224832063078, 0.160657332953), complex(0.0586687671287, -0.0149389994507),
	complex(0.0244758515211, -0.0585317956946), complex(-0.136804876816, -0.0473798113657),
	complex(0.000988979708988, -0.115004643624), complex(0.0533377343742, 0.00407632648051),
	complex(0.0975412607362, -0.0258883476483), complex(-0.0383159674744, -0.106170912615),
	complex(-0.115131214782, -0.0551804953744), complex(0.059823844859, -0.0877067598357),
	complex(0.0211117703493, 0.0278859188282), complex(0.0968318845911, 0.0827979094878),
	complex(0.0397496983535, -0.111157943051), complex(-0.00512125036042, -0.120325132674),
}

var stsSamples = [16]complex128{
	complex(0.0459987545121, 0.0459987545121), complex(-0.132443716852, 0.00233959188499),
	complex(-0.0134727232705, -0.0785247857538), complex(0.142755292821, -0.0126511678539),
	complex(0.0919975090242, 0.0), complex(0.142755292821, -0.0126511678539),
	complex(-0.0134727232705, -0.0785247857538), complex(-0.132443716852, 0.00233959188499),
	complex(0.0459987545121, 0.0459987545121), complex(0.00233959188499, -0.132443716852),
	complex(-0.0785247857538, -0.0134727232705), complex(-0.0126511678539, 0.142755292821),
	complex(0.0, 0.0919975090242), complex(-0.0126511678539, 0.142755292821),
	complex(-0.0785247857538, -0.0134727232705), complex(0.00233959188499, -0.132443716852),
}
