package modulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMapDemapRoundTrip(t *testing.T) {
	for _, bpsc := range []int{1, 2, 4, 6} {
		rapid.Check(t, func(tt *rapid.T) {
			bits := make([]byte, bpsc)
			for i := range bits {
				bits[i] = byte(rapid.IntRange(0, 1).Draw(tt, "bit"))
			}
			sym, err := Map(bits, bpsc)
			require.NoError(tt, err)
			back, err := Demap(sym, bpsc)
			require.NoError(tt, err)
			assert.Equal(tt, bits, back)
		})
	}
}

func TestBuildSymbolExtractDataRoundTrip(t *testing.T) {
	var data [48]complex128
	for i := range data {
		data[i] = complex(float64(i%3)-1, float64(i%2))
	}
	bins := BuildSymbol(data, 0)
	got := ExtractData(bins)
	assert.Equal(t, data, got)
}

func TestPilotsMatchExpected(t *testing.T) {
	var data [48]complex128
	bins := BuildSymbol(data, 5)
	pilots := ExtractPilots(bins)
	expected := ExpectedPilots(5)
	assert.Equal(t, expected, pilots)
}

func TestDataSubcarrierCountIs48(t *testing.T) {
	assert.Len(t, dataSubcarriers, 48)
}
