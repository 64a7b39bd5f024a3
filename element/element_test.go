package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beam/element"
)

func TestOf(t *testing.T) {
	cases := []struct {
		symbol string
		want   element.Element
		number int
	}{
		{"*", element.Unknown, 0},
		{"H", element.Hydrogen, 1},
		{"C", element.Carbon, 6},
		{"Cl", element.Chlorine, 17},
		{"Se", element.Selenium, 34},
		{"Og", element.Element(118), 118},
	}
	for _, tc := range cases {
		e, ok := element.Of(tc.symbol)
		require.True(t, ok, tc.symbol)
		assert.Equal(t, tc.want, e)
		assert.Equal(t, tc.number, e.AtomicNumber())
		assert.Equal(t, tc.symbol, e.Symbol())
	}

	_, ok := element.Of("cl")
	assert.False(t, ok)
	_, ok = element.Of("Xx")
	assert.False(t, ok)
}

func TestOfNumber(t *testing.T) {
	e, ok := element.OfNumber(26)
	require.True(t, ok)
	assert.Equal(t, "Fe", e.Symbol())

	_, ok = element.OfNumber(119)
	assert.False(t, ok)
	_, ok = element.OfNumber(-1)
	assert.False(t, ok)
}

func TestOfAromatic(t *testing.T) {
	for _, s := range []string{"b", "c", "n", "o", "p", "s", "se", "as", "te"} {
		e, ok := element.OfAromatic(s)
		require.True(t, ok, s)
		assert.Equal(t, s, e.AromaticSymbol())
	}
	for _, s := range []string{"f", "cl", "fe", "", "C"} {
		_, ok := element.OfAromatic(s)
		assert.False(t, ok, s)
	}
}

func TestOrganicSubset(t *testing.T) {
	organic := []string{"*", "B", "C", "N", "O", "P", "S", "F", "Cl", "Br", "I"}
	for _, s := range organic {
		e, _ := element.Of(s)
		assert.True(t, e.Organic(), s)
	}
	for _, s := range []string{"H", "Na", "Se", "Fe"} {
		e, _ := element.Of(s)
		assert.False(t, e.Organic(), s)
	}
}

func TestImplicitHydrogens(t *testing.T) {
	cases := []struct {
		name     string
		e        element.Element
		sum      int
		charge   int
		aromatic bool
		want     int
	}{
		{"methane", element.Carbon, 0, 0, false, 4},
		{"ethane carbon", element.Carbon, 1, 0, false, 3},
		{"carbonyl carbon", element.Carbon, 3, 0, false, 1},
		{"ammonia", element.Nitrogen, 0, 0, false, 3},
		{"nitro nitrogen", element.Nitrogen, 4, 0, false, 1},
		{"water", element.Oxygen, 0, 0, false, 2},
		{"sulfoxide", element.Sulfur, 3, 0, false, 1},
		{"over valent carbon", element.Carbon, 5, 0, false, 0},
		{"benzene carbon", element.Carbon, 2, 0, true, 1},
		{"pyridine nitrogen", element.Nitrogen, 2, 0, true, 0},
		{"pyrrole nitrogen", element.Nitrogen, 3, 0, true, 0},
		{"furan oxygen", element.Oxygen, 2, 0, true, 0},
		{"ring fusion carbon", element.Carbon, 3, 0, true, 0},
		{"no table", element.Unknown, 2, 0, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.e.ImplicitHydrogens(tc.sum, tc.charge, tc.aromatic))
		})
	}
}

func TestVerifyChargeAdjusted(t *testing.T) {
	// ammonium: N+ with four bonds
	assert.True(t, element.Nitrogen.Verify(4, 1))
	assert.False(t, element.Nitrogen.Verify(4, 0))
	// carbanion and carbocation both have valence three
	assert.True(t, element.Carbon.Verify(3, -1))
	assert.True(t, element.Carbon.Verify(3, 1))
	// borate
	assert.True(t, element.Boron.Verify(4, -1))
	// oxide anion
	assert.True(t, element.Oxygen.Verify(1, -1))
	// no table
	assert.True(t, element.Element(26).Verify(7, 3))
}

func TestNeedsPiBond(t *testing.T) {
	assert.True(t, element.Carbon.NeedsPiBond(3, 0))
	assert.False(t, element.Carbon.NeedsPiBond(4, 0))
	assert.True(t, element.Nitrogen.NeedsPiBond(2, 0))
	assert.False(t, element.Nitrogen.NeedsPiBond(3, 0))
	assert.False(t, element.Oxygen.NeedsPiBond(2, 0))
	// pyridinium [nH+]: three used, valence four
	assert.False(t, element.Nitrogen.NeedsPiBond(4, 1))
	assert.True(t, element.Nitrogen.NeedsPiBond(3, 1))
}

func TestLonePair(t *testing.T) {
	for _, e := range []element.Element{element.Nitrogen, element.Phosphorus, element.Sulfur, element.Selenium} {
		assert.True(t, e.LonePair(), e.Symbol())
	}
	for _, e := range []element.Element{element.Carbon, element.Boron, element.Oxygen, element.Unknown} {
		assert.False(t, e.LonePair(), e.Symbol())
	}
}
