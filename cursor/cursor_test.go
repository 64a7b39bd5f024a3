package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/beam/cursor"
)

func TestGetAndPeek(t *testing.T) {
	c := cursor.New("CO")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, byte('C'), c.Next())
	assert.Equal(t, byte('O'), c.PeekAt(1))
	assert.Equal(t, byte(0), c.PeekAt(2))
	assert.Equal(t, byte('C'), c.Get())
	assert.Equal(t, 1, c.Position())
	assert.True(t, c.NextIs('O'))
	assert.False(t, c.GetIf('C'))
	assert.True(t, c.GetIf('O'))
	assert.False(t, c.HasRemaining())
	assert.Equal(t, byte(0), c.Get())
	assert.Equal(t, byte(0), c.Next())
	assert.Equal(t, 2, c.Position())
}

func TestGetNumber(t *testing.T) {
	cases := []struct {
		in      string
		max     int
		want    int
		nextPos int
	}{
		{"123C", -1, 123, 3},
		{"002H", -1, 2, 3},
		{"C", -1, -1, 0},
		{"", -1, -1, 0},
		{"12345", 3, 123, 3},
		{"9", 3, 9, 1},
		{"42", 0, -1, 0},
		{"1234567890", -1, 1234567890, 10},
	}
	for _, tc := range cases {
		c := cursor.New(tc.in)
		assert.Equal(t, tc.want, c.GetNumberN(tc.max), tc.in)
		assert.Equal(t, tc.nextPos, c.Position(), tc.in)
	}
}

func TestGetNumberStopsAtMaxDigits(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		nextPos int
	}{
		{"7", 7, 1},
		{"123456789", 123456789, 9},
		{"1234567890", 123456789, 9},
		{"99999999999999999999", 999999999, 9},
	}
	for _, tc := range cases {
		c := cursor.New(tc.in)
		assert.Equal(t, tc.want, c.GetNumber(), tc.in)
		assert.Equal(t, tc.nextPos, c.Position(), tc.in)
		assert.Equal(t, len(tc.in) > cursor.MaxDigits, c.NextIsDigit(), tc.in)
	}
}

func TestSubstrAndRest(t *testing.T) {
	c := cursor.New("CCO ethanol")
	assert.Equal(t, "CCO", c.Substr(0, 3))
	assert.Equal(t, "", c.Substr(5, 2))
	assert.Equal(t, "ethanol", c.Substr(4, 99))
	c.Get()
	assert.Equal(t, "CO ethanol", c.Rest())
	assert.False(t, c.HasRemaining())
	assert.Equal(t, "CCO ethanol", c.String())
}
