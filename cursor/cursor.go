// Package cursor provides the forward-only character buffer the SMILES
// parser reads from.
//
// A Cursor never rewinds. Peeking is bounded to a fixed lookahead and every
// accessor returns 0 once the input is exhausted, so the grammar can be
// written as a straight switch on the current byte.
package cursor

// Cursor is a read position over an immutable string.
type Cursor struct {
	s   string
	pos int
}

// New returns a Cursor positioned at the first byte of s.
func New(s string) *Cursor {
	return &Cursor{s: s}
}

// Get returns the current byte and advances, or 0 at end of input.
func (c *Cursor) Get() byte {
	if c.pos >= len(c.s) {
		return 0
	}
	b := c.s[c.pos]
	c.pos++
	return b
}

// Next returns the current byte without advancing, or 0 at end of input.
func (c *Cursor) Next() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte k positions ahead of the current one, or 0.
func (c *Cursor) PeekAt(k int) byte {
	i := c.pos + k
	if k < 0 || i >= len(c.s) {
		return 0
	}
	return c.s[i]
}

// NextIs reports whether the current byte is b.
func (c *Cursor) NextIs(b byte) bool {
	return c.pos < len(c.s) && c.s[c.pos] == b
}

// GetIf consumes the current byte when it equals b.
func (c *Cursor) GetIf(b byte) bool {
	if c.NextIs(b) {
		c.pos++
		return true
	}
	return false
}

// NextIsDigit reports whether the current byte is an ASCII digit.
func (c *Cursor) NextIsDigit() bool {
	return isDigit(c.Next())
}

// MaxDigits bounds GetNumber so the value always fits an int32.
const MaxDigits = 9

// GetNumber consumes up to MaxDigits digits and returns their value, or -1
// when the current byte is not a digit. Leading zeros are accepted; a longer
// run leaves its tail unread for the caller to reject.
func (c *Cursor) GetNumber() int {
	return c.GetNumberN(MaxDigits)
}

// GetNumberN is GetNumber bounded to at most maxDigits digits; a negative
// bound means unbounded. Digits beyond the bound are left unread.
func (c *Cursor) GetNumberN(maxDigits int) int {
	if !c.NextIsDigit() || maxDigits == 0 {
		return -1
	}
	n := 0
	for read := 0; c.NextIsDigit() && (maxDigits < 0 || read < maxDigits); read++ {
		n = n*10 + int(c.Get()-'0')
	}
	return n
}

// HasRemaining reports whether bytes remain to be read.
func (c *Cursor) HasRemaining() bool {
	return c.pos < len(c.s)
}

// Position is the index of the next byte to read.
func (c *Cursor) Position() int { return c.pos }

// Len is the length of the underlying input.
func (c *Cursor) Len() int { return len(c.s) }

// String returns the full underlying input.
func (c *Cursor) String() string { return c.s }

// Substr returns input[begin:end] clamped to the input bounds.
func (c *Cursor) Substr(begin, end int) string {
	if begin < 0 {
		begin = 0
	}
	if end > len(c.s) {
		end = len(c.s)
	}
	if begin >= end {
		return ""
	}
	return c.s[begin:end]
}

// Rest consumes and returns everything after the current position.
func (c *Cursor) Rest() string {
	r := c.Substr(c.pos, len(c.s))
	c.pos = len(c.s)
	return r
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
