package parser

import (
	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/element"
)

// bracketAtom reads "[" isotope? symbol chirality? hcount? charge? class? "]"
// after the opening bracket at start.
func (p *parser) bracketAtom(start int) error {
	isotope := p.buf.GetNumberN(3)
	if isotope >= 0 && p.buf.NextIsDigit() {
		return p.syntax(p.buf.Position(), "isotope with more than three digits")
	}

	e, aromatic, err := p.symbol()
	if err != nil {
		return err
	}

	c, err := p.chirality()
	if err != nil {
		return err
	}

	hydrogens := 0
	if p.buf.GetIf('H') {
		if hydrogens, err = p.number(); err != nil {
			return err
		}
		if hydrogens < 0 {
			hydrogens = 1
		}
	}

	charge, err := p.charge()
	if err != nil {
		return err
	}

	class := 0
	if p.buf.GetIf(':') {
		if class, err = p.number(); err != nil {
			return err
		}
		if class < 0 {
			return p.syntax(p.buf.Position(), "atom class expected after ':'")
		}
	}

	if !p.buf.GetIf(']') {
		if !p.buf.HasRemaining() {
			return p.syntax(start, "unclosed bracket atom")
		}
		return p.syntax(p.buf.Position(), "unexpected character %q in bracket atom", p.buf.Next())
	}

	opts := []core.AtomOption{
		core.WithIsotope(isotope),
		core.WithHydrogens(hydrogens),
		core.WithCharge(charge),
		core.WithAtomClass(class),
	}
	if aromatic {
		opts = append(opts, core.WithAromatic())
	}
	return p.addAtom(core.BracketAtom(e, opts...), c, start)
}

// symbol reads an element symbol, '*', or a lowercase aromatic symbol. Two
// letter symbols take precedence: "[Sc]" is scandium.
func (p *parser) symbol() (element.Element, bool, error) {
	pos := p.buf.Position()
	c, d := p.buf.Next(), p.buf.PeekAt(1)
	lookup := element.Of
	aromatic := false
	switch {
	case c == '*':
		p.buf.Get()
		return element.Unknown, false, nil
	case c >= 'a' && c <= 'z':
		lookup, aromatic = element.OfAromatic, true
	case c < 'A' || c > 'Z':
		return element.Unknown, false, p.syntax(pos, "element symbol expected")
	}
	if d >= 'a' && d <= 'z' {
		if e, ok := lookup(string([]byte{c, d})); ok {
			p.buf.Get()
			p.buf.Get()
			return e, aromatic, nil
		}
	}
	if e, ok := lookup(string(c)); ok {
		p.buf.Get()
		return e, aromatic, nil
	}
	return element.Unknown, false, p.syntax(pos, "unknown element symbol")
}

// chirality reads '@', '@@' or '@' followed by a class tag and number.
func (p *parser) chirality() (core.Configuration, error) {
	if !p.buf.GetIf('@') {
		return core.Unknown, nil
	}
	if p.buf.GetIf('@') {
		return core.Clockwise, nil
	}
	pos := p.buf.Position()
	k, ok := core.ClassOf(p.buf.Substr(pos, pos+2))
	if !ok {
		return core.AntiClockwise, nil
	}
	p.buf.Get()
	p.buf.Get()
	seq := p.buf.GetNumberN(2)
	if seq < 0 {
		return core.Unknown, p.syntax(p.buf.Position(), "configuration number expected after @%s", k)
	}
	c, ok := core.ConfigurationOf(k, seq)
	if !ok {
		return core.Unknown, p.syntax(pos, "no configuration @%s%d", k, seq)
	}
	return c, nil
}

// charge reads a formal charge. Signs are resolved left to right and a
// number ends the run: "+", "++", "+2" and "-3" are standard, while "-+1"
// reads as 0 and "++1" as 2. Strict mode rejects the mixed forms.
func (p *parser) charge() (int, error) {
	start := p.buf.Position()
	q, signs, last := 0, 0, 0
	mixed := false
	for {
		sign := 0
		if p.buf.GetIf('+') {
			sign = 1
		} else if p.buf.GetIf('-') {
			sign = -1
		} else {
			break
		}
		if signs > 0 && sign != last {
			mixed = true
		}
		signs++
		last = sign
		if p.buf.NextIsDigit() {
			n, err := p.number()
			if err != nil {
				return 0, err
			}
			q += sign * n
			if signs > 1 {
				mixed = true
			}
			break
		}
		q += sign
	}
	if mixed && p.opts.Strict {
		return 0, p.syntax(start, "non-standard charge %q", p.buf.Substr(start, p.buf.Position()))
	}
	return q, nil
}
