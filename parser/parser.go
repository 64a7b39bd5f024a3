// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: SMILES reader: atoms, bonds, branches, ring closures and dots are
//       read left to right into a core.Graph.
// Determinism:
//   - Atoms are numbered in the order they are written; bonds are stored in
//     the order they are completed (ring bonds on closure).
// AI-HINT (file):
//   - arrangement[u] records u's neighbours in written order. A ring opening
//     reserves its slot with -1 until the closing atom is known.

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/cursor"
	"github.com/katalvlaran/beam/element"
	"github.com/katalvlaran/beam/localise"
)

// Options configures Parse.
type Options struct {
	// Kekulize returns the Kekulé form: aromatic atoms and bonds are
	// localised before the graph is handed back.
	Kekulize bool

	// Strict rejects non-standard charge runs ("-+1", "++1") and bracket
	// atoms of organic-subset elements whose valence is not a standard one.
	Strict bool
}

// Option configures Parse.
type Option func(*Options)

// DefaultOptions returns lenient parsing that keeps aromaticity.
func DefaultOptions() Options {
	return Options{}
}

// WithKekulize localises aromatic systems after parsing.
func WithKekulize() Option {
	return func(o *Options) { o.Kekulize = true }
}

// WithStrict enables strict charge and valence checks.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// ringBond is an open ring closure: the atom that opened it, the bond
// written there and the arrangement slot reserved for the partner.
type ringBond struct {
	atom int
	bond core.Bond
	slot int
	pos  int
}

// stereoCentre is an atom written with '@'; its topology is built once the
// whole input has been read.
type stereoCentre struct {
	atom   int
	config core.Configuration
	pos    int
}

type parser struct {
	buf  *cursor.Cursor
	opts Options
	g    *core.Graph

	stack    []int     // atoms bonds attach to; '(' duplicates the top
	bond     core.Bond // pending bond, Implicit when none was written
	bondPos  int
	branches []int // input offsets of open '('
	empty    bool  // a '(' has not been followed by an atom yet

	rings       map[int]*ringBond
	arrangement [][]int
	hasPrev     []bool // atom was bonded to the atom written before it
	atomPos     []int
	centres     []stereoCentre
}

// Parse reads smiles into a new graph.
//
// Steps:
//  1. Read atoms, bonds, branches, ring closures and dots left to right.
//     Whitespace ends the molecule; the remainder is its title.
//  2. Check no bond, branch or ring closure is left open.
//  3. Build a topology for every '@' centre from its written neighbour order.
//  4. With WithStrict, verify bracket atom valences.
//  5. With WithKekulize, localise aromatic systems.
//
// Every failure is an *Error wrapping ErrSyntax or ErrStructure; a failed
// Kekulisation also wraps localise.ErrKekulization.
func Parse(smiles string, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	p := &parser{
		buf:   cursor.New(smiles),
		opts:  o,
		g:     core.NewGraph(core.WithCapacity(len(smiles))),
		rings: make(map[int]*ringBond),
	}

	// 1.-2. Grammar
	if err := p.read(); err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	// 3. Stereo
	if err := p.assignStereo(); err != nil {
		return nil, err
	}

	// 4. Valence
	if o.Strict {
		if err := p.verify(); err != nil {
			return nil, err
		}
	}

	// 5. Kekulé form
	if !o.Kekulize {
		return p.g, nil
	}
	g, err := localise.Kekulize(p.g)
	if err != nil {
		pos := len(smiles)
		var le *localise.Error
		if errors.As(err, &le) {
			pos = p.atomPos[le.Atom]
		}
		return nil, p.fail(ErrStructure, err, pos, "cannot Kekulize: %v", err)
	}
	return g, nil
}

// MustParse is Parse for inputs known to be valid; it panics on error.
func MustParse(smiles string, opts ...Option) *core.Graph {
	g, err := Parse(smiles, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (p *parser) fail(kind, cause error, pos int, format string, args ...any) error {
	return &Error{
		Msg:   fmt.Sprintf(format, args...),
		Input: p.buf.String(),
		Pos:   pos,
		kind:  kind,
		cause: cause,
	}
}

func (p *parser) syntax(pos int, format string, args ...any) error {
	return p.fail(ErrSyntax, nil, pos, format, args...)
}

// number reads a decimal number, -1 when none is written. Runs longer than
// cursor.MaxDigits are a syntax error at the first extra digit.
func (p *parser) number() (int, error) {
	n := p.buf.GetNumber()
	if n >= 0 && p.buf.NextIsDigit() {
		return n, p.syntax(p.buf.Position(), "number longer than %d digits", cursor.MaxDigits)
	}
	return n, nil
}

// read consumes the input up to its end or the first whitespace after the
// SMILES. Leading blanks are skipped.
func (p *parser) read() error {
	for p.buf.NextIs(' ') || p.buf.NextIs('\t') {
		p.buf.Get()
	}
	for p.buf.HasRemaining() {
		start := p.buf.Position()
		c := p.buf.Get()
		var err error
		switch c {
		case '*':
			err = p.addAtom(core.OrganicAtom(element.Unknown, false), core.Unknown, start)
		case 'B':
			e := element.Boron
			if p.buf.GetIf('r') {
				e = element.Bromine
			}
			err = p.addAtom(core.OrganicAtom(e, false), core.Unknown, start)
		case 'C':
			e := element.Carbon
			if p.buf.GetIf('l') {
				e = element.Chlorine
			}
			err = p.addAtom(core.OrganicAtom(e, false), core.Unknown, start)
		case 'N', 'O', 'P', 'S', 'F', 'I':
			e, _ := element.Of(string(c))
			err = p.addAtom(core.OrganicAtom(e, false), core.Unknown, start)
		case 'b', 'c', 'n', 'o', 'p', 's':
			e, _ := element.OfAromatic(string(c))
			err = p.addAtom(core.OrganicAtom(e, true), core.Unknown, start)
		case '[':
			err = p.bracketAtom(start)
		case '-', '=', '#', '$', ':', '/', '\\', '.':
			err = p.readBond(c, start)
		case '(':
			err = p.openBranch(start)
		case ')':
			err = p.closeBranch(start)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			err = p.ring(int(c-'0'), start)
		case '%':
			err = p.percentRing(start)
		case ' ', '\t':
			p.g.SetTitle(strings.TrimSpace(p.buf.Rest()))
			return nil
		case '\n', '\r':
			return nil
		default:
			err = p.syntax(start, "unexpected character %q", c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) readBond(c byte, pos int) error {
	if c == '.' && len(p.stack) == 0 {
		return p.syntax(pos, "'.' must follow an atom")
	}
	if p.bond != core.Implicit {
		return p.syntax(pos, "two bonds between atoms")
	}
	b, _ := core.BondOf(c)
	p.bond, p.bondPos = b, pos
	return nil
}

func (p *parser) openBranch(pos int) error {
	if len(p.stack) == 0 {
		return p.syntax(pos, "branch opened before any atom")
	}
	if p.empty {
		return p.syntax(pos, "branch must start with an atom or bond")
	}
	if p.bond != core.Implicit {
		return p.syntax(p.bondPos, "bond written before a branch")
	}
	p.stack = append(p.stack, p.stack[len(p.stack)-1])
	p.branches = append(p.branches, pos)
	p.empty = true
	return nil
}

func (p *parser) closeBranch(pos int) error {
	if len(p.branches) == 0 {
		return p.syntax(pos, "')' closes no branch")
	}
	if p.empty {
		return p.syntax(pos, "empty branch")
	}
	if p.bond != core.Implicit {
		return p.syntax(p.bondPos, "bond %q has no atom to bond to", p.bond)
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.branches = p.branches[:len(p.branches)-1]
	return nil
}

// addAtom appends a and bonds it to the atom on top of the stack with the
// pending bond. A pending Dot leaves the two unbonded.
func (p *parser) addAtom(a core.Atom, c core.Configuration, pos int) error {
	u := p.g.AddAtom(a)
	p.arrangement = append(p.arrangement, nil)
	p.hasPrev = append(p.hasPrev, false)
	p.atomPos = append(p.atomPos, pos)

	if n := len(p.stack); n > 0 {
		prev := p.stack[n-1]
		p.stack = p.stack[:n-1]
		if p.bond != core.Dot {
			if err := p.g.AddEdge(core.NewEdge(prev, u, p.bond)); err != nil {
				return p.fail(ErrStructure, err, pos, "cannot bond atom %d to %d", prev, u)
			}
			p.arrangement[prev] = append(p.arrangement[prev], u)
			p.arrangement[u] = append(p.arrangement[u], prev)
			p.hasPrev[u] = true
		}
	}
	p.stack = append(p.stack, u)
	p.bond = core.Implicit
	p.empty = false

	if c != core.Unknown {
		p.centres = append(p.centres, stereoCentre{atom: u, config: c, pos: pos})
	}
	return nil
}

func (p *parser) percentRing(pos int) error {
	if p.buf.GetIf('(') {
		n, err := p.number()
		if err != nil {
			return err
		}
		if n < 0 {
			return p.syntax(p.buf.Position(), "ring number expected after '%%('")
		}
		if !p.buf.GetIf(')') {
			return p.syntax(p.buf.Position(), "unclosed '%%(' ring number")
		}
		return p.ring(n, pos)
	}
	if !p.buf.NextIsDigit() || !isDigit(p.buf.PeekAt(1)) {
		return p.syntax(p.buf.Position(), "two digits expected after '%%'")
	}
	return p.ring(p.buf.GetNumberN(2), pos)
}

// ring opens or closes the ring bond labelled n at the current atom.
func (p *parser) ring(n, pos int) error {
	if len(p.stack) == 0 {
		return p.syntax(pos, "ring bond before any atom")
	}
	if p.bond == core.Dot {
		return p.syntax(p.bondPos, "a ring bond cannot be a dot")
	}
	u := p.stack[len(p.stack)-1]

	r, open := p.rings[n]
	if !open {
		p.rings[n] = &ringBond{atom: u, bond: p.bond, slot: len(p.arrangement[u]), pos: pos}
		p.arrangement[u] = append(p.arrangement[u], -1)
		p.bond = core.Implicit
		return nil
	}

	delete(p.rings, n)
	v := r.atom
	b, ok := closingBond(r.bond, p.bond)
	if !ok {
		return p.fail(ErrStructure, nil, pos, "ring bond %d written as %q and %q", n, r.bond, p.bond)
	}
	if err := p.g.AddEdge(core.NewEdge(v, u, b)); err != nil {
		return p.fail(ErrStructure, err, pos, "ring bond %d cannot join atom %d to %d", n, v, u)
	}
	p.arrangement[v][r.slot] = u
	p.arrangement[u] = append(p.arrangement[u], v)
	p.bond = core.Implicit
	return nil
}

// closingBond resolves the bonds written at the opening and closing of a
// ring. The closing bond is read from the closing atom, so a directional
// bond must be the inverse of the opening one.
func closingBond(open, closing core.Bond) (core.Bond, bool) {
	switch {
	case closing == core.Implicit:
		return open, true
	case open == core.Implicit:
		return closing.Inverse(), true
	case open == closing.Inverse():
		return open, true
	}
	return core.Implicit, false
}

// finish reports anything still open at the end of the input.
func (p *parser) finish() error {
	if p.bond == core.Dot {
		return p.syntax(p.bondPos, "'.' must be followed by an atom")
	}
	if p.bond != core.Implicit {
		return p.syntax(p.bondPos, "bond %q has no atom to bond to", p.bond)
	}
	if n := len(p.branches); n > 0 {
		return p.syntax(p.branches[n-1], "unclosed branch")
	}
	if len(p.rings) > 0 {
		first := -1
		for n, r := range p.rings {
			if first < 0 || r.pos < p.rings[first].pos {
				first = n
			}
		}
		return p.fail(ErrStructure, nil, p.rings[first].pos, "unclosed ring bond %d", first)
	}
	return nil
}

// verify checks bracket atoms of organic-subset elements against their
// standard valences.
func (p *parser) verify() error {
	for v := 0; v < p.g.Order(); v++ {
		a := p.g.Atom(v)
		if a.IsOrganic() || a.Aromatic || a.Element == element.Unknown || !a.Element.Organic() {
			continue
		}
		used := p.g.BondedValence(v) + a.Hydrogens
		if !a.Element.Verify(used, a.Charge) {
			return p.fail(ErrStructure, nil, p.atomPos[v], "%s has non-standard valence %d", a, used)
		}
	}
	return nil
}

// assignStereo resolves every stereo centre against its written neighbour
// order. In strict mode a lone pair is accepted only on elements that carry
// one.
func (p *parser) assignStereo() error {
	written := func(v int) []int { return p.arrangement[v] }
	for _, s := range p.centres {
		t, err := core.ToExplicit(p.g, s.atom, s.config, written, p.hasPrev[s.atom])
		if err == nil && p.opts.Strict && t.LonePair(p.g) && !p.g.Atom(s.atom).Element.LonePair() {
			err = fmt.Errorf("%w: %s has no lone pair", core.ErrNeighborCount, p.g.Atom(s.atom).Element)
		}
		if err == nil {
			err = p.g.AddTopology(t)
		}
		if err != nil {
			return p.fail(ErrStructure, err, s.pos, "invalid stereo %s on atom %d: %v", s.config, s.atom, err)
		}
	}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
