// SPDX-License-Identifier: MIT
//
// File: atom.go
// Role: Atom record with organic-subset and bracket forms.
// Determinism:
//   - Atoms are immutable values; With* helpers return modified copies.

package core

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/beam/element"
)

// AtomKind tells how an atom's hydrogen count is obtained.
type AtomKind uint8

const (
	// Organic atoms are written without brackets; their hydrogens are
	// implied by the default valence of the element.
	Organic AtomKind = iota

	// Bracket atoms carry every attribute explicitly.
	Bracket
)

// NoIsotope marks an atom without a mass number.
const NoIsotope = -1

// Atom is the label of a vertex.
type Atom struct {
	Kind      AtomKind
	Element   element.Element
	Aromatic  bool
	Isotope   int // NoIsotope when unset
	Charge    int
	Hydrogens int // written hydrogens, bracket atoms only
	Class     int // atom-map class, 0 when unset
}

// AtomOption customises a bracket atom.
type AtomOption func(*Atom)

// WithIsotope sets the mass number.
func WithIsotope(mass int) AtomOption { return func(a *Atom) { a.Isotope = mass } }

// WithCharge sets the formal charge.
func WithCharge(q int) AtomOption { return func(a *Atom) { a.Charge = q } }

// WithHydrogens sets the written hydrogen count.
func WithHydrogens(h int) AtomOption { return func(a *Atom) { a.Hydrogens = h } }

// WithAtomClass sets the atom-map class.
func WithAtomClass(c int) AtomOption { return func(a *Atom) { a.Class = c } }

// WithAromatic flags the atom as aromatic.
func WithAromatic() AtomOption { return func(a *Atom) { a.Aromatic = true } }

// OrganicAtom returns the unbracketed form of e.
func OrganicAtom(e element.Element, aromatic bool) Atom {
	return Atom{Kind: Organic, Element: e, Aromatic: aromatic, Isotope: NoIsotope}
}

// BracketAtom returns a bracket atom of e customised by opts.
func BracketAtom(e element.Element, opts ...AtomOption) Atom {
	a := Atom{Kind: Bracket, Element: e, Isotope: NoIsotope}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// IsOrganic reports whether the atom is in organic-subset form.
func (a Atom) IsOrganic() bool { return a.Kind == Organic }

// HasIsotope reports whether a mass number is set.
func (a Atom) HasIsotope() bool { return a.Isotope >= 0 }

// Aliphatic returns a copy with the aromatic flag cleared.
func (a Atom) Aliphatic() Atom {
	a.Aromatic = false
	return a
}

// AsBracket converts the atom to bracket form carrying h hydrogens.
func (a Atom) AsBracket(h int) Atom {
	a.Kind = Bracket
	a.Hydrogens = h
	return a
}

// Symbol returns the element symbol as written, lowercase when aromatic.
func (a Atom) Symbol() string {
	if a.Aromatic {
		return a.Element.AromaticSymbol()
	}
	return a.Element.Symbol()
}

// String renders the atom on its own, without stereo, e.g. "C", "[13CH3+:2]".
func (a Atom) String() string {
	if a.Kind == Organic {
		return a.Symbol()
	}
	var sb strings.Builder
	sb.WriteByte('[')
	if a.HasIsotope() {
		sb.WriteString(strconv.Itoa(a.Isotope))
	}
	sb.WriteString(a.Symbol())
	WriteBracketSuffix(&sb, a)
	sb.WriteByte(']')
	return sb.String()
}

// WriteBracketSuffix writes the hydrogen, charge and class parts of a bracket
// atom (the text after the symbol and stereo descriptor).
func WriteBracketSuffix(sb *strings.Builder, a Atom) {
	if a.Hydrogens > 0 {
		sb.WriteByte('H')
		if a.Hydrogens > 1 {
			sb.WriteString(strconv.Itoa(a.Hydrogens))
		}
	}
	switch {
	case a.Charge == 1:
		sb.WriteByte('+')
	case a.Charge == -1:
		sb.WriteByte('-')
	case a.Charge > 1:
		sb.WriteByte('+')
		sb.WriteString(strconv.Itoa(a.Charge))
	case a.Charge < -1:
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(-a.Charge))
	}
	if a.Class > 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(a.Class))
	}
}
