// SPDX-License-Identifier: MIT
//
// File: element.go
// Role: Immutable periodic table keyed by symbol and atomic number.
// Determinism:
//   - Lookups are pure; the table is built once at package init.

package element

// Element identifies a chemical element by atomic number. The zero value is
// Unknown, the '*' wildcard atom.
type Element uint8

// Unknown is the '*' wildcard atom (atomic number 0).
const Unknown Element = 0

// Frequently referenced elements.
const (
	Hydrogen   Element = 1
	Boron      Element = 5
	Carbon     Element = 6
	Nitrogen   Element = 7
	Oxygen     Element = 8
	Fluorine   Element = 9
	Silicon    Element = 14
	Phosphorus Element = 15
	Sulfur     Element = 16
	Chlorine   Element = 17
	Arsenic    Element = 33
	Selenium   Element = 34
	Bromine    Element = 35
	Tellurium  Element = 52
	Iodine     Element = 53
)

// symbols is indexed by atomic number.
var symbols = [...]string{
	"*",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(symbols))
	for i, s := range symbols {
		m[s] = Element(i)
	}
	return m
}()

// organic lists the elements that may be written outside brackets.
var organic = map[Element]bool{
	Unknown: true, Boron: true, Carbon: true, Nitrogen: true, Oxygen: true,
	Phosphorus: true, Sulfur: true, Fluorine: true, Chlorine: true,
	Bromine: true, Iodine: true,
}

// aromatic lists the elements that may be written in lowercase. The
// organic subset permits b c n o p s; brackets additionally accept se as te.
var aromatic = map[Element]bool{
	Unknown: true, Boron: true, Carbon: true, Nitrogen: true, Oxygen: true,
	Phosphorus: true, Sulfur: true, Selenium: true, Arsenic: true,
	Tellurium: true,
}

// Of returns the element written as symbol. The lookup is case-sensitive:
// "Cl" is chlorine, "cl" is not an element.
func Of(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}

// OfNumber returns the element with atomic number n.
func OfNumber(n int) (Element, bool) {
	if n < 0 || n >= len(symbols) {
		return Unknown, false
	}
	return Element(n), true
}

// OfAromatic returns the element whose lowercase symbol is s ("c", "se").
func OfAromatic(s string) (Element, bool) {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return Unknown, false
	}
	e, ok := bySymbol[string(s[0]-'a'+'A')+s[1:]]
	if !ok || !aromatic[e] {
		return Unknown, false
	}
	return e, true
}

// Symbol returns the capitalised symbol, "*" for Unknown.
func (e Element) Symbol() string {
	if int(e) >= len(symbols) {
		return "*"
	}
	return symbols[e]
}

// AromaticSymbol returns the lowercase form of the symbol.
func (e Element) AromaticSymbol() string {
	s := e.Symbol()
	if s == "*" {
		return s
	}
	return string(s[0]-'A'+'a') + s[1:]
}

// AtomicNumber returns the atomic number; 0 for Unknown.
func (e Element) AtomicNumber() int { return int(e) }

// Organic reports whether e may be written without brackets.
func (e Element) Organic() bool { return organic[e] }

// Aromatic reports whether e may be written in lowercase.
func (e Element) Aromatic() bool { return aromatic[e] }

// String implements fmt.Stringer.
func (e Element) String() string { return e.Symbol() }
