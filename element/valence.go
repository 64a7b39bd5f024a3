// SPDX-License-Identifier: MIT
//
// File: valence.go
// Role: Default valences, charge adjustment and implicit hydrogen counts.

package element

// valences holds the default valences in ascending order. Elements absent
// from the table have no default valence and can only be written in brackets.
var valences = map[Element][]int{
	Hydrogen:   {1},
	Boron:      {3},
	Carbon:     {4},
	Nitrogen:   {3, 5},
	Oxygen:     {2},
	Fluorine:   {1},
	Silicon:    {4},
	Phosphorus: {3, 5},
	Sulfur:     {2, 4, 6},
	Chlorine:   {1},
	Arsenic:    {3, 5},
	Selenium:   {2, 4, 6},
	Bromine:    {1},
	Tellurium:  {2, 4, 6},
	Iodine:     {1},
}

// group returns the periodic group of the elements carrying a valence table.
func (e Element) group() int {
	switch e {
	case Hydrogen:
		return 1
	case Boron:
		return 13
	case Carbon, Silicon:
		return 14
	case Nitrogen, Phosphorus, Arsenic:
		return 15
	case Oxygen, Sulfur, Selenium, Tellurium:
		return 16
	case Fluorine, Chlorine, Bromine, Iodine:
		return 17
	}
	return 0
}

// Valences returns a copy of the default valences of e, nil when e has none.
func (e Element) Valences() []int {
	v := valences[e]
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}

// adjust shifts a default valence by the formal charge q. A boron cation
// loses a bond, a carbon ion loses one either way and the pnictogens,
// chalcogens and halogens gain one per positive charge.
func (e Element) adjust(v, q int) int {
	switch e.group() {
	case 1, 13:
		return v - q
	case 14:
		if q < 0 {
			q = -q
		}
		return v - q
	case 15, 16, 17:
		return v + q
	}
	return v
}

// Verify reports whether valence is acceptable for e carrying charge. Elements
// without a valence table always verify.
func (e Element) Verify(valence, charge int) bool {
	vs := valences[e]
	if vs == nil {
		return true
	}
	for _, v := range vs {
		if e.adjust(v, charge) == valence {
			return true
		}
	}
	return false
}

// lowest returns the lowest adjusted valence that is >= used, or -1.
func (e Element) lowest(used, charge int) int {
	for _, v := range valences[e] {
		if av := e.adjust(v, charge); av >= used {
			return av
		}
	}
	return -1
}

// ImplicitHydrogens returns the hydrogens an unbracketed atom of e carries
// given the sum of its bond orders. An aromatic atom reserves one valence for
// its pi bond when the lowest fitting valence leaves room for it.
func (e Element) ImplicitHydrogens(bondOrderSum, charge int, aromatic bool) int {
	v := e.lowest(bondOrderSum, charge)
	if v < 0 {
		return 0
	}
	h := v - bondOrderSum
	if aromatic && h > 0 {
		h--
	}
	return h
}

// NeedsPiBond reports whether an atom of e with used valence (bond order sum
// plus hydrogens) has room for exactly one more bond, which in an aromatic
// system means it must receive a double bond on localisation.
func (e Element) NeedsPiBond(used, charge int) bool {
	v := e.lowest(used, charge)
	return v > used
}

// LonePair reports whether a three-coordinate atom of e can be a stereo
// centre through its lone pair, as in sulfoxides, phosphines and arsines.
func (e Element) LonePair() bool {
	switch e {
	case Nitrogen, Phosphorus, Arsenic, Sulfur, Selenium, Tellurium:
		return true
	}
	return false
}
