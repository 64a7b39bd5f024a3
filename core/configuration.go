// SPDX-License-Identifier: MIT
//
// File: configuration.go
// Role: Stereo configuration labels (@, @@, @TH1 ... @OH30) and their
//       geometry classes.

package core

import "strconv"

// Configuration is a stereo descriptor. The zero value is Unknown.
type Configuration uint8

// Configurations. AntiClockwise and Clockwise are the implicit '@' and '@@'
// forms whose geometry depends on the atom's neighbourhood.
const (
	Unknown Configuration = iota
	AntiClockwise
	Clockwise
	TH1
	TH2
	AL1
	AL2
	SP1
	SP2
	SP3
	TB1
	TB2
	TB3
	TB4
	TB5
	TB6
	TB7
	TB8
	TB9
	TB10
	TB11
	TB12
	TB13
	TB14
	TB15
	TB16
	TB17
	TB18
	TB19
	TB20
	OH1
	OH2
	OH3
	OH4
	OH5
	OH6
	OH7
	OH8
	OH9
	OH10
	OH11
	OH12
	OH13
	OH14
	OH15
	OH16
	OH17
	OH18
	OH19
	OH20
	OH21
	OH22
	OH23
	OH24
	OH25
	OH26
	OH27
	OH28
	OH29
	OH30
)

// Class is the geometry family of a configuration.
type Class uint8

// Geometry classes.
const (
	ClassUnknown Class = iota
	ClassImplicit
	ClassTH // tetrahedral
	ClassAL // extended tetrahedral (allene-like)
	ClassSP // square planar
	ClassTB // trigonal bipyramidal
	ClassOH // octahedral
)

var classInfo = [...]struct {
	name  string
	first Configuration
	count int
	nbrs  int
}{
	ClassUnknown:  {"", Unknown, 1, 0},
	ClassImplicit: {"", AntiClockwise, 2, 0},
	ClassTH:       {"TH", TH1, 2, 4},
	ClassAL:       {"AL", AL1, 2, 4},
	ClassSP:       {"SP", SP1, 3, 4},
	ClassTB:       {"TB", TB1, 20, 5},
	ClassOH:       {"OH", OH1, 30, 6},
}

// Class returns the geometry family of c.
func (c Configuration) Class() Class {
	switch {
	case c == Unknown:
		return ClassUnknown
	case c <= Clockwise:
		return ClassImplicit
	case c <= TH2:
		return ClassTH
	case c <= AL2:
		return ClassAL
	case c <= SP3:
		return ClassSP
	case c <= TB20:
		return ClassTB
	case c <= OH30:
		return ClassOH
	}
	return ClassUnknown
}

// Seq is the 1-based number of c within its class (TB7 -> 7, '@@' -> 2).
func (c Configuration) Seq() int {
	return int(c-classInfo[c.Class()].first) + 1
}

// Implicit reports whether c is the bare '@' or '@@'.
func (c Configuration) Implicit() bool { return c.Class() == ClassImplicit }

// String renders c as written in SMILES.
func (c Configuration) String() string {
	switch c.Class() {
	case ClassUnknown:
		return ""
	case ClassImplicit:
		if c == AntiClockwise {
			return "@"
		}
		return "@@"
	}
	return "@" + classInfo[c.Class()].name + strconv.Itoa(c.Seq())
}

// ConfigurationOf returns the seq-th configuration of class k.
func ConfigurationOf(k Class, seq int) (Configuration, bool) {
	if int(k) >= len(classInfo) || k == ClassUnknown {
		return Unknown, false
	}
	info := classInfo[k]
	if seq < 1 || seq > info.count {
		return Unknown, false
	}
	return info.first + Configuration(seq-1), true
}

// ClassOf returns the class written with the two-letter tag, e.g. "TB".
func ClassOf(tag string) (Class, bool) {
	for k := ClassTH; k <= ClassOH; k++ {
		if classInfo[k].name == tag {
			return k, true
		}
	}
	return ClassUnknown, false
}

// Neighbors is the number of neighbours a centre of class k binds.
func (k Class) Neighbors() int { return classInfo[k].nbrs }

// Count is the number of configurations in class k.
func (k Class) Count() int { return classInfo[k].count }

// String returns the two-letter tag of k.
func (k Class) String() string { return classInfo[k].name }
