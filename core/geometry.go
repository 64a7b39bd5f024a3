// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: Arrangement signatures for square planar, trigonal bipyramidal and
//       octahedral centres, used to re-express a configuration for a new
//       neighbour order.
// AI-HINT (file):
//   - A signature is invariant under rotation, so two (order, config) pairs
//     describe the same arrangement iff their signatures are equal. Mirror
//     images get different signatures.

package core

import "slices"

// spTrans lists, per SP configuration, the position trans to position 0.
// SP1 is the U shape, SP2 the 4 shape and SP3 the Z shape.
var spTrans = [...]int{0, 2, 1, 3}

// tbAxes gives, per TB configuration, the positions of the two axial
// neighbours and whether the remaining three are clockwise ('@@') when
// viewed from the first axial neighbour.
var tbAxes = [...]struct {
	from, to  int
	clockwise bool
}{
	{}, // unused
	{0, 4, false}, {0, 4, true}, // TB1, TB2
	{0, 3, false}, {0, 3, true}, // TB3, TB4
	{0, 2, false}, {0, 2, true}, // TB5, TB6
	{0, 1, false}, {0, 1, true}, // TB7, TB8
	{1, 4, false}, {1, 3, false}, // TB9, TB10
	{1, 4, true}, {1, 3, true}, // TB11, TB12
	{1, 2, false}, {1, 2, true}, // TB13, TB14
	{2, 4, false}, {2, 3, false}, // TB15, TB16
	{3, 4, false}, {3, 4, true}, // TB17, TB18
	{2, 3, true}, {2, 4, true}, // TB19, TB20
}

// Equatorial shapes of the octahedron, as orderings of the four positions
// that are not on the axis through position 0.
const (
	shapeU = iota // p q r s
	shapeZ        // p q s r
	shape4        // p r q s
)

// ohAxes gives, per OH configuration, the position trans to position 0, the
// equatorial shape and whether it runs clockwise viewed from position 0.
var ohAxes = [...]struct {
	to, shape int
	clockwise bool
}{
	{}, // unused
	{5, shapeU, false}, {5, shapeU, true}, // OH1, OH2
	{4, shapeU, false}, {5, shapeZ, false}, // OH3, OH4
	{4, shapeZ, false}, {3, shapeU, false}, // OH5, OH6
	{3, shapeZ, false}, {5, shape4, true}, // OH7, OH8
	{4, shape4, true}, {5, shape4, false}, // OH9, OH10
	{4, shape4, false}, {3, shape4, true}, // OH11, OH12
	{3, shape4, false}, {5, shapeZ, true}, // OH13, OH14
	{4, shapeZ, true}, {4, shapeU, true}, // OH15, OH16
	{3, shapeZ, true}, {3, shapeU, true}, // OH17, OH18
	{2, shapeU, false}, {2, shapeZ, false}, // OH19, OH20
	{2, shape4, true}, {2, shape4, false}, // OH21, OH22
	{2, shapeZ, true}, {2, shapeU, true}, // OH23, OH24
	{1, shapeU, false}, {1, shapeZ, false}, // OH25, OH26
	{1, shape4, true}, {1, shape4, false}, // OH27, OH28
	{1, shapeZ, true}, {1, shapeU, true}, // OH29, OH30
}

// reexpress returns the seq of class k that arranges order the same way as
// seq arranges nbrs.
func reexpress(k Class, nbrs []int, seq int, order []int) int {
	switch k {
	case ClassSP:
		partner := spPartner(nbrs, seq, order[0])
		for s := 1; s <= 3; s++ {
			if order[spTrans[s]] == partner {
				return s
			}
		}
	case ClassTB:
		want := tbSignature(nbrs, seq)
		for s := 1; s <= 20; s++ {
			if slices.Equal(tbSignature(order, s), want) {
				return s
			}
		}
	case ClassOH:
		want := ohSignature(nbrs, seq)
		for s := 1; s <= 30; s++ {
			if slices.Equal(ohSignature(order, s), want) {
				return s
			}
		}
	}
	return seq
}

// spPartner returns the neighbour trans to v when seq arranges nbrs. The
// four positions split into two trans pairs: position 0 with spTrans[seq],
// and the other two.
func spPartner(nbrs []int, seq, v int) int {
	t := spTrans[seq]
	switch v {
	case nbrs[0]:
		return nbrs[t]
	case nbrs[t]:
		return nbrs[0]
	}
	var pair []int
	for i, w := range nbrs {
		if i != 0 && i != t {
			pair = append(pair, w)
		}
	}
	if pair[0] == v {
		return pair[1]
	}
	return pair[0]
}

// tbSignature returns [low axial, high axial, e0, e1, e2] where the
// equatorial cycle runs anticlockwise viewed from the low axial neighbour and
// starts at its smallest member.
func tbSignature(nbrs []int, seq int) []int {
	ax := tbAxes[seq]
	a, b := nbrs[ax.from], nbrs[ax.to]
	eq := make([]int, 0, 3)
	for i, v := range nbrs {
		if i != ax.from && i != ax.to {
			eq = append(eq, v)
		}
	}
	if ax.clockwise {
		slices.Reverse(eq)
	}
	if a > b {
		// viewing from the other pole mirrors the cycle
		a, b = b, a
		slices.Reverse(eq)
	}
	return append([]int{a, b}, rotateToMin(eq)...)
}

type vec [3]int

func (v vec) neg() vec { return vec{-v[0], -v[1], -v[2]} }

func (v vec) dot(w vec) int { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

func (v vec) cross(w vec) vec {
	return vec{v[1]*w[2] - v[2]*w[1], v[2]*w[0] - v[0]*w[2], v[0]*w[1] - v[1]*w[0]}
}

// ohSignature places the neighbours on the axes of an octahedron and returns
// [top, bottom, e0, e1, e2, e3] where top is the smallest neighbour, bottom
// is trans to it and the equator runs anticlockwise viewed from top,
// starting at its smallest member.
func ohSignature(nbrs []int, seq int) []int {
	ax := ohAxes[seq]
	eq := make([]int, 0, 4)
	for i := 1; i < 6; i++ {
		if i != ax.to {
			eq = append(eq, nbrs[i])
		}
	}
	switch ax.shape {
	case shapeZ:
		eq[2], eq[3] = eq[3], eq[2]
	case shape4:
		eq[1], eq[2] = eq[2], eq[1]
	}
	if ax.clockwise {
		slices.Reverse(eq)
	}

	// anticlockwise viewed from +z is +x, +y, -x, -y
	pos := map[int]vec{
		nbrs[0]:     {0, 0, 1},
		nbrs[ax.to]: {0, 0, -1},
		eq[0]:       {1, 0, 0},
		eq[1]:       {0, 1, 0},
		eq[2]:       {-1, 0, 0},
		eq[3]:       {0, -1, 0},
	}

	top := slices.Min(nbrs)
	up := pos[top]
	var bottom int
	ring := make([]int, 0, 4)
	for _, v := range nbrs {
		switch {
		case v == top:
		case pos[v] == up.neg():
			bottom = v
		default:
			ring = append(ring, v)
		}
	}
	cur := slices.Min(ring)
	sig := []int{top, bottom, cur}
	for len(sig) < 6 {
		for _, v := range ring {
			if pos[cur].dot(pos[v]) == 0 && pos[cur].cross(pos[v]).dot(up) > 0 {
				cur = v
				break
			}
		}
		sig = append(sig, cur)
	}
	return sig
}

// rotateToMin rotates a cycle so it starts at its smallest member.
func rotateToMin(cycle []int) []int {
	i := slices.Index(cycle, slices.Min(cycle))
	return append(slices.Clone(cycle[i:]), cycle[:i]...)
}
