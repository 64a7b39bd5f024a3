// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Stereo topology at a single centre: construction, re-ordering,
//       relabelling and implicit-configuration resolution.
// Determinism:
//   - OrderBy is a pure function of the stored arrangement and the new order.
// AI-HINT (file):
//   - The centre's own index inside the neighbour list stands for an implicit
//     hydrogen or a lone pair.
//   - OrderBy(p) then OrderBy(q) equals OrderBy(q) from the start; returning
//     to the original order restores the original configuration.

package core

import (
	"fmt"
	"slices"
)

// Topology is the spatial arrangement of neighbours around one atom. The zero
// value is the unknown topology: it binds no atom and re-ordering or
// relabelling returns it unchanged.
type Topology struct {
	atom   int
	nbrs   []int
	config Configuration
}

// UnknownTopology returns the topology of an atom without stereo.
func UnknownTopology() Topology { return Topology{} }

// NewTopology builds a topology for u, choosing the geometry from c. An
// implicit '@'/'@@' is resolved by neighbour count: 4 tetrahedral, 5
// trigonal bipyramidal, 6 octahedral.
func NewTopology(u int, nbrs []int, c Configuration) (Topology, error) {
	k := c.Class()
	if k == ClassImplicit {
		switch len(nbrs) {
		case 4:
			k = ClassTH
		case 5:
			k = ClassTB
		case 6:
			k = ClassOH
		default:
			return Topology{}, fmt.Errorf("%w: %s with %d neighbours", ErrNeighborCount, c, len(nbrs))
		}
	}
	return newTopology(k, u, nbrs, c)
}

// Tetrahedral builds a TH1/TH2 ('@'/'@@') topology.
func Tetrahedral(u int, nbrs []int, c Configuration) (Topology, error) {
	return newTopology(ClassTH, u, nbrs, c)
}

// ExtendedTetrahedral builds an AL1/AL2 topology; nbrs are the two
// substituents of each terminal atom of the cumulated system.
func ExtendedTetrahedral(u int, nbrs []int, c Configuration) (Topology, error) {
	return newTopology(ClassAL, u, nbrs, c)
}

// SquarePlanar builds an SP1..SP3 topology.
func SquarePlanar(u int, nbrs []int, c Configuration) (Topology, error) {
	return newTopology(ClassSP, u, nbrs, c)
}

// TrigonalBipyramidal builds a TB1..TB20 topology.
func TrigonalBipyramidal(u int, nbrs []int, c Configuration) (Topology, error) {
	return newTopology(ClassTB, u, nbrs, c)
}

// Octahedral builds an OH1..OH30 topology.
func Octahedral(u int, nbrs []int, c Configuration) (Topology, error) {
	return newTopology(ClassOH, u, nbrs, c)
}

// newTopology validates the class and neighbour count and stores a private
// copy of nbrs. An implicit configuration maps to seq 1 or 2 of class k.
func newTopology(k Class, u int, nbrs []int, c Configuration) (Topology, error) {
	if c.Implicit() {
		resolved, ok := ConfigurationOf(k, c.Seq())
		if !ok || k == ClassSP {
			return Topology{}, fmt.Errorf("%w: %s as %s", ErrConfigurationClass, c, k)
		}
		c = resolved
	}
	if c.Class() != k {
		return Topology{}, fmt.Errorf("%w: %s as %s", ErrConfigurationClass, c, k)
	}
	if len(nbrs) != k.Neighbors() {
		return Topology{}, fmt.Errorf("%w: %s needs %d, got %d", ErrNeighborCount, c, k.Neighbors(), len(nbrs))
	}
	seen := make(map[int]bool, len(nbrs))
	for _, v := range nbrs {
		if seen[v] {
			return Topology{}, fmt.Errorf("%w: %d listed twice", ErrNotPermutation, v)
		}
		seen[v] = true
	}
	return Topology{atom: u, nbrs: slices.Clone(nbrs), config: c}, nil
}

// Known reports whether t carries a configuration.
func (t Topology) Known() bool { return t.config != Unknown }

// Atom returns the centre.
func (t Topology) Atom() (int, error) {
	if !t.Known() {
		return -1, ErrUnknownTopology
	}
	return t.atom, nil
}

// Neighbors returns a copy of the neighbour order the configuration refers to.
func (t Topology) Neighbors() []int { return slices.Clone(t.nbrs) }

// Configuration returns the explicit configuration, Unknown for the unknown
// topology.
func (t Topology) Configuration() Configuration { return t.config }

// Equal reports whether t and o bind the same atom, neighbour order and
// configuration.
func (t Topology) Equal(o Topology) bool {
	return t.atom == o.atom && t.config == o.config && slices.Equal(t.nbrs, o.nbrs)
}

// String renders the topology, e.g. "3@TH2[1 3 4 5]".
func (t Topology) String() string {
	if !t.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%d%s%v", t.atom, t.config, t.nbrs)
}

func (t Topology) clone() Topology {
	t.nbrs = slices.Clone(t.nbrs)
	return t
}

// OrderBy re-expresses t for a new neighbour order. The result describes the
// same spatial arrangement with newOrder as its neighbour list.
//
// Steps:
//  1. Check newOrder is a permutation of the stored neighbours.
//  2. TH and AL: flip the configuration when the permutation is odd.
//  3. SP, TB, OH: pick the configuration whose arrangement of newOrder has
//     the same rotation-invariant signature as the stored one.
//
// Complexity: O(k^2) with k <= 6 neighbours.
func (t Topology) OrderBy(newOrder []int) (Topology, error) {
	if !t.Known() {
		return t, nil
	}
	if !samePermutation(t.nbrs, newOrder) {
		return Topology{}, fmt.Errorf("%w: %v for %v", ErrNotPermutation, newOrder, t.nbrs)
	}
	k := t.config.Class()
	var seq int
	switch k {
	case ClassTH, ClassAL:
		seq = t.config.Seq()
		if Parity(t.nbrs, newOrder) < 0 {
			seq = 3 - seq
		}
	default:
		seq = reexpress(k, t.nbrs, t.config.Seq(), newOrder)
	}
	c, _ := ConfigurationOf(k, seq)
	return Topology{atom: t.atom, nbrs: slices.Clone(newOrder), config: c}, nil
}

// OrderByRank sorts the neighbours by ascending rank[v] and re-expresses t
// for that order.
func (t Topology) OrderByRank(rank []int) (Topology, error) {
	if !t.Known() {
		return t, nil
	}
	order := slices.Clone(t.nbrs)
	slices.SortStableFunc(order, func(a, b int) int { return rank[a] - rank[b] })
	return t.OrderBy(order)
}

// Transform relabels the centre and neighbours through mapping (old index ->
// new index).
func (t Topology) Transform(mapping []int) Topology {
	if !t.Known() {
		return t
	}
	nbrs := make([]int, len(t.nbrs))
	for i, v := range t.nbrs {
		nbrs[i] = mapping[v]
	}
	return Topology{atom: mapping[t.atom], nbrs: nbrs, config: t.config}
}

// Parity returns +1 when achieved is an even permutation of ref and -1 when
// it is odd. Both slices must hold the same distinct values.
func Parity(ref, achieved []int) int {
	pos := make(map[int]int, len(ref))
	for i, v := range ref {
		pos[v] = i
	}
	p := make([]int, len(achieved))
	for i, v := range achieved {
		p[i] = pos[v]
	}
	// selection sort, counting transpositions
	swaps := 0
	for i := range p {
		for p[i] != i {
			j := p[i]
			p[i], p[j] = p[j], p[i]
			swaps++
		}
	}
	if swaps%2 == 0 {
		return 1
	}
	return -1
}

func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[int]int, len(a))
	for _, v := range a {
		count[v]++
	}
	for _, v := range b {
		if count[v] == 0 {
			return false
		}
		count[v]--
	}
	return true
}

// ToExplicit builds the topology of the stereo centre u as written. order
// returns the neighbours of a vertex in written order (nil means adjacency
// order). leading reports that u was bonded to the atom written before it.
//
// Steps:
//  1. A centre of two cumulated double bonds, or an explicit AL label, takes
//     the substituents of its two terminals; a terminal with one substituent
//     stands in for its own hydrogen.
//  2. Otherwise the omitted neighbours are inserted where a hydrogen is
//     written: right after the preceding atom, or first when there is none.
//     The centre's own index marks them: first a bracket hydrogen, then a
//     lone pair completing a three-coordinate tetrahedral centre.
//  3. An implicit '@'/'@@' takes its class from the completed neighbour
//     count: 4 TH, 5 TB, 6 OH.
func ToExplicit(g *Graph, u int, c Configuration, order func(v int) []int, leading bool) (Topology, error) {
	if c == Unknown {
		return Topology{}, nil
	}
	if !g.has(u) {
		return Topology{}, ErrVertexNotFound
	}
	if order == nil {
		order = g.Neighbors
	}

	// 1. Cumulated centre
	k := c.Class()
	if k == ClassAL || k == ClassImplicit && IsCumulatedCentre(g, u) {
		nbrs, err := alleneNeighbors(u, order)
		if err != nil {
			return Topology{}, err
		}
		return ExtendedTetrahedral(u, nbrs, c)
	}

	// 2. Omitted neighbours
	nbrs := slices.Clone(order(u))
	at := 0
	if leading && len(nbrs) > 0 {
		at = 1
	}
	switch h := g.atoms[u].Hydrogens; {
	case h > 1:
		return Topology{}, fmt.Errorf("%w: stereo centre with %d hydrogens", ErrNeighborCount, h)
	case h == 1:
		nbrs = slices.Insert(nbrs, at, u)
	}
	if len(nbrs) == 3 && (k == ClassTH || k == ClassImplicit) {
		nbrs = slices.Insert(nbrs, at, u)
	}

	// 3. Class
	if k == ClassImplicit && len(nbrs) < 4 {
		return Topology{}, fmt.Errorf("%w: atom %d", ErrImplicitConfiguration, u)
	}
	return NewTopology(u, nbrs, c)
}

// LonePair reports whether t counts a lone pair among the neighbours of its
// centre in g: the centre's index is listed and no hydrogen accounts for it.
func (t Topology) LonePair(g *Graph) bool {
	return t.Known() && slices.Contains(t.nbrs, t.atom) && g.Atom(t.atom).Hydrogens == 0
}

func alleneNeighbors(u int, order func(v int) []int) ([]int, error) {
	ends := order(u)
	if len(ends) != 2 {
		return nil, fmt.Errorf("%w: cumulated centre with %d neighbours", ErrNeighborCount, len(ends))
	}
	nbrs := make([]int, 0, 4)
	for _, t := range ends {
		var side []int
		for _, w := range order(t) {
			if w != u {
				side = append(side, w)
			}
		}
		if len(side) == 1 {
			side = append(side, t)
		}
		if len(side) != 2 {
			return nil, fmt.Errorf("%w: cumulated terminal %d has %d substituents", ErrNeighborCount, t, len(side))
		}
		nbrs = append(nbrs, side...)
	}
	return nbrs, nil
}

// IsCumulatedCentre reports whether u is the middle atom of X=u=Y with no
// hydrogens.
func IsCumulatedCentre(g *Graph, u int) bool {
	if len(g.adj[u]) != 2 || g.ImplHCount(u) != 0 {
		return false
	}
	for _, id := range g.adj[u] {
		if g.edges[id].Bond != Double {
			return false
		}
	}
	return true
}
