// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Atom lifecycle and per-atom valence queries.
// Determinism:
//   - AddAtom returns consecutive indices starting at 0.

package core

import "github.com/katalvlaran/beam/element"

// AddAtom appends a and returns its vertex index.
// Complexity: O(1) amortised.
func (g *Graph) AddAtom(a Atom) int {
	g.atoms = append(g.atoms, a)
	g.adj = append(g.adj, nil)
	g.topologies = append(g.topologies, Topology{})
	return len(g.atoms) - 1
}

// Atom returns the label of v. It panics when v is out of range, like a
// slice index would.
func (g *Graph) Atom(v int) Atom { return g.atoms[v] }

// SetAtom replaces the label of v.
func (g *Graph) SetAtom(v int, a Atom) error {
	if !g.has(v) {
		return ErrVertexNotFound
	}
	g.atoms[v] = a
	return nil
}

// Degree is the number of bonds incident to v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// BondedValence is the sum of the bond orders at v.
func (g *Graph) BondedValence(v int) int {
	sum := 0
	for _, id := range g.adj[v] {
		sum += g.edges[id].Bond.Order()
	}
	return sum
}

// ImplHCount returns the hydrogens of v that are not explicit vertices: the
// written count for a bracket atom, the valence-derived count for an organic
// atom.
func (g *Graph) ImplHCount(v int) int {
	a := g.atoms[v]
	if a.Kind == Bracket {
		return a.Hydrogens
	}
	return a.Element.ImplicitHydrogens(g.BondedValence(v), a.Charge, a.Aromatic)
}

// TotalHCount adds the explicit hydrogen neighbours of v to ImplHCount.
func (g *Graph) TotalHCount(v int) int {
	h := g.ImplHCount(v)
	for _, id := range g.adj[v] {
		if g.atoms[g.edges[id].Other(v)].Element == element.Hydrogen {
			h++
		}
	}
	return h
}
