// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and relabelling graph instances.
// Determinism:
//   - Clone keeps edge ids and adjacency order.
//   - Permute keeps edge ids; only endpoints and vertex slots move.
// AI-HINT (file):
//   - Permute(p) followed by Permute(inverse(p)) restores an identical graph,
//     topologies included.

package core

import "fmt"

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		atoms:      append([]Atom(nil), g.atoms...),
		edges:      append([]Edge(nil), g.edges...),
		adj:        make([][]int, len(g.adj)),
		topologies: make([]Topology, len(g.topologies)),
		title:      g.title,
	}
	for v, ids := range g.adj {
		c.adj[v] = append([]int(nil), ids...)
	}
	for v, t := range g.topologies {
		c.topologies[v] = t.clone()
	}
	return c
}

// Permute returns a new graph in which vertex i of g becomes vertex perm[i].
//
// Steps:
//  1. Check perm is a bijection over 0..Order()-1 (ErrInvalidPermutation).
//  2. Move atoms and adjacency lists to their new slots.
//  3. Rewrite edge endpoints in place of the arena copy.
//  4. Transform topologies with the same mapping.
//
// Complexity: O(V + E).
func (g *Graph) Permute(perm []int) (*Graph, error) {
	n := len(g.atoms)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: length %d for %d atoms", ErrInvalidPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: entry %d -> %d", ErrInvalidPermutation, i, p)
		}
		seen[p] = true
	}

	h := &Graph{
		atoms:      make([]Atom, n),
		edges:      make([]Edge, len(g.edges)),
		adj:        make([][]int, n),
		topologies: make([]Topology, n),
		title:      g.title,
	}
	for i, p := range perm {
		h.atoms[p] = g.atoms[i]
		h.adj[p] = append([]int(nil), g.adj[i]...)
	}
	for id, e := range g.edges {
		h.edges[id] = Edge{U: perm[e.U], V: perm[e.V], Bond: e.Bond}
	}
	for i, t := range g.topologies {
		h.topologies[perm[i]] = t.Transform(perm)
	}
	return h, nil
}

// InversePermutation returns q with q[perm[i]] = i.
func InversePermutation(perm []int) []int {
	q := make([]int, len(perm))
	for i, p := range perm {
		q[p] = i
	}
	return q
}
