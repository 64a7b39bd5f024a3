// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph storage: atoms, the edge arena, per-vertex adjacency and
//       per-vertex topology; NewGraph and its options.
// Determinism:
//   - Vertices are dense indices in insertion order.
//   - Edge ids are arena positions in insertion order; adjacency lists keep
//     insertion order until Sort is called.
// AI-HINT (file):
//   - A Graph is not safe for concurrent mutation. Share read-only or Clone.

package core

// Graph is a molecule: atoms labelling dense vertex indices and bonds stored
// once in an edge arena. adj[v] lists the arena ids of the edges incident to
// v; every id appears in exactly the two lists of its endpoints.
type Graph struct {
	atoms      []Atom
	edges      []Edge
	adj        [][]int
	topologies []Topology
	title      string
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the atom and edge storage for n atoms.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.atoms = make([]Atom, 0, n)
		g.adj = make([][]int, 0, n)
		g.topologies = make([]Topology, 0, n)
		g.edges = make([]Edge, 0, n+n/4)
	}
}

// WithTitle sets the trailing name token.
func WithTitle(title string) GraphOption {
	return func(g *Graph) { g.title = title }
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Order is the number of atoms.
func (g *Graph) Order() int { return len(g.atoms) }

// Size is the number of bonds.
func (g *Graph) Size() int { return len(g.edges) }

// Title returns the name token that followed the SMILES, if any.
func (g *Graph) Title() string { return g.title }

// SetTitle replaces the name token.
func (g *Graph) SetTitle(title string) { g.title = title }

func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.atoms) }
