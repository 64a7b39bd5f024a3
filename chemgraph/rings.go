package chemgraph

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/beam/core"
)

// RingSize returns the size of the smallest ring through the bond u-v, or 0
// if the bond is acyclic or every ring through it is larger than limit. A
// non-positive limit searches without bound.
//
// The ring is found as the shortest u..v path that avoids the bond itself.
func RingSize(g *core.Graph, u, v, limit int) int {
	if !g.Adjacent(u, v) {
		return 0
	}
	bfs := traverse.BreadthFirst{
		Traverse: func(e graph.Edge) bool {
			a, b := e.From().ID(), e.To().ID()
			return !(a == int64(u) && b == int64(v) || a == int64(v) && b == int64(u))
		},
	}
	found := -1
	bfs.Walk(New(g), simple.Node(u), func(n graph.Node, d int) bool {
		if limit > 0 && d >= limit {
			return true
		}
		if n.ID() == int64(v) {
			found = d
			return true
		}
		return false
	})
	if found < 0 {
		return 0
	}
	return found + 1
}

// Fragments returns the connected components of g, each sorted by atom
// index, ordered by their lowest atom.
func Fragments(g *core.Graph) [][]int {
	if g.Order() == 0 {
		return nil
	}
	comps := topo.ConnectedComponents(New(g))
	out := make([][]int, len(comps))
	for i, c := range comps {
		atoms := make([]int, len(c))
		for j, n := range c {
			atoms[j] = int(n.ID())
		}
		slices.Sort(atoms)
		out[i] = atoms
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}
