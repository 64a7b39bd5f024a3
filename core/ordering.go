// SPDX-License-Identifier: MIT
//
// File: ordering.go
// Role: Visit-order strategies and in-place adjacency sorting.
// Determinism:
//   - Sort is stable: edges a comparator cannot tell apart keep their order.

package core

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/beam/element"
)

// EdgeComparator orders two edges incident to u. Negative means a is
// visited before b.
type EdgeComparator func(g *Graph, u int, a, b Edge) int

// CanonicalFirst visits lower-indexed neighbours first. Applied after
// permuting a graph by a canonical labelling it yields a canonical visit.
func CanonicalFirst(_ *Graph, u int, a, b Edge) int {
	return cmp.Compare(a.Other(u), b.Other(u))
}

// VisitHydrogenFirst visits explicit hydrogen neighbours first.
func VisitHydrogenFirst(g *Graph, u int, a, b Edge) int {
	ha := g.atoms[a.Other(u)].Element == element.Hydrogen
	hb := g.atoms[b.Other(u)].Element == element.Hydrogen
	switch {
	case ha && !hb:
		return -1
	case hb && !ha:
		return 1
	}
	return 0
}

// VisitHighOrderFirst visits neighbours over higher-order bonds first.
func VisitHighOrderFirst(_ *Graph, _ int, a, b Edge) int {
	return cmp.Compare(b.Bond.Order(), a.Bond.Order())
}

// Chain composes comparators; later ones break ties of earlier ones.
func Chain(cmps ...EdgeComparator) EdgeComparator {
	return func(g *Graph, u int, a, b Edge) int {
		for _, c := range cmps {
			if r := c(g, u, a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Sort reorders every adjacency list with c. Topologies keep their own
// neighbour order and are not affected.
// Complexity: O(sum deg(v) log deg(v)).
func (g *Graph) Sort(c EdgeComparator) {
	if c == nil {
		return
	}
	for u, ids := range g.adj {
		slices.SortStableFunc(ids, func(x, y int) int {
			return c(g, u, g.edges[x], g.edges[y])
		})
	}
}
