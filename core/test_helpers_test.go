// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for beam/core.
//
// Purpose:
//   - Provide small, deterministic molecule fixtures built without the parser.
//   - Enumerate permutations for the topology re-ordering laws.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/element"
)

// chain builds a linear molecule of organic atoms joined by bonds.
// len(bonds) must be len(elems)-1.
func chain(t *testing.T, elems []element.Element, bonds []core.Bond) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(len(elems)))
	for _, e := range elems {
		g.AddAtom(core.OrganicAtom(e, false))
	}
	for i, b := range bonds {
		require.NoError(t, g.AddEdge(core.NewEdge(i, i+1, b)))
	}
	return g
}

// ethanol returns C-C-O.
func ethanol(t *testing.T) *core.Graph {
	return chain(t,
		[]element.Element{element.Carbon, element.Carbon, element.Oxygen},
		[]core.Bond{core.Implicit, core.Implicit})
}

// benzene returns an aromatic six-ring c1ccccc1.
func benzene(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, true))
	}
	for i := 0; i < 6; i++ {
		require.NoError(t, g.AddEdge(core.NewEdge(i, (i+1)%6, core.Implicit)))
	}
	return g
}

// permutations returns every ordering of xs.
func permutations(xs []int) [][]int {
	if len(xs) <= 1 {
		return [][]int{append([]int(nil), xs...)}
	}
	var out [][]int
	for i := range xs {
		rest := make([]int, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{xs[i]}, p...))
		}
	}
	return out
}

// seqRange returns 1..n.
func seqRange(lo, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + i
	}
	return out
}
