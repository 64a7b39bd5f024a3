// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/element"
)

// BenchmarkAddEdge measures building a long carbon chain.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithCapacity(256))
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
		for v := 1; v < 256; v++ {
			g.AddAtom(core.OrganicAtom(element.Carbon, false))
			_ = g.AddEdge(core.NewEdge(v-1, v, core.Implicit))
		}
	}
}

// BenchmarkPermute measures relabelling a 256-atom chain.
func BenchmarkPermute(b *testing.B) {
	g := core.NewGraph()
	g.AddAtom(core.OrganicAtom(element.Carbon, false))
	for v := 1; v < 256; v++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
		_ = g.AddEdge(core.NewEdge(v-1, v, core.Implicit))
	}
	perm := make([]int, g.Order())
	for i := range perm {
		perm[i] = g.Order() - 1 - i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Permute(perm)
	}
}

// BenchmarkOrderByOctahedral measures signature matching over 30 configurations.
func BenchmarkOrderByOctahedral(b *testing.B) {
	t, _ := core.Octahedral(0, []int{1, 2, 3, 4, 5, 6}, core.OH17)
	order := []int{6, 4, 2, 1, 3, 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.OrderBy(order)
	}
}
