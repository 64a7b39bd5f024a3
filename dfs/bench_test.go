package dfs_test

import (
	"testing"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/dfs"
	"github.com/katalvlaran/beam/element"
)

// BenchmarkDFSLongChain measures a 10k-atom chain, the deepest recursion a
// polymer produces.
func BenchmarkDFSLongChain(b *testing.B) {
	const n = 10000
	g := core.NewGraph(core.WithCapacity(n))
	g.AddAtom(core.OrganicAtom(element.Carbon, false))
	for v := 1; v < n; v++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
		_ = g.AddEdge(core.NewEdge(v-1, v, core.Implicit))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}
