package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/dfs"
	"github.com/katalvlaran/beam/element"
)

// ExampleDFS walks a three-membered ring and reports the closing edge.
func ExampleDFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddAtom(core.OrganicAtom(element.Carbon, false))
	}
	_ = g.AddEdge(core.NewEdge(0, 1, core.Implicit))
	_ = g.AddEdge(core.NewEdge(1, 2, core.Implicit))
	_ = g.AddEdge(core.NewEdge(2, 0, core.Implicit))

	res, _ := dfs.DFS(g, 0, dfs.WithOnBackEdge(func(u, v int, _ core.Edge) error {
		fmt.Printf("ring closure %d-%d\n", u, v)
		return nil
	}))
	fmt.Println("preorder:", res.Preorder)

	// Output:
	// ring closure 2-0
	// preorder: [0 1 2]
}
