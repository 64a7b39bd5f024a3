package core_test

import (
	"fmt"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/element"
)

// ExampleGraph builds acetaldehyde CC=O by hand and queries hydrogens.
func ExampleGraph() {
	// 1) Create the atoms
	g := core.NewGraph()
	c1 := g.AddAtom(core.OrganicAtom(element.Carbon, false))
	c2 := g.AddAtom(core.OrganicAtom(element.Carbon, false))
	o := g.AddAtom(core.OrganicAtom(element.Oxygen, false))

	// 2) Bond them
	_ = g.AddEdge(core.NewEdge(c1, c2, core.Implicit))
	_ = g.AddEdge(core.NewEdge(c2, o, core.Double))

	// 3) Hydrogens follow from the default valences
	for v := 0; v < g.Order(); v++ {
		fmt.Printf("%s H%d\n", g.Atom(v), g.ImplHCount(v))
	}

	// Output:
	// C H3
	// C H1
	// O H0
}

// ExampleTopology_OrderBy re-expresses a tetrahedral centre after swapping
// two neighbours.
func ExampleTopology_OrderBy() {
	t, _ := core.Tetrahedral(0, []int{1, 2, 3, 4}, core.TH1)
	swapped, _ := t.OrderBy([]int{1, 3, 2, 4})
	rotated, _ := t.OrderBy([]int{2, 3, 1, 4})
	fmt.Println(t.Configuration(), swapped.Configuration(), rotated.Configuration())

	// Output:
	// @TH1 @TH2 @TH1
}
