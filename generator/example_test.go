package generator_test

import (
	"fmt"

	"github.com/katalvlaran/beam/generator"
	"github.com/katalvlaran/beam/parser"
)

// ExampleWrite writes alanine starting from its methyl group; the stereo
// descriptor follows the new neighbour order.
func ExampleWrite() {
	g := parser.MustParse("N[C@@H](C)C(=O)O")
	r, err := generator.Write(g, generator.WithStart(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.SMILES)
	fmt.Println(r.Order)

	// Output:
	// C[C@H](N)C(=O)O
	// [2 1 0 3 4 5]
}

// ExampleGenerate writes the Kekulé form of benzene.
func ExampleGenerate() {
	g := parser.MustParse("c1ccccc1", parser.WithKekulize())
	s, _ := generator.Generate(g)
	fmt.Println(s)

	// Output:
	// C1=CC=CC=C1
}
