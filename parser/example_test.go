package parser_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beam/parser"
)

// ExampleParse reads alanine and inspects its stereo centre.
func ExampleParse() {
	g, err := parser.Parse("N[C@@H](C)C(=O)O L-alanine")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Title(), g.Order(), g.Size())
	fmt.Println(g.Topology(1))

	// Output:
	// L-alanine 6 5
	// 1@TH2[0 1 2 3]
}

// ExampleParse_error shows where a malformed input went wrong.
func ExampleParse_error() {
	_, err := parser.Parse("CC(C")

	var pe *parser.Error
	if errors.As(err, &pe) {
		fmt.Println(pe.Msg, "at", pe.Pos, errors.Is(err, parser.ErrSyntax))
	}

	// Output:
	// unclosed branch at 2 true
}

// ExampleWithKekulize localises pyridine.
func ExampleWithKekulize() {
	g, _ := parser.Parse("c1ccncc1", parser.WithKekulize())
	for _, e := range g.AllEdges() {
		fmt.Print(e.Bond.Order())
	}
	fmt.Println()

	// Output:
	// 212121
}
