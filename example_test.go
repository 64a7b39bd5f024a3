package beam_test

import (
	"fmt"

	"github.com/katalvlaran/beam"
)

// ExampleNormalise rewrites bracketed atoms in their shortest form and
// Kekulizes pyridine.
func ExampleNormalise() {
	s, _ := beam.Normalise("[CH3][CH2][OH]")
	fmt.Println(s)

	k, _ := beam.Normalise("c1ccncc1", beam.WithKekule())
	fmt.Println(k)

	// Output:
	// CCO
	// C1=CC=NC=C1
}
