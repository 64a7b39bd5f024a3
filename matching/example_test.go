package matching_test

import (
	"fmt"

	"github.com/katalvlaran/beam/matching"
)

// ExampleMaximum finds a perfect matching on a path the greedy pass misses.
func ExampleMaximum() {
	// 2 - 0 - 1 - 3
	g := graphOf(4, [][2]int{{0, 1}, {0, 2}, {1, 3}})

	greedy := matching.Empty(g.Order())
	matching.Arbitrary(g, greedy, nil)
	fmt.Println("greedy:", greedy)

	best, n := matching.Maximum(g, nil)
	fmt.Println("maximum:", best, n)

	// Output:
	// greedy: {0=1}
	// maximum: {0=2, 1=3} 4
}
