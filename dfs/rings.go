// File: rings.go
// Role: Ring-closure enumeration from DFS back edges.
// Determinism:
//   - Closures are reported in the order the forest traversal meets them.

package dfs

import "github.com/katalvlaran/beam/core"

// RingClosures returns the edges that close a ring when g is walked depth
// first from vertex 0 (every component included). Their number is the
// cyclomatic number E - V + C of the graph, i.e. the ring count.
func RingClosures(g *core.Graph) ([]core.Edge, error) {
	var closures []core.Edge
	_, err := DFS(g, 0,
		WithFullTraversal(),
		WithOnBackEdge(func(_, _ int, e core.Edge) error {
			closures = append(closures, e)
			return nil
		}))
	if err != nil {
		return nil, err
	}
	return closures, nil
}

// CountRings returns len(RingClosures(g)).
func CountRings(g *core.Graph) (int, error) {
	c, err := RingClosures(g)
	return len(c), err
}
