// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/AllEdges/Neighbors/
//       Adjacent/Edge/SetBond.
// Determinism:
//   - Edges(v) and Neighbors(v) follow the adjacency order of v.
//   - AllEdges() follows edge id (insertion) order.
// AI-HINT (file):
//   - Degrees in molecules are tiny, so Adjacent/Edge scan the shorter of the
//     two adjacency lists instead of keeping a pair index.

package core

import "fmt"

// AddEdge inserts e into the arena and both adjacency lists.
//
// Steps:
//  1. Validate endpoints (ErrVertexNotFound) and loops (ErrLoopNotAllowed).
//  2. Reject a second edge between the same endpoints (ErrDuplicateEdge).
//  3. Append to the arena; append the id to adj[U] and adj[V].
//
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) AddEdge(e Edge) error {
	if !g.has(e.U) || !g.has(e.V) {
		return fmt.Errorf("%w: edge %d-%d with %d atoms", ErrVertexNotFound, e.U, e.V, len(g.atoms))
	}
	if e.U == e.V {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, e.U)
	}
	if g.edgeID(e.U, e.V) >= 0 {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, e.U, e.V)
	}
	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[e.U] = append(g.adj[e.U], id)
	g.adj[e.V] = append(g.adj[e.V], id)
	return nil
}

// edgeID returns the arena id of the u-v edge, or -1.
func (g *Graph) edgeID(u, v int) int {
	a, b := u, v
	if len(g.adj[b]) < len(g.adj[a]) {
		a, b = b, a
	}
	for _, id := range g.adj[a] {
		if g.edges[id].Other(a) == b {
			return id
		}
	}
	return -1
}

// Edges returns the edges incident to v in adjacency order.
func (g *Graph) Edges(v int) []Edge {
	out := make([]Edge, len(g.adj[v]))
	for i, id := range g.adj[v] {
		out[i] = g.edges[id]
	}
	return out
}

// AllEdges returns every edge in insertion order.
func (g *Graph) AllEdges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the vertices bonded to v in adjacency order.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, len(g.adj[v]))
	for i, id := range g.adj[v] {
		out[i] = g.edges[id].Other(v)
	}
	return out
}

// Adjacent reports whether u and v are bonded.
func (g *Graph) Adjacent(u, v int) bool {
	if !g.has(u) || !g.has(v) {
		return false
	}
	return g.edgeID(u, v) >= 0
}

// Edge returns the bond between u and v.
func (g *Graph) Edge(u, v int) (Edge, error) {
	if !g.has(u) || !g.has(v) {
		return Edge{}, ErrVertexNotFound
	}
	id := g.edgeID(u, v)
	if id < 0 {
		return Edge{}, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	return g.edges[id], nil
}

// SetBond relabels the u-v edge. Directional labels are interpreted from u.
func (g *Graph) SetBond(u, v int, b Bond) error {
	if !g.has(u) || !g.has(v) {
		return ErrVertexNotFound
	}
	id := g.edgeID(u, v)
	if id < 0 {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, u, v)
	}
	if g.edges[id].U != u {
		b = b.Inverse()
	}
	g.edges[id].Bond = b
	return nil
}
