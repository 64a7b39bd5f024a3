// Package chemgraph exposes a core.Graph through the gonum graph interfaces,
// so gonum's traversal and topology algorithms run directly on a molecule.
//
// Atom indices are node IDs and every bond is an undirected edge. Node
// iteration follows atom index order and neighbour iteration follows the
// adjacency order of the molecule, so results are deterministic.
package chemgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/beam/core"
)

// Molecule implements graph.Undirected over a core.Graph.
type Molecule struct {
	g *core.Graph
}

var _ graph.Undirected = (*Molecule)(nil)

// New wraps g. The view reads g lazily; mutations of g are visible.
func New(g *core.Graph) *Molecule {
	return &Molecule{g: g}
}

func (m *Molecule) has(id int64) bool {
	return id >= 0 && id < int64(m.g.Order())
}

// Node returns the node with the given ID, nil if it is not an atom.
func (m *Molecule) Node(id int64) graph.Node {
	if !m.has(id) {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all atoms in index order.
func (m *Molecule) Nodes() graph.Nodes {
	n := m.g.Order()
	if n == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbours of id in adjacency order.
func (m *Molecule) From(id int64) graph.Nodes {
	if !m.has(id) {
		return graph.Empty
	}
	nbrs := m.g.Neighbors(int(id))
	if len(nbrs) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(nbrs))
	for i, v := range nbrs {
		nodes[i] = simple.Node(v)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether x and y are bonded.
func (m *Molecule) HasEdgeBetween(xid, yid int64) bool {
	return m.has(xid) && m.has(yid) && m.g.Adjacent(int(xid), int(yid))
}

// Edge returns the bond from u to v, nil if there is none.
func (m *Molecule) Edge(uid, vid int64) graph.Edge {
	if !m.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

// EdgeBetween is Edge; bonds are undirected.
func (m *Molecule) EdgeBetween(xid, yid int64) graph.Edge {
	return m.Edge(xid, yid)
}
