// SPDX-License-Identifier: MIT
//
// File: methods_topology.go
// Role: Per-vertex topology storage.

package core

import "fmt"

// AddTopology stores t at its centre, replacing any previous topology. The
// unknown topology is rejected because it binds no atom.
func (g *Graph) AddTopology(t Topology) error {
	u, err := t.Atom()
	if err != nil {
		return err
	}
	if !g.has(u) {
		return fmt.Errorf("%w: topology centre %d", ErrVertexNotFound, u)
	}
	for _, v := range t.nbrs {
		if !g.has(v) {
			return fmt.Errorf("%w: topology neighbour %d", ErrVertexNotFound, v)
		}
	}
	g.topologies[u] = t.clone()
	return nil
}

// Topology returns the topology at v, the unknown topology when none is set.
func (g *Graph) Topology(v int) Topology {
	if !g.has(v) {
		return Topology{}
	}
	return g.topologies[v].clone()
}

// ClearTopology removes the topology at v.
func (g *Graph) ClearTopology(v int) {
	if g.has(v) {
		g.topologies[v] = Topology{}
	}
}

// Topologies returns every known topology in centre order.
func (g *Graph) Topologies() []Topology {
	var out []Topology
	for _, t := range g.topologies {
		if t.Known() {
			out = append(out, t.clone())
		}
	}
	return out
}
