// SPDX-License-Identifier: MIT
//
// File: generator.go
// Role: SMILES writer: a depth-first traversal fixes the spanning tree and
//       ring bonds, then atoms, bonds, ring labels and branches are written.
// Determinism:
//   - Neighbours are visited in adjacency order; sort the graph first
//     (core.Graph.Sort) to select a traversal strategy.
// AI-HINT (file):
//   - written[v] is the neighbour order a reader recovers for v: parent,
//     ring closures, ring openings, then children. Stereo is re-expressed
//     into exactly that order.

package generator

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/dfs"
)

// ErrTopology indicates a stored topology whose neighbours are not the
// bonded neighbours of its centre.
var ErrTopology = errors.New("generator: topology does not match the bonds")

// Options configures Write.
type Options struct {
	// Start is the atom written first. Other components follow in
	// ascending order of their lowest atom, separated by '.'.
	Start int

	// AromaticBonds writes ':' between aromatic atoms instead of leaving
	// the bond implicit.
	AromaticBonds bool
}

// Option configures Write.
type Option func(*Options)

// DefaultOptions starts at atom 0 with implicit aromatic bonds.
func DefaultOptions() Options {
	return Options{}
}

// WithStart selects the first atom written.
func WithStart(v int) Option {
	return func(o *Options) { o.Start = v }
}

// WithAromaticBonds writes aromatic bonds explicitly.
func WithAromaticBonds() Option {
	return func(o *Options) { o.AromaticBonds = true }
}

// Result is a written molecule.
type Result struct {
	SMILES string

	// Order lists atom indices in the order they were written.
	Order []int
}

// ringBond is a back edge: opened at the ancestor, closed at the descendant.
type ringBond struct {
	open, close int
	edge        core.Edge
}

type writer struct {
	g    *core.Graph
	opts Options
	sb   strings.Builder

	parent   []int
	children [][]int
	rings    []ringBond
	opening  [][]int // ring ids opened at each atom
	closing  [][]int // ring ids closed at each atom
	written  [][]int

	label []int  // per ring id
	inUse []bool // per label
}

// Generate returns the SMILES of g.
func Generate(g *core.Graph, opts ...Option) (string, error) {
	r, err := Write(g, opts...)
	if err != nil {
		return "", err
	}
	return r.SMILES, nil
}

// Write returns the SMILES of g and the order its atoms were written in.
//
// Steps:
//  1. Depth-first traversal from Start, then from every unvisited atom:
//     tree edges become branches, back edges ring bonds.
//  2. Fix the written neighbour order of every atom.
//  3. Write each component: atom, ring closures, ring openings (lowest free
//     label), then children, all but the last in parentheses.
//
// A ring bond's symbol is written at its opening. A label freed at an atom
// is reused only by later atoms.
func Write(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.Order()
	w := &writer{
		g:        g,
		opts:     o,
		children: make([][]int, n),
		opening:  make([][]int, n),
		closing:  make([][]int, n),
		written:  make([][]int, n),
	}

	// 1. Spanning forest and ring bonds
	res, err := dfs.DFS(g, o.Start,
		dfs.WithFullTraversal(),
		dfs.WithOnTreeEdge(func(u, v int, _ core.Edge) error {
			w.children[u] = append(w.children[u], v)
			return nil
		}),
		dfs.WithOnBackEdge(func(u, v int, e core.Edge) error {
			id := len(w.rings)
			w.rings = append(w.rings, ringBond{open: v, close: u, edge: e})
			w.opening[v] = append(w.opening[v], id)
			w.closing[u] = append(w.closing[u], id)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	w.parent = res.Parent
	w.label = make([]int, len(w.rings))

	// 2. Written neighbour order
	for v := 0; v < n; v++ {
		var order []int
		if p := w.parent[v]; p >= 0 {
			order = append(order, p)
		}
		for _, id := range w.closing[v] {
			order = append(order, w.rings[id].open)
		}
		for _, id := range w.opening[v] {
			order = append(order, w.rings[id].close)
		}
		w.written[v] = append(order, w.children[v]...)
	}

	// 3. Text
	for i, root := range res.Roots {
		if i > 0 {
			w.sb.WriteByte('.')
		}
		if err := w.emit(root); err != nil {
			return nil, err
		}
	}
	return &Result{SMILES: w.sb.String(), Order: res.Preorder}, nil
}

func (w *writer) emit(u int) error {
	if err := w.writeAtom(u); err != nil {
		return err
	}

	var freed []int
	for _, id := range w.closing[u] {
		w.writeLabel(w.label[id])
		freed = append(freed, w.label[id])
	}
	for _, id := range w.opening[u] {
		r := w.rings[id]
		w.sb.WriteString(w.bondText(u, r.close, r.edge))
		w.label[id] = w.allocate()
		w.writeLabel(w.label[id])
	}
	for _, l := range freed {
		w.inUse[l] = false
	}

	kids := w.children[u]
	for i, c := range kids {
		branch := i < len(kids)-1
		if branch {
			w.sb.WriteByte('(')
		}
		e, err := w.g.Edge(u, c)
		if err != nil {
			return err
		}
		w.sb.WriteString(w.bondText(u, c, e))
		if err := w.emit(c); err != nil {
			return err
		}
		if branch {
			w.sb.WriteByte(')')
		}
	}
	return nil
}

// allocate returns the lowest free ring label, starting at 1.
func (w *writer) allocate() int {
	for l := 1; ; l++ {
		if l >= len(w.inUse) {
			w.inUse = append(w.inUse, make([]bool, l-len(w.inUse)+1)...)
		}
		if !w.inUse[l] {
			w.inUse[l] = true
			return l
		}
	}
}

func (w *writer) writeLabel(l int) {
	switch {
	case l < 10:
		w.sb.WriteByte(byte('0' + l))
	case l < 100:
		w.sb.WriteByte('%')
		w.sb.WriteString(strconv.Itoa(l))
	default:
		w.sb.WriteString("%(")
		w.sb.WriteString(strconv.Itoa(l))
		w.sb.WriteByte(')')
	}
}

// bondText is the symbol for the u-v bond read from u; empty when a reader
// infers the same bond from the atoms.
func (w *writer) bondText(u, v int, e core.Edge) string {
	aromatic := w.g.Atom(u).Aromatic && w.g.Atom(v).Aromatic
	switch b := e.BondFrom(u); b {
	case core.Implicit:
		if aromatic && w.opts.AromaticBonds {
			return ":"
		}
		return ""
	case core.Single:
		if aromatic {
			return "-"
		}
		return ""
	case core.Aromatic:
		if aromatic && !w.opts.AromaticBonds {
			return ""
		}
		return ":"
	default:
		return b.String()
	}
}

func (w *writer) writeAtom(u int) error {
	c, err := w.configuration(u)
	if err != nil {
		return err
	}
	a := w.g.Atom(u)
	if c == core.Unknown && w.organic(u) {
		w.sb.WriteString(a.Symbol())
		return nil
	}
	w.sb.WriteByte('[')
	if a.HasIsotope() {
		w.sb.WriteString(strconv.Itoa(a.Isotope))
	}
	w.sb.WriteString(a.Symbol())
	w.sb.WriteString(c.String())
	a.Hydrogens = w.g.ImplHCount(u)
	core.WriteBracketSuffix(&w.sb, a)
	w.sb.WriteByte(']')
	return nil
}

// organic reports whether u can be written without brackets: an
// organic-subset element, no isotope, charge or class, and a hydrogen count
// the default valence reproduces.
func (w *writer) organic(u int) bool {
	a := w.g.Atom(u)
	if !a.Element.Organic() || a.HasIsotope() || a.Charge != 0 || a.Class != 0 {
		return false
	}
	if a.Aromatic && !a.Element.Aromatic() {
		return false
	}
	if a.IsOrganic() {
		return true
	}
	return a.Element.ImplicitHydrogens(w.g.BondedValence(u), 0, a.Aromatic) == a.Hydrogens
}

// configuration re-expresses the topology of u in its written neighbour
// order. TH and AL use the short '@'/'@@' form unless a reader would infer
// the other class from the bonds.
func (w *writer) configuration(u int) (core.Configuration, error) {
	t := w.g.Topology(u)
	if !t.Known() {
		return core.Unknown, nil
	}
	k := t.Configuration().Class()

	var order []int
	if k == core.ClassAL {
		order = w.alleneOrder(u)
	} else {
		order = slices.Clone(w.written[u])
		if slices.Contains(t.Neighbors(), u) {
			at := 0
			if w.parent[u] >= 0 {
				at = 1
			}
			order = slices.Insert(order, at, u)
		}
	}
	rt, err := t.OrderBy(order)
	if err != nil {
		return core.Unknown, fmt.Errorf("%w: atom %d: %w", ErrTopology, u, err)
	}

	c := rt.Configuration()
	cumulated := core.IsCumulatedCentre(w.g, u)
	if k == core.ClassTH && !cumulated || k == core.ClassAL && cumulated {
		if c.Seq() == 1 {
			return core.AntiClockwise, nil
		}
		return core.Clockwise, nil
	}
	return c, nil
}

// alleneOrder lists the substituents of both terminals of the cumulated
// centre u, each terminal in written order; a terminal with one substituent
// contributes itself for its hydrogen.
func (w *writer) alleneOrder(u int) []int {
	order := make([]int, 0, 4)
	for _, t := range w.written[u] {
		var side []int
		for _, x := range w.written[t] {
			if x != u {
				side = append(side, x)
			}
		}
		if len(side) == 1 {
			side = append(side, t)
		}
		order = append(order, side...)
	}
	return order
}
