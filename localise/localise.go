// SPDX-License-Identifier: MIT
//
// File: localise.go
// Role: Kekulisation: assigns alternating single/double bonds to the
//       aromatic (delocalised) parts of a molecule.
// Determinism:
//   - Candidates are matched in ascending index with small-ring neighbours
//     preferred, so the same input always yields the same Kekulé form.

package localise

import (
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/beam/chemgraph"
	"github.com/katalvlaran/beam/core"
	"github.com/katalvlaran/beam/matching"
	"github.com/katalvlaran/beam/unionfind"
)

// ErrKekulization indicates an aromatic system without a perfect matching of
// the atoms that need a double bond.
var ErrKekulization = errors.New("localise: no Kekulé structure")

// Error reports the first candidate atom left without a double-bond partner.
type Error struct {
	Atom   int    // atom index
	Symbol string // atom symbol as written
	System int    // size of the pi subsystem the atom belongs to
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: atom %d (%s) has no double-bond partner in a %d-atom system",
		ErrKekulization, e.Atom, e.Symbol, e.System)
}

func (e *Error) Unwrap() error { return ErrKekulization }

// SmallRingSize is the largest ring whose bonds are preferred when choosing
// double-bond partners.
const SmallRingSize = 7

// InSmallRing reports whether the u-v bond lies on a ring of at most
// SmallRingSize atoms.
func InSmallRing(g *core.Graph, u, v int) bool {
	return chemgraph.RingSize(g, u, v, SmallRingSize) > 0
}

// Kekulize returns a copy of g in which every aromatic atom is aliphatic and
// every aromatic bond is single or double.
//
// Steps:
//  1. Mark candidates: aromatic atoms whose valence leaves room for one more
//     bond (they must receive exactly one double bond).
//  2. Mark candidate edges: aromatic-labelled or implicit bonds between two
//     candidates.
//  3. Split candidates into connected subsystems with a union-find.
//  4. Match each subsystem: greedy first, then augmenting paths, over a view
//     listing small-ring neighbours first. An unmatched candidate is an error.
//  5. Matched edges become Double, other aromatic bonds Single; atoms lose
//     the aromatic flag. An organic atom whose implicit hydrogen count would
//     change becomes a bracket atom carrying the original count.
//
// Topologies are copied unchanged.
func Kekulize(g *core.Graph) (*core.Graph, error) {
	n := g.Order()

	// 1. Candidates
	candidate := make([]bool, n)
	aromatic := false
	for v := 0; v < n; v++ {
		a := g.Atom(v)
		if !a.Aromatic {
			continue
		}
		aromatic = true
		used := g.BondedValence(v) + g.ImplHCount(v)
		candidate[v] = a.Element.NeedsPiBond(used, a.Charge)
	}
	if !aromatic {
		return g.Clone(), nil
	}

	// 2.-3. Candidate edges and subsystems
	view := &piView{nbrs: make([][]int, n)}
	sets := unionfind.New(n)
	for _, e := range g.AllEdges() {
		if candidate[e.U] && candidate[e.V] && isDelocalised(g, e) {
			view.nbrs[e.U] = append(view.nbrs[e.U], e.V)
			view.nbrs[e.V] = append(view.nbrs[e.V], e.U)
			sets.Union(e.U, e.V)
		}
	}
	for v := range view.nbrs {
		view.order(g, v)
	}

	// 4. Match per subsystem
	m := matching.Empty(n)
	for _, members := range subsystems(candidate, sets) {
		subset := make([]bool, n)
		for _, v := range members {
			subset[v] = true
		}
		log.WithField("atoms", len(members)).Debug("localise: matching pi subsystem")
		matched := matching.Arbitrary(view, m, subset)
		if matched < len(members) {
			matched = matching.Maximise(view, m, matched, subset)
		}
		if matched < len(members) {
			for _, v := range members {
				if m.Unmatched(v) {
					return nil, &Error{Atom: v, Symbol: g.Atom(v).Symbol(), System: len(members)}
				}
			}
		}
	}

	// 5. Rewrite bonds and atoms
	h := g.Clone()
	for _, e := range g.AllEdges() {
		if !isDelocalised(g, e) {
			continue
		}
		b := core.Single
		if other, err := m.Other(e.U); err == nil && other == e.V {
			b = core.Double
		}
		if err := h.SetBond(e.U, e.V, b); err != nil {
			return nil, err
		}
	}
	for v := 0; v < n; v++ {
		a := g.Atom(v)
		if !a.Aromatic {
			continue
		}
		hydrogens := g.ImplHCount(v)
		_ = h.SetAtom(v, a.Aliphatic())
		if a.IsOrganic() && h.ImplHCount(v) != hydrogens {
			_ = h.SetAtom(v, a.Aliphatic().AsBracket(hydrogens))
		}
	}
	return h, nil
}

// isDelocalised reports whether e is an aromatic bond: labelled ':' or
// written implicitly between two aromatic atoms.
func isDelocalised(g *core.Graph, e core.Edge) bool {
	switch e.Bond {
	case core.Aromatic:
		return true
	case core.Implicit:
		return g.Atom(e.U).Aromatic && g.Atom(e.V).Aromatic
	}
	return false
}

// subsystems groups candidates by union-find root, each group in ascending
// index, groups ordered by their lowest atom.
func subsystems(candidate []bool, sets *unionfind.UnionFind) [][]int {
	index := map[int]int{}
	var out [][]int
	for v, ok := range candidate {
		if !ok {
			continue
		}
		r := sets.Find(v)
		i, seen := index[r]
		if !seen {
			i = len(out)
			index[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}
	return out
}

// piView is the candidate subgraph handed to the matchers.
type piView struct {
	nbrs [][]int
}

func (p *piView) Order() int            { return len(p.nbrs) }
func (p *piView) Neighbors(v int) []int { return p.nbrs[v] }

// order sorts the candidate neighbours of v: bonds on small rings first,
// then ascending index.
func (p *piView) order(g *core.Graph, v int) {
	if len(p.nbrs[v]) < 2 {
		return
	}
	small := make(map[int]bool, len(p.nbrs[v]))
	for _, w := range p.nbrs[v] {
		small[w] = InSmallRing(g, v, w)
	}
	slices.SortFunc(p.nbrs[v], func(a, b int) int {
		if small[a] != small[b] {
			if small[a] {
				return -1
			}
			return 1
		}
		return a - b
	})
}
