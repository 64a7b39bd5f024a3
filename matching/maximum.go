// SPDX-License-Identifier: MIT
//
// File: maximum.go
// Role: Edmonds' blossom algorithm: grows alternating trees from unmatched
//       vertices, contracting odd cycles, until no augmenting path remains.
// Determinism:
//   - Roots are tried in ascending index; neighbours in g.Neighbors order.
// AI-HINT (file):
//   - Blossom bases live in a unionfind.UnionFind whose representatives are
//     always the base vertex itself.

package matching

import "github.com/katalvlaran/beam/unionfind"

// Maximise augments m until it is a maximum matching of g restricted to
// subset. nMatched is the number of subset vertices matched on entry (as
// returned by Arbitrary); the updated count is returned.
//
// Steps:
//  1. Count the subset; stop as soon as every subset vertex is matched.
//  2. For each unmatched subset vertex in index order, search for an
//     augmenting path and flip it when found.
//  3. A vertex without an augmenting path never gains one later, so a single
//     pass suffices.
//
// Complexity: O(V^3).
func Maximise(g Graph, m *Matching, nMatched int, subset []bool) int {
	n := g.Order()
	total := 0
	for v := 0; v < n; v++ {
		if in(subset, v) {
			total++
		}
	}
	s := newSearch(g, m, subset)
	for v := 0; v < n && nMatched < total; v++ {
		if !in(subset, v) || !m.Unmatched(v) {
			continue
		}
		if end := s.findPath(v); end != none {
			s.augment(end)
			nMatched += 2
		}
	}
	return nMatched
}

// Maximum returns a maximum matching of g restricted to subset, seeded
// greedily, and the number of subset vertices it matches.
func Maximum(g Graph, subset []bool) (*Matching, int) {
	m := Empty(g.Order())
	n := Arbitrary(g, m, subset)
	return m, Maximise(g, m, n, subset)
}

// search holds the per-root state of the alternating-tree growth.
type search struct {
	g      Graph
	m      *Matching
	subset []bool

	base    *unionfind.UnionFind
	parent  []int  // odd vertex -> even vertex it was reached from
	even    []bool // in the tree at even depth (or inside a blossom)
	inPath  []bool // lca scratch
	blossom []bool // bases on the current blossom cycle
	queue   []int
}

func newSearch(g Graph, m *Matching, subset []bool) *search {
	n := g.Order()
	return &search{
		g:       g,
		m:       m,
		subset:  subset,
		base:    unionfind.New(n),
		parent:  make([]int, n),
		even:    make([]bool, n),
		inPath:  make([]bool, n),
		blossom: make([]bool, n),
	}
}

func (s *search) reset(root int) {
	s.base.Clear()
	for i := range s.parent {
		s.parent[i] = none
		s.even[i] = false
	}
	s.even[root] = true
	s.queue = append(s.queue[:0], root)
}

// findPath grows an alternating tree from root and returns the unmatched
// vertex ending an augmenting path, or none.
func (s *search) findPath(root int) int {
	s.reset(root)
	for len(s.queue) > 0 {
		v := s.queue[0]
		s.queue = s.queue[1:]
		for _, w := range s.g.Neighbors(v) {
			if !in(s.subset, w) || s.base.Find(v) == s.base.Find(w) || s.m.match[v] == w {
				continue
			}
			if w == root || (s.m.match[w] != none && s.parent[s.m.match[w]] != none) {
				// w is even: v-w closes an odd cycle
				s.contract(v, w)
				continue
			}
			if s.parent[w] == none {
				s.parent[w] = v
				if s.m.match[w] == none {
					return w
				}
				mate := s.m.match[w]
				s.even[mate] = true
				s.queue = append(s.queue, mate)
			}
		}
	}
	return none
}

// contract collapses the blossom closed by the edge v-w onto its base.
func (s *search) contract(v, w int) {
	b := s.lca(v, w)
	for i := range s.blossom {
		s.blossom[i] = false
	}
	s.markPath(v, b, w)
	s.markPath(w, b, v)

	// collect first: merging changes Find results of later vertices
	var members []int
	for i := range s.blossom {
		if in(s.subset, i) && s.blossom[s.base.Find(i)] {
			members = append(members, i)
		}
	}
	for _, i := range members {
		s.base.UnionInto(b, i)
		if !s.even[i] {
			s.even[i] = true
			s.queue = append(s.queue, i)
		}
	}
}

// lca returns the base of the nearest common ancestor of a and b in the
// alternating tree.
func (s *search) lca(a, b int) int {
	for i := range s.inPath {
		s.inPath[i] = false
	}
	for {
		a = s.base.Find(a)
		s.inPath[a] = true
		if s.m.match[a] == none {
			break
		}
		a = s.parent[s.m.match[a]]
	}
	for {
		b = s.base.Find(b)
		if s.inPath[b] {
			return b
		}
		b = s.parent[s.m.match[b]]
	}
}

// markPath walks from v up to base b, marking blossom bases and pointing the
// odd vertices back across the cycle through child.
func (s *search) markPath(v, b, child int) {
	for s.base.Find(v) != b {
		mate := s.m.match[v]
		s.blossom[s.base.Find(v)] = true
		s.blossom[s.base.Find(mate)] = true
		s.parent[v] = child
		child = mate
		v = s.parent[mate]
	}
}

// augment flips the matched and unmatched edges along the path ending at
// end.
func (s *search) augment(end int) {
	for v := end; v != none; {
		pv := s.parent[v]
		next := s.m.match[pv]
		s.m.match[v] = pv
		s.m.match[pv] = v
		v = next
	}
}
