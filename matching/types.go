// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Matching state, the graph view matchers consume and sentinel errors.
// Determinism:
//   - Pairs() lists pairs by ascending lower endpoint.

package matching

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmatched is returned by Other for a vertex without a partner.
var ErrUnmatched = errors.New("matching: vertex is unmatched")

// Graph is the view a matcher walks. Neighbors order decides which partner
// is tried first, so callers control determinism through it. *core.Graph
// satisfies Graph.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

// Matching is a set of vertex-disjoint pairs over 0..n-1. The pairing is
// always symmetric: Other(Other(v)) == v for every matched v.
type Matching struct {
	match []int
}

// none marks an unmatched vertex.
const none = -1

// Empty returns a matching over n vertices with no pairs.
func Empty(n int) *Matching {
	m := &Matching{match: make([]int, n)}
	for i := range m.match {
		m.match[i] = none
	}
	return m
}

// Len is the number of vertices the matching covers.
func (m *Matching) Len() int { return len(m.match) }

// Match pairs u and v. Any pair u or v previously belonged to is dissolved,
// leaving the old partners unmatched.
func (m *Matching) Match(u, v int) {
	m.Unmatch(u)
	m.Unmatch(v)
	m.match[u] = v
	m.match[v] = u
}

// Unmatch dissolves the pair holding v, if any.
func (m *Matching) Unmatch(v int) {
	if w := m.match[v]; w != none {
		m.match[w] = none
		m.match[v] = none
	}
}

// Unmatched reports whether v has no partner.
func (m *Matching) Unmatched(v int) bool { return m.match[v] == none }

// Other returns the partner of v.
func (m *Matching) Other(v int) (int, error) {
	if m.match[v] == none {
		return none, fmt.Errorf("%w: %d", ErrUnmatched, v)
	}
	return m.match[v], nil
}

// Size is the number of pairs.
func (m *Matching) Size() int {
	n := 0
	for v, w := range m.match {
		if w > v {
			n++
		}
	}
	return n
}

// Pairs returns every pair as {lower, higher}.
func (m *Matching) Pairs() [][2]int {
	var out [][2]int
	for v, w := range m.match {
		if w > v {
			out = append(out, [2]int{v, w})
		}
	}
	return out
}

// String renders the pairs, e.g. "{0=1, 2=3}".
func (m *Matching) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.Pairs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d=%d", p[0], p[1])
	}
	sb.WriteByte('}')
	return sb.String()
}

// in reports whether v belongs to subset; a nil subset holds every vertex.
func in(subset []bool, v int) bool {
	return subset == nil || subset[v]
}
