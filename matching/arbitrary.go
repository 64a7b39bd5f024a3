// SPDX-License-Identifier: MIT
//
// File: arbitrary.go
// Role: Single-pass greedy matching used to seed the maximum matcher.

package matching

// Arbitrary extends m greedily: every unmatched vertex of subset, in index
// order, is paired with its first unmatched neighbour in subset. It returns
// the number of subset vertices matched afterwards.
//
// A nil subset means every vertex. The result is maximal but not in general
// maximum; Maximise completes it.
//
// Complexity: O(V + E).
func Arbitrary(g Graph, m *Matching, subset []bool) int {
	n := g.Order()
	for v := 0; v < n; v++ {
		if !in(subset, v) || !m.Unmatched(v) {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if w != v && in(subset, w) && m.Unmatched(w) {
				m.Match(v, w)
				break
			}
		}
	}
	return countMatched(m, subset)
}

func countMatched(m *Matching, subset []bool) int {
	n := 0
	for v := range m.match {
		if in(subset, v) && !m.Unmatched(v) {
			n++
		}
	}
	return n
}
