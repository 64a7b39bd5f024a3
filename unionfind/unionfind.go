// Package unionfind is a disjoint-set forest over the integers 0..n-1 with
// path compression and union by rank.
//
// The localiser uses it to split candidate atoms into independent
// pi-subsystems and the maximum matcher to track the bases of contracted
// blossoms.
//
// Complexity: Find and Union run in amortised O(α(n)).
package unionfind

// UnionFind is a disjoint-set forest. The zero value is empty; use New.
type UnionFind struct {
	parent []int
	rank   []int
}

// New returns n singleton sets.
func New(n int) *UnionFind {
	u := &UnionFind{parent: make([]int, n), rank: make([]int, n)}
	u.Clear()
	return u
}

// Len is the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Find returns the representative of the set holding x.
func (u *UnionFind) Find(x int) int {
	// Walk up until the root, halving the path as we go.
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union merges the sets of x and y and returns the new representative.
func (u *UnionFind) Union(x, y int) int {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return rx
	}
	// Attach the shallower tree under the deeper root.
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}
	return rx
}

// UnionInto merges the set of x into the set of root so that Find returns
// Find(root) for both afterwards.
func (u *UnionFind) UnionInto(root, x int) {
	rr, rx := u.Find(root), u.Find(x)
	if rr == rx {
		return
	}
	u.parent[rx] = rr
	if u.rank[rr] <= u.rank[rx] {
		u.rank[rr] = u.rank[rx] + 1
	}
}

// Connected reports whether x and y share a set.
func (u *UnionFind) Connected(x, y int) bool { return u.Find(x) == u.Find(y) }

// Clear resets every element to its own singleton set.
func (u *UnionFind) Clear() {
	for i := range u.parent {
		u.parent[i] = i
		u.rank[i] = 0
	}
}
