// Package dfs defines types and options for depth-first search traversal of
// a molecule, including pre-/post-order hooks, tree- and back-edge hooks,
// depth limiting, edge filtering, full-graph (forest) traversal, and basic
// diagnostics.
package dfs

import (
	"errors"

	"github.com/katalvlaran/beam/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is outside
	// 0..Order()-1.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// OnTreeEdge, if non-nil, is invoked for the edge u-v just before the
	// traversal descends from u into the undiscovered v.
	OnTreeEdge func(u, v int, e core.Edge) error

	// OnBackEdge, if non-nil, is invoked once per edge that closes a cycle:
	// u is the vertex being explored and v an ancestor still on the stack.
	OnBackEdge func(u, v int, e core.Edge) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each edge incident to u before
	// it is considered. Return false to skip it.
	FilterEdge func(u int, e core.Edge) bool

	// FullTraversal, if true, continues from every unvisited vertex in index
	// order after the start vertex's component (forest traversal).
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns a DFSOptions struct with:
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No edge filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithOnTreeEdge returns an Option that installs fn as the tree-edge hook.
func WithOnTreeEdge(fn func(u, v int, e core.Edge) error) Option {
	return func(o *DFSOptions) { o.OnTreeEdge = fn }
}

// WithOnBackEdge returns an Option that installs fn as the back-edge hook.
func WithOnBackEdge(fn func(u, v int, e core.Edge) error) Option {
	return func(o *DFSOptions) { o.OnBackEdge = fn }
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterEdge returns an Option that filters incident edges.
// If fn(u, e) == false, that edge is skipped and counted in SkippedEdges.
func WithFilterEdge(fn func(u int, e core.Edge) bool) Option {
	return func(o *DFSOptions) { o.FilterEdge = fn }
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Preorder records vertices in the sequence they were discovered.
	Preorder []int

	// Depth is the distance (#edges) of each vertex from its tree root,
	// -1 for unvisited vertices.
	Depth []int

	// Parent is the vertex each vertex was discovered from, -1 for roots and
	// unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool

	// Roots lists the root of each DFS tree in traversal order.
	Roots []int

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}
