// Package dfs implements depth-first search (single-source and forest) on
// core.Graph. Vertices are atom indices and neighbours are explored in
// adjacency order, so the traversal is fully determined by the graph and any
// core.Graph.Sort applied to it.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order), OnExit (post-order), OnTreeEdge and OnBackEdge
//   - Limits: MaxDepth, FilterEdge, SkippedEdges diagnostic count
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - any error returned by a hook, wrapped with the vertex it fired on.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/beam/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
	state []int       // White, Gray or Black per vertex
}

// DFS performs depth-first search on graph g from start. With
// WithFullTraversal it then continues from every unvisited vertex in
// ascending index order.
// Returns DFSResult or error if aborted by a hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start; an empty graph is fine in forest mode
	n := g.Order()
	if (start < 0 || start >= n) && !(dopts.FullTraversal && n == 0) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:    make([]int, 0, n),
		Preorder: make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
		Visited:  make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res, state: make([]int, n)}

	// 5. Traverse: start tree, then the rest of the forest
	if n > 0 {
		if err := walker.root(start); err != nil {
			return res, err
		}
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.root(v); err != nil {
					return res, err
				}
			}
		}
	}

	// 6. Expose diagnostics
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

func (w *dfsWalker) root(v int) error {
	w.res.Roots = append(w.res.Roots, v)
	return w.traverse(v, -1, 0)
}

// traverse visits vertex v, reached from parent, at the given depth.
func (w *dfsWalker) traverse(v, parent, depth int) error {
	// 1. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark visited and record depth
	w.state[v] = Gray
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Preorder = append(w.res.Preorder, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore incident edges in adjacency order
	for _, e := range w.graph.Edges(v) {
		nb := e.Other(v)
		if nb == parent {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(v, e) {
			w.opts.SkippedEdges++
			continue
		}
		switch w.state[nb] {
		case White:
			if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			if w.opts.OnTreeEdge != nil {
				if err := w.opts.OnTreeEdge(v, nb, e); err != nil {
					w.res.Order = nil
					return fmt.Errorf("dfs: OnTreeEdge hook for %d-%d: %w", v, nb, err)
				}
			}
			if err := w.traverse(nb, v, depth+1); err != nil {
				return err
			}
		case Gray:
			// ancestor on the stack: the edge closes a cycle
			if w.opts.OnBackEdge != nil {
				if err := w.opts.OnBackEdge(v, nb, e); err != nil {
					w.res.Order = nil
					return fmt.Errorf("dfs: OnBackEdge hook for %d-%d: %w", v, nb, err)
				}
			}
		}
		// Black: already reported as a back edge from the descendant side
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 6. Record finish order
	w.state[v] = Black
	w.res.Order = append(w.res.Order, v)

	return nil
}
