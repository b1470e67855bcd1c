// Package dfs enumerates simple paths on a graph by depth-first backtracking.
// It supports directed and undirected graphs, cancellation, a per-path hook,
// and depth and result limits.
//
// Key features:
//   - SimplePaths(g, start, target, opts...): every loopless start→target path
//   - Deterministic order: successors are explored in ascending ID order, so
//     paths come out lexicographically by vertex sequence
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(P · V) where P is the number of simple paths, exponential in V
//     for dense graphs. Intended for small graphs and as a reference answer.
//   - Memory: O(V) for the recursion stack, plus the returned paths.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrTargetVertexNotFound   if target is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnPath.
package dfs

import (
	"errors"
	"fmt"
)

// errLimitReached unwinds the recursion once Options.Limit paths are found.
var errLimitReached = errors.New("dfs: limit reached")

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph  Graph
	opts   Options
	target string
	stack  []string        // current path, start first
	onPath map[string]bool // vertices on stack
	paths  [][]string      // result collector
}

// SimplePaths returns every simple path from start to target, in
// lexicographic order of vertex sequence. start == target yields [[start]].
// The result is empty, with a nil error, when target is unreachable.
func SimplePaths(g Graph, start, target string, opts ...Option) ([][]string, error) {
	// 1. Validate input graph and endpoints
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, target)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	w := &pathWalker{
		graph:  g,
		opts:   dopts,
		target: target,
		stack:  []string{start},
		onPath: map[string]bool{start: true},
	}

	// 3. Traverse; hitting Limit is a normal stop
	if err := w.traverse(start); err != nil && !errors.Is(err, errLimitReached) {
		return w.paths, err
	}

	return w.paths, nil
}

// traverse extends the current stack from id, recording each arrival at target.
func (w *pathWalker) traverse(id string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Arrived: record a copy and stop extending; a simple path ends here
	if id == w.target {
		return w.record()
	}

	// 3. Depth limit: stack holds depth+1 vertices
	if w.opts.MaxDepth >= 0 && len(w.stack)-1 >= w.opts.MaxDepth {
		return nil
	}

	succ, err := w.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("dfs: Successors(%q): %w", id, err)
	}

	// 4. Backtrack over every successor not already on the path
	var next string
	for _, next = range succ {
		if w.onPath[next] {
			continue
		}
		w.stack = append(w.stack, next)
		w.onPath[next] = true

		err = w.traverse(next)

		w.onPath[next] = false
		w.stack = w.stack[:len(w.stack)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// record appends the current stack to the result and runs the hook.
func (w *pathWalker) record() error {
	path := make([]string, len(w.stack))
	copy(path, w.stack)
	w.paths = append(w.paths, path)

	if w.opts.OnPath != nil {
		hookPath := make([]string, len(path))
		copy(hookPath, path)
		if err := w.opts.OnPath(hookPath); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}
	if w.opts.Limit > 0 && len(w.paths) >= w.opts.Limit {
		return errLimitReached
	}

	return nil
}
