// Package dfs defines types and options for depth-first enumeration of simple
// (loopless) paths, including cancellation, depth limiting, result limiting
// and a per-path hook.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the target vertex ID does not exist in the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")
)

// Graph is the read access SimplePaths needs. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	Successors(id string) ([]string, error)
}

// Option configures optional behavior of SimplePaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts enumeration with ctx.Err().
	Ctx context.Context

	// OnPath, if non-nil, is invoked with every path found, in discovery
	// order. The slice is owned by the hook. Returning an error aborts
	// enumeration with that error.
	OnPath func(path []string) error

	// MaxDepth, if non-negative, bounds the number of edges in a path.
	// Default is -1 (no limit).
	MaxDepth int

	// Limit, if positive, stops enumeration after that many paths. Default 0 (all).
	Limit int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hook
//   - No depth limit (MaxDepth = -1)
//   - No result limit (Limit = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath returns an Option that installs fn as the per-path hook.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithMaxDepth returns an Option that bounds path length to limit edges.
// A limit of 0 only admits the trivial path when start == target.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLimit returns an Option that stops after n paths. n ≤ 0 means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}
