package ksp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// exclusion records the edges removed for one spur search so they can be put
// back exactly. A record lives for a single spur iteration: acquire it with
// newExclusion and always release it with restore.
type exclusion struct {
	g       Graph
	removed []core.Edge // snapshots, in removal order
}

func newExclusion(g Graph) *exclusion {
	return &exclusion{g: g}
}

// remove deletes the edge from→to if it is still present and records it.
// An absent edge (never there, or already excluded) is not an error.
func (x *exclusion) remove(from, to string) error {
	if !x.g.HasEdge(from, to) {
		return nil
	}
	e, err := x.g.EdgeBetween(from, to)
	if err != nil {
		return fmt.Errorf("ksp: exclude %s→%s: %w", from, to, err)
	}
	if err = x.g.RemoveEdge(e.ID); err != nil {
		return fmt.Errorf("ksp: exclude %s→%s: %w", from, to, err)
	}
	x.removed = append(x.removed, e)

	return nil
}

// removeOutgoing excludes every edge leaving v.
func (x *exclusion) removeOutgoing(v string) error {
	succ, err := x.g.Successors(v)
	if err != nil {
		return fmt.Errorf("ksp: successors of %q: %w", v, err)
	}
	for _, w := range succ {
		if err = x.remove(v, w); err != nil {
			return err
		}
	}

	return nil
}

// removeIncoming excludes every edge entering v.
func (x *exclusion) removeIncoming(v string) error {
	pred, err := x.g.Predecessors(v)
	if err != nil {
		return fmt.Errorf("ksp: predecessors of %q: %w", v, err)
	}
	for _, u := range pred {
		if err = x.remove(u, v); err != nil {
			return err
		}
	}

	return nil
}

// count returns the number of edges currently excluded.
func (x *exclusion) count() int { return len(x.removed) }

// restore re-inserts every recorded edge under its original ID, endpoints and
// attributes, in reverse removal order. It attempts every edge even after a
// failure and empties the record either way.
func (x *exclusion) restore() error {
	var errs []error
	for i := len(x.removed) - 1; i >= 0; i-- {
		e := x.removed[i]
		if _, err := x.g.AddEdge(e.From, e.To, e.Attrs, core.WithID(e.ID)); err != nil {
			errs = append(errs, fmt.Errorf("edge %s (%s→%s): %w", e.ID, e.From, e.To, err))
		}
	}
	x.removed = nil
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrRestoreFailed, errors.Join(errs...))
	}

	return nil
}
