package ksp

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Yen returns up to k loopless source→target paths in ascending order of total
// weight, together with their lengths. lengths[i] is the weight of paths[i].
//
// Fewer than k paths are returned, without error, when the graph holds fewer.
// source == target yields ([0], [[source]]) whatever k is.
//
// Validation (in order): ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound,
// then ErrBadK once the source == target case is ruled out.
// An unreachable target returns an error matching ErrNoPath and nil slices.
// Any other Oracle error aborts the run and is returned wrapped; the graph is
// restored before Yen returns in every case.
func Yen(g Graph, source, target string, k int, opts ...Option) ([]float64, [][]string, error) {
	start := time.Now()
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if err := validate(g, source, target); err != nil {
		cfg.Metrics.observeRun(outcomeError, time.Since(start))
		return nil, nil, err
	}
	if source == target {
		cfg.Metrics.pathAccepted()
		cfg.Metrics.observeRun(outcomeComplete, time.Since(start))
		return []float64{0}, [][]string{{source}}, nil
	}
	if k < 1 {
		cfg.Metrics.observeRun(outcomeError, time.Since(start))
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}

	r := newRunner(g, source, target, k, cfg)
	err := r.run()
	switch {
	case errors.Is(err, ErrNoPath):
		cfg.Metrics.observeRun(outcomeNoPath, time.Since(start))
		return nil, nil, err
	case err != nil:
		cfg.Metrics.observeRun(outcomeError, time.Since(start))
		return nil, nil, err
	case len(r.paths) < k:
		cfg.Metrics.observeRun(outcomeShort, time.Since(start))
	default:
		cfg.Metrics.observeRun(outcomeComplete, time.Since(start))
	}

	return r.lengths, r.paths, nil
}

// validate checks the graph and both endpoints in the documented order.
func validate(g Graph, source, target string) error {
	switch {
	case g == nil:
		return ErrNilGraph
	case source == "" || target == "":
		return ErrEmptyVertexID
	case !g.HasVertex(source):
		return fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	case !g.HasVertex(target):
		return fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	return nil
}

// runner holds the mutable state of one Yen execution.
type runner struct {
	g       Graph
	source  string
	target  string
	k       int
	opts    Options
	log     zerolog.Logger
	lengths []float64      // accepted lengths, non-decreasing
	paths   [][]string     // accepted paths
	queue   candidateQueue // candidates carried across iterations
}

func newRunner(g Graph, source, target string, k int, cfg Options) *runner {
	return &runner{
		g:       g,
		source:  source,
		target:  target,
		k:       k,
		opts:    cfg,
		log:     cfg.Logger.With().Str("source", source).Str("target", target).Int("k", k).Logger(),
		lengths: make([]float64, 0, k),
		paths:   make([][]string, 0, k),
	}
}

// run fills r.paths and r.lengths.
func (r *runner) run() error {
	length, path, err := r.opts.Oracle.ShortestPath(r.g, r.source, r.target, r.opts.WeightKey)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			r.log.Debug().Msg("target unreachable")
			return err
		}
		return fmt.Errorf("ksp: shortest path %s→%s: %w", r.source, r.target, err)
	}
	r.accept(length, path)

	for len(r.paths) < r.k {
		last := r.paths[len(r.paths)-1]
		for j := 0; j < len(last)-1; j++ {
			if err = r.spur(last, j); err != nil {
				return err
			}
		}

		c, popErr := r.queue.popMin()
		if popErr != nil {
			r.log.Debug().Int("found", len(r.paths)).Msg("candidates exhausted")
			break
		}
		r.accept(c.length, c.path)
	}

	return nil
}

// accept appends a path to the results.
func (r *runner) accept(length float64, path []string) {
	r.lengths = append(r.lengths, length)
	r.paths = append(r.paths, path)
	r.opts.Metrics.pathAccepted()
	r.log.Debug().
		Int("iteration", len(r.paths)).
		Float64("length", length).
		Strs("path", path).
		Msg("path accepted")
}

// spur runs one spur search from prev[j]. Excluded edges are restored before
// spur returns, whatever the outcome; a restore failure takes precedence over
// a nil error only.
func (r *runner) spur(prev []string, j int) (err error) {
	spurNode := prev[j]
	root := prev[:j+1]

	// Root weight is taken before any edge of the root is excluded.
	rootLen, err := PathLength(r.g, root, r.opts.WeightKey)
	if err != nil {
		return err
	}

	ex := newExclusion(r.g)
	defer func() {
		if rerr := ex.restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err = r.excludeSharedPrefix(ex, root); err != nil {
		return err
	}
	if err = r.excludeRoot(ex, root[:j]); err != nil {
		return err
	}
	r.opts.Metrics.excluded(ex.count())

	spurLen, spurPath, err := r.opts.Oracle.ShortestPath(r.g, spurNode, r.target, r.opts.WeightKey)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			r.opts.Metrics.spurSearch(false)
			r.log.Debug().Str("spur", spurNode).Int("excluded", ex.count()).Msg("no spur path")
			return nil
		}
		return fmt.Errorf("ksp: spur search from %q: %w", spurNode, err)
	}
	r.opts.Metrics.spurSearch(true)

	total := make([]string, 0, j+len(spurPath))
	total = append(total, root[:j]...)
	total = append(total, spurPath...)
	r.queue.push(rootLen+spurLen, total)
	r.opts.Metrics.candidatePushed()
	r.log.Debug().
		Str("spur", spurNode).
		Int("excluded", ex.count()).
		Float64("length", rootLen+spurLen).
		Msg("candidate queued")

	return nil
}

// excludeSharedPrefix removes, for every accepted path starting with root,
// the edge that leaves root along that path.
func (r *runner) excludeSharedPrefix(ex *exclusion, root []string) error {
	j := len(root) - 1
	for _, p := range r.paths {
		if len(p) <= j+1 || !samePrefix(p, root) {
			continue
		}
		if err := ex.remove(p[j], p[j+1]); err != nil {
			return err
		}
	}

	return nil
}

// excludeRoot isolates the root vertices before the spur vertex: outgoing edges
// always, incoming edges too when the graph is directed.
func (r *runner) excludeRoot(ex *exclusion, interior []string) error {
	directed := r.g.Directed()
	for _, v := range interior {
		if err := ex.removeOutgoing(v); err != nil {
			return err
		}
		if !directed {
			continue
		}
		if err := ex.removeIncoming(v); err != nil {
			return err
		}
	}

	return nil
}

// samePrefix reports whether p starts with prefix.
func samePrefix(p, prefix []string) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}

	return true
}
