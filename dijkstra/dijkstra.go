// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - Weights are read lazily during relaxation from the configured attribute key;
//     a negative or NaN weight aborts the run with ErrNegativeWeight.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Results are deterministic for a fixed graph state: successors are relaxed in
//     sorted order, only strict improvements replace a predecessor, and heap ties
//     are broken by vertex ID.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the length and vertex sequence of a shortest
// source→target path. Exploration stops as soon as target is settled.
//
// A source equal to target yields (0, [source]). When target cannot be
// reached the error wraps core.ErrNoPath.
//
// Errors: ErrEmptySource, ErrEmptyTarget, ErrNilGraph, ErrVertexNotFound,
// ErrNegativeWeight, core.ErrNoPath.
func ShortestPath(g Graph, source, target string, opts ...Option) (float64, []string, error) {
	cfg := DefaultOptions(source)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.Source = source // positional arguments win over Source(...)
	cfg.ReturnPath = true
	cfg.target = target

	switch {
	case source == "":
		return 0, nil, ErrEmptySource
	case target == "":
		return 0, nil, ErrEmptyTarget
	case g == nil:
		return 0, nil, ErrNilGraph
	case !g.HasVertex(source):
		return 0, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	case !g.HasVertex(target):
		return 0, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if source == target {
		return 0, []string{source}, nil
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return 0, nil, err
	}
	if !r.visited[target] {
		return 0, nil, fmt.Errorf("%w: %s→%s", core.ErrNoPath, source, target)
	}

	// Walk predecessors back from target, then reverse.
	path := []string{target}
	for v := r.prev[target]; v != ""; v = r.prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return r.dist[target], path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph              // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps vertex ID → current best distance from Source.
	prev    map[string]string  // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner sets up initial distances, predecessors and the heap holding Source=0.
func newRunner(g Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process is the core loop: it repeatedly settles the closest vertex and relaxes
// its outgoing edges until the heap drains, MaxDistance is exceeded, or the
// early-exit target is settled.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if item.id == r.options.target {
			return nil
		}

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each successor v of u and improves dist[v] when the edge u→v
// yields a strictly shorter distance.
func (r *runner) relax(u string) error {
	succ, err := r.g.Successors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get successors of %q: %w", u, err)
	}

	var (
		e       core.Edge
		w       float64
		newDist float64
	)
	for _, v := range succ {
		if r.visited[v] {
			continue
		}
		if e, err = r.g.EdgeBetween(u, v); err != nil {
			return fmt.Errorf("dijkstra: edge %s→%s: %w", u, v, err)
		}
		w = e.Weight(r.options.WeightKey)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties on vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
