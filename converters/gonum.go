package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/kpaths/core"
)

// Sentinel errors for gonum conversion.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrVertexNotFound indicates a source or target missing from the snapshot.
	ErrVertexNotFound = errors.New("converters: vertex not found")

	// ErrNegativeWeight indicates an edge weight gonum's Dijkstra cannot handle.
	ErrNegativeWeight = errors.New("converters: negative edge weight")
)

// Graph is the read access needed to snapshot a graph. *core.Graph satisfies it.
type Graph interface {
	Directed() bool
	Vertices() []string
	Successors(id string) ([]string, error)
	EdgeBetween(from, to string) (core.Edge, error)
}

// Weighted is a gonum snapshot of a graph together with the vertex-ID mapping.
type Weighted struct {
	graph.Weighted

	ids   map[string]int64
	names []string
}

// ID returns the gonum node ID of vertex v.
func (w *Weighted) ID(v string) (int64, bool) {
	id, ok := w.ids[v]

	return id, ok
}

// Name returns the vertex ID of gonum node id, or "" when out of range.
func (w *Weighted) Name(id int64) string {
	if id < 0 || id >= int64(len(w.names)) {
		return ""
	}

	return w.names[id]
}

// ToWeighted copies g into a gonum weighted graph, reading edge weights under
// weightKey (core.DefaultWeight when absent). Absent edges weigh +Inf and the
// self weight is 0.
//
// Errors: ErrNilGraph, ErrNegativeWeight, or a wrapped error from g.
//
// Complexity: O(V log V + E log d).
func ToWeighted(g Graph, weightKey string) (*Weighted, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	names := g.Vertices()
	ids := make(map[string]int64, len(names))
	for i, v := range names {
		ids[v] = int64(i)
	}

	var dst interface {
		graph.Weighted
		graph.NodeAdder
		graph.WeightedEdgeAdder
	}
	if g.Directed() {
		dst = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		dst = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}
	for i := range names {
		dst.AddNode(simple.Node(int64(i)))
	}

	for _, u := range names {
		succ, err := g.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("converters: successors of %q: %w", u, err)
		}
		for _, v := range succ {
			if u == v {
				continue
			}
			e, err := g.EdgeBetween(u, v)
			if err != nil {
				return nil, fmt.Errorf("converters: edge %s→%s: %w", u, v, err)
			}
			w := e.Weight(weightKey)
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, w)
			}
			dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(ids[u]), simple.Node(ids[v]), w))
		}
	}

	return &Weighted{Weighted: dst, ids: ids, names: names}, nil
}

// ShortestPath returns the length and vertex sequence of a shortest
// source→target path computed by gonum's path.DijkstraFrom.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight, core.ErrNoPath.
func ShortestPath(g Graph, source, target, weightKey string) (float64, []string, error) {
	snap, err := ToWeighted(g, weightKey)
	if err != nil {
		return 0, nil, err
	}
	sid, ok := snap.ID(source)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	tid, ok := snap.ID(target)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	nodes, length := path.DijkstraFrom(simple.Node(sid), snap).To(tid)
	if len(nodes) == 0 || math.IsInf(length, 1) {
		return 0, nil, fmt.Errorf("%w: %s→%s", core.ErrNoPath, source, target)
	}

	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = snap.Name(n.ID())
	}

	return length, out, nil
}
