// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount,
//       plus filtered removals. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to carrying a copy of attrs.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Resolve the edge ID (WithID or the generated sequence).
//  5. Store in g.edges and link adjacency; mirror when undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrEdgeIDInUse.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, attrs Attributes, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Attrs: attrs.Clone(), Directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	// 4) Explicit IDs must be free; generated IDs skip over explicit ones.
	if e.ID != "" {
		if _, taken := g.edges[e.ID]; taken {
			return "", ErrEdgeIDInUse
		}
	} else {
		for {
			e.ID = nextEdgeID(g)
			if _, taken := g.edges[e.ID]; !taken {
				break
			}
		}
	}

	// 5) Store and link adjacency
	g.edges[e.ID] = e
	ensureAdjacency(g, from)
	g.adjacencyList[from][to] = e.ID
	if !e.Directed && from != to {
		ensureAdjacency(g, to)
		g.adjacencyList[to][from] = e.ID
	}

	return e.ID, nil
}

// RemoveEdge deletes one edge (and its mirror when undirected).
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Undirected edges answer in both orientations.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacencyList[from][to]

	return ok
}

// EdgeBetween returns a snapshot of the edge from→to. The snapshot's Attrs
// map is a private copy, so it survives removal of the edge unchanged.
// For undirected edges the stored From/To may be the reverse of the query.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(|Attrs|).
func (g *Graph) EdgeBetween(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[eid].snapshot(), nil
}

// GetEdge returns a pointer to the Edge with the given edgeID.
// The returned *Edge must be treated as read-only by callers.
//
// Errors:
//   - ErrEdgeNotFound if no such edge is present.
//
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// nextEdgeID returns a new textual edge ID "e<n>" from a monotonic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
