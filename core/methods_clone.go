// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue the same
// textual sequence and never collide with IDs the source has handed out.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// (attribute maps included), and adjacency. Edge IDs are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		ne := e.snapshot()
		clone.edges[eid] = &ne
		ensureAdjacency(clone, e.From)
		clone.adjacencyList[e.From][e.To] = eid
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To)
			clone.adjacencyList[e.To][e.From] = eid
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so generated IDs resume from "e1".
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
