// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Successors, Predecessors, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - Successors()/Predecessors() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.
// Snapshot rule:
//   - Every returned slice is freshly allocated, so callers may remove edges
//     while iterating over a result without disturbing it.

package core

import "sort"

// Neighbors returns all edges leaving id: outgoing edges for directed graphs,
// incident edges for undirected graphs (a self-loop appears once).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Successors returns the IDs reachable from id over a single edge, sorted.
// For undirected graphs this is the neighbor set.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Successors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to := range g.adjacencyList[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Predecessors returns the IDs with an edge into id, sorted.
// For undirected graphs it equals Successors.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(V) for directed graphs (adjacency is indexed by source).
func (g *Graph) Predecessors(id string) ([]string, error) {
	if !g.Directed() {
		return g.Successors(id)
	}
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var ids []string
	for from, toMap := range g.adjacencyList {
		if _, ok := toMap[id]; ok {
			ids = append(ids, from)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns, per vertex, the sorted successor IDs.
// Returned slices are independent of the graph.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		buf := make([]string, 0, len(toMap))
		for to := range toMap {
			buf = append(buf, to)
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency makes sure the adjacency bucket of id exists.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
}

// removeAdjacency unlinks e from adjacency (both directions when undirected).
// Caller must hold muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From]; m != nil && m[e.To] == e.ID {
		delete(m, e.To)
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To]; m != nil && m[e.From] == e.ID {
			delete(m, e.From)
		}
	}
}
