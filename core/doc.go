// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Numeric edge attributes (Attributes) with the weight read under a
//     caller-chosen key; a missing key means DefaultWeight (1)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to] = edgeID
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …), or explicit
//     IDs via WithID so a removed edge can be re-inserted exactly
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// At most one edge joins an ordered pair of vertices (one per unordered pair
// when undirected), so (from, to) identifies an edge unambiguously.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, attrs Attributes, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	EdgeBetween(from, to string) (Edge, error) // snapshot with private Attrs
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)     // O(d·log d), sorted by Edge.ID
//	Successors(id string) ([]string, error)   // O(d·log d), sorted, fresh slice
//	Predecessors(id string) ([]string, error) // O(V) directed, sorted, fresh slice
//	Vertices() []string                       // O(V·log V)
//	Edges() []*Edge                           // O(E·log E)
//
//	// Maintenance & cloning
//	Clear(), FilterEdges(pred), CloneEmpty(), Clone()
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrEdgeIDInUse         – WithID collides with an existing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//	ErrNoPath              – oracle contract: target unreachable
package core
