// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so you can safely mutate your graphs across
// goroutines with minimal contention.
//
// This file declares Vertex, Edge, Attributes, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrEdgeIDInUse       - WithID names an edge ID already present.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
//	ErrNoPath            - shortest-path oracles: target unreachable.
package core

import (
	"errors"
	"sync"
)

// DefaultWeightKey is the attribute key read as the edge weight when callers
// do not configure another one.
const DefaultWeightKey = "weight"

// DefaultWeight is the weight of an edge whose attributes lack the weight key.
const DefaultWeight float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeIDInUse indicates WithID requested an identifier already held by another edge.
	ErrEdgeIDInUse = errors.New("core: edge ID already in use")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNoPath is the contract error of shortest-path oracles: the target
	// cannot be reached from the start vertex under the current graph state.
	ErrNoPath = errors.New("core: no path between vertices")
)

// Attributes is the attribute mapping carried by an Edge.
// The weight lives under a caller-chosen key (DefaultWeightKey by default).
type Attributes map[string]float64

// Weight returns the value stored under key, or DefaultWeight when absent.
func (a Attributes) Weight(key string) float64 {
	if w, ok := a[key]; ok {
		return w
	}

	return DefaultWeight
}

// Clone returns an independent copy of a. A nil map clones to nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Equal reports whether a and b hold the same keys and values.
// A nil map equals an empty one.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, an attribute map and a
// Directed flag copied from the Graph mode at insertion time.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Attrs holds numeric edge attributes, the weight among them.
	Attrs Attributes

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// Weight returns the edge weight under key (DefaultWeight when absent).
func (e *Edge) Weight(key string) float64 { return e.Attrs.Weight(key) }

// IsNil reports whether the edge pointer is nil.
func (e *Edge) IsNil() bool { return e == nil }

// snapshot returns a value copy whose attribute map is independent of e.
func (e *Edge) snapshot() Edge {
	return Edge{ID: e.ID, From: e.From, To: e.To, Attrs: e.Attrs.Clone(), Directed: e.Directed}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithID assigns an explicit edge ID instead of the generated "eN" sequence.
// It is how a removed edge is re-inserted under its original identity.
// Panics on an empty id.
func WithID(id string) EdgeOption {
	if id == "" {
		panic("core: WithID(\"\")")
	}

	return func(e *Edge) { e.ID = id }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges and optional self-loops.
// Parallel edges are rejected, so an ordered vertex pair names at most one edge.
// muVert protects vertices map; muEdgeAdj protects edges map and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // edge directedness
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to] = edge ID; undirected edges are mirrored.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of this graph are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
