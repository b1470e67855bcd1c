package ksp

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/kpaths/converters"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// Sentinel errors returned by Yen and its helpers.
var (
	// ErrNilGraph indicates that a nil graph was passed to Yen.
	ErrNilGraph = errors.New("ksp: graph is nil")

	// ErrEmptyVertexID indicates an empty source or target ID.
	ErrEmptyVertexID = errors.New("ksp: vertex ID is empty")

	// ErrVertexNotFound indicates that source or target is not in the graph.
	ErrVertexNotFound = errors.New("ksp: vertex not found")

	// ErrBadK indicates that fewer than one path was requested.
	ErrBadK = errors.New("ksp: k must be at least 1")

	// ErrNoPath indicates that target is unreachable from source.
	// It is the oracle contract error, shared with core and dijkstra.
	ErrNoPath = core.ErrNoPath

	// ErrEmptyQueue is returned by popMin on an empty candidate queue.
	ErrEmptyQueue = errors.New("ksp: candidate queue is empty")

	// ErrRestoreFailed indicates that an excluded edge could not be re-inserted.
	ErrRestoreFailed = errors.New("ksp: failed to restore excluded edges")
)

// EdgeReader is the read access PathLength needs.
type EdgeReader interface {
	EdgeBetween(from, to string) (core.Edge, error)
}

// Graph is the access Yen needs: queries for the oracle, plus removal and
// re-insertion of individual edges. *core.Graph satisfies it.
//
// Successors and Predecessors must return slices the caller owns, so edges can
// be removed while iterating over them.
type Graph interface {
	EdgeReader

	Directed() bool
	HasVertex(id string) bool
	Vertices() []string
	HasEdge(from, to string) bool
	RemoveEdge(eid string) error
	AddEdge(from, to string, attrs core.Attributes, opts ...core.EdgeOption) (string, error)
	Successors(id string) ([]string, error)
	Predecessors(id string) ([]string, error)
}

// Oracle answers single-pair shortest-path queries on the current graph state.
// An unreachable target must be reported with an error matching ErrNoPath.
type Oracle interface {
	ShortestPath(g Graph, source, target, weightKey string) (float64, []string, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(g Graph, source, target, weightKey string) (float64, []string, error)

// ShortestPath calls f.
func (f OracleFunc) ShortestPath(g Graph, source, target, weightKey string) (float64, []string, error) {
	return f(g, source, target, weightKey)
}

// DijkstraOracle is the default Oracle, backed by dijkstra.ShortestPath.
// It is deterministic: ties resolve the same way on the same graph state.
var DijkstraOracle Oracle = OracleFunc(func(g Graph, source, target, weightKey string) (float64, []string, error) {
	return dijkstra.ShortestPath(g, source, target, dijkstra.WithWeightKey(weightKey))
})

// GonumOracle runs gonum's Dijkstra on a snapshot of the graph.
// Lengths match DijkstraOracle; the path chosen among equal-cost ties may differ.
var GonumOracle Oracle = OracleFunc(func(g Graph, source, target, weightKey string) (float64, []string, error) {
	return converters.ShortestPath(g, source, target, weightKey)
})

// Options configures Yen.
//
// WeightKey – edge attribute read as the weight (core.DefaultWeightKey).
// Oracle    – single-pair shortest-path provider (DijkstraOracle).
// Logger    – debug events per spur search and accepted path (disabled).
// Metrics   – Prometheus instrumentation; nil records nothing.
type Options struct {
	WeightKey string
	Oracle    Oracle
	Logger    zerolog.Logger
	Metrics   *Metrics
}

// Option represents a functional option for configuring Yen.
type Option func(*Options)

// WithWeightKey selects the edge attribute read as the weight.
// Panics on an empty key.
func WithWeightKey(key string) Option {
	if key == "" {
		panic("ksp: WithWeightKey(\"\")")
	}

	return func(o *Options) { o.WeightKey = key }
}

// WithOracle replaces the shortest-path oracle. Panics on nil.
func WithOracle(oracle Oracle) Option {
	if oracle == nil {
		panic("ksp: WithOracle(nil)")
	}

	return func(o *Options) { o.Oracle = oracle }
}

// WithLogger sets the logger receiving debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns the configuration Yen uses when no option is given.
func DefaultOptions() Options {
	return Options{
		WeightKey: core.DefaultWeightKey,
		Oracle:    DijkstraOracle,
		Logger:    zerolog.Nop(),
	}
}
