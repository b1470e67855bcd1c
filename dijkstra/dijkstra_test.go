// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, weight keys, MaxDistance, InfEdgeThreshold,
// point-to-point queries, and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// w builds the attribute map of an edge weighing x under the default key.
func w(x float64) core.Attributes { return core.Attributes{core.DefaultWeightKey: x} }

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// If graph is nil and no Source is provided, ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource when graph is nil and Source is empty, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(-5))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_NaNWeightDetected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(math.NaN()))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight for NaN weight, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	cases := map[string]func(){
		"MaxDistance<0":  func() { dijkstra.WithMaxDistance(-1) },
		"InfThreshold=0": func() { dijkstra.WithInfEdgeThreshold(0) },
		"EmptyWeightKey": func() { dijkstra.WithWeightKey("") },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	// Graph: A-B(1), B-C(2), A-C(5), all undirected by default.
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))
	g.AddEdge("B", "C", w(2))
	g.AddEdge("A", "C", w(5))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist["C"], 3.0; got != want {
		t.Errorf("dist[C] = %g; want %g", got, want)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))
	g.AddEdge("B", "C", w(2))
	g.AddEdge("A", "C", w(5))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}
	if prev["B"] != "A" {
		t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
}

func TestDijkstra_MissingWeightDefaultsToOne(t *testing.T) {
	// Edges without the weight attribute weigh core.DefaultWeight.
	g := core.NewGraph()
	g.AddEdge("A", "B", nil)
	g.AddEdge("B", "C", core.Attributes{"capacity": 9})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] = %g; want 2", dist["C"])
	}
}

func TestDijkstra_CustomWeightKey(t *testing.T) {
	// Under "cost" the detour is cheaper; under the default key it is not.
	g := core.NewGraph()
	g.AddEdge("A", "C", core.Attributes{"weight": 1, "cost": 10})
	g.AddEdge("A", "B", core.Attributes{"weight": 1, "cost": 1})
	g.AddEdge("B", "C", core.Attributes{"weight": 1, "cost": 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithWeightKey("cost"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] under cost = %g; want 2", dist["C"])
	}
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed graph:
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", w(2))
	g.AddEdge("A", "C", w(1))
	g.AddEdge("C", "B", w(1))
	g.AddEdge("B", "D", w(3))
	g.AddEdge("C", "D", w(5))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 1 {
		t.Errorf("dist[C] = %g; want %d", dist["C"], 1)
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %g; want %d", dist["B"], 2)
	}
	if dist["D"] != 5 {
		t.Errorf("dist[D] = %g; want %d", dist["D"], 5)
	}
}

func TestDijkstra_DirectedDoesNotWalkBackwards(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("B", "A", w(1))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["B"], 1) {
		t.Errorf("dist[B] = %g; want +Inf", dist["B"])
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance / InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A-B(1)-C(1)-D(1)
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))
	g.AddEdge("B", "C", w(1))
	g.AddEdge("C", "D", w(1))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 1 {
		t.Errorf("Unexpected distances within cap: %v", dist)
	}
	if !math.IsInf(dist["C"], 1) || !math.IsInf(dist["D"], 1) {
		t.Errorf("C and D should stay unreachable, got %v", dist)
	}
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Graph: A-B(2), B-C(4), A-C(10)
	g := core.NewGraph()
	g.AddEdge("A", "B", w(2))
	g.AddEdge("B", "C", w(4))
	g.AddEdge("A", "C", w(10))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 6 {
		t.Errorf("dist[C] = %g; want %d", dist["C"], 6)
	}
}

func TestDijkstra_InfiniteWeightIsWall(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(math.Inf(1)))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["B"], 1) {
		t.Errorf("dist[B] = %g; want +Inf", dist["B"])
	}
}

// ------------------------------------------------------------------------
// 5. ShortestPath: point-to-point oracle.
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	// A-B-C-D-E with a branch D-F-G.
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))
	g.AddEdge("B", "C", w(1))
	g.AddEdge("C", "D", w(1))
	g.AddEdge("D", "E", w(1))
	g.AddEdge("D", "F", w(1))
	g.AddEdge("F", "G", w(1))

	length, path, err := dijkstra.ShortestPath(g, "A", "G")
	if err != nil {
		t.Fatal(err)
	}
	if length != 5 {
		t.Errorf("length = %g; want 5", length)
	}
	if want := []string{"A", "B", "C", "D", "F", "G"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("Solo")

	length, path, err := dijkstra.ShortestPath(g, "Solo", "Solo")
	if err != nil {
		t.Fatal(err)
	}
	if length != 0 || !reflect.DeepEqual(path, []string{"Solo"}) {
		t.Errorf("got (%g, %v); want (0, [Solo])", length, path)
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))
	g.AddEdge("C", "D", w(1))

	_, path, err := dijkstra.ShortestPath(g, "A", "D")
	if !errors.Is(err, core.ErrNoPath) {
		t.Fatalf("Expected core.ErrNoPath, got %v", err)
	}
	if path != nil {
		t.Errorf("path should be nil on failure, got %v", path)
	}
}

func TestShortestPath_Validation(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", w(1))

	cases := []struct {
		name           string
		graph          dijkstra.Graph
		source, target string
		want           error
	}{
		{"EmptySource", g, "", "B", dijkstra.ErrEmptySource},
		{"EmptyTarget", g, "A", "", dijkstra.ErrEmptyTarget},
		{"NilGraph", nil, "A", "B", dijkstra.ErrNilGraph},
		{"MissingSource", g, "X", "B", dijkstra.ErrVertexNotFound},
		{"MissingTarget", g, "A", "X", dijkstra.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.ShortestPath(tc.graph, tc.source, tc.target)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v; want %v", err, tc.want)
			}
		})
	}
}

func TestShortestPath_TieBreakIsDeterministic(t *testing.T) {
	// Square with two equal routes A→B→D and A→C→D: the lexicographically
	// smaller intermediate vertex wins, on every call.
	g := core.NewGraph()
	g.AddEdge("A", "C", w(1))
	g.AddEdge("C", "D", w(1))
	g.AddEdge("A", "B", w(1))
	g.AddEdge("B", "D", w(1))

	for i := 0; i < 10; i++ {
		_, path, err := dijkstra.ShortestPath(g, "A", "D")
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"A", "B", "D"}; !reflect.DeepEqual(path, want) {
			t.Fatalf("run %d: path = %v; want %v", i, path, want)
		}
	}
}

// ------------------------------------------------------------------------
// 6. Edge Cases: Single vertex, Empty graph, Self-loop.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("Solo")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if d := dist["Solo"]; d != 0 {
		t.Errorf("dist[\"Solo\"] = %g; want %d", d, 0)
	}
	if p := prev["Solo"]; p != "" {
		t.Errorf("prev[\"Solo\"] = %q; want empty string", p)
	}
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("X", "X", w(0))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if d := dist["X"]; d != 0 {
		t.Errorf("dist[\"X\"] = %g; want %d", d, 0)
	}
	if p := prev["X"]; p != "" {
		t.Errorf("prev[\"X\"] = %q; want empty string", p)
	}
}
