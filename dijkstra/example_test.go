// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each vertex once.
func ExampleDijkstra_triangle() {
	// 1) Undirected graph; weights live under the "weight" attribute.
	g := core.NewGraph()
	g.AddEdge("A", "B", core.Attributes{"weight": 1})
	g.AddEdge("B", "C", core.Attributes{"weight": 2})
	g.AddEdge("A", "C", core.Attributes{"weight": 5})

	// 2) No WithReturnPath() means prev == nil.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// dist["C"] is 3 via A→B→C.
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_mediumGraph demonstrates path reconstruction on a directed graph
// using WithReturnPath() to obtain the predecessor map.
func ExampleDijkstra_mediumGraph() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", core.Attributes{"weight": 2})
	g.AddEdge("A", "C", core.Attributes{"weight": 1})
	g.AddEdge("C", "B", core.Attributes{"weight": 1})
	g.AddEdge("B", "D", core.Attributes{"weight": 3})
	g.AddEdge("C", "D", core.Attributes{"weight": 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// A→B and A→C→B tie at 2; the first discovery is kept.
	fmt.Printf("dist[D]=%g, prev[D]=%s, prev[B]=%s\n", dist["D"], prev["D"], prev["B"])
	// Output: dist[D]=5, prev[D]=B, prev[B]=A
}

// ExampleDijkstra_thresholds demonstrates how InfEdgeThreshold turns heavy edges
// into walls and how MaxDistance caps exploration.
func ExampleDijkstra_thresholds() {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.Attributes{"weight": 2})
	g.AddEdge("B", "C", core.Attributes{"weight": 4})
	g.AddEdge("A", "C", core.Attributes{"weight": 10})
	g.AddEdge("C", "D", core.Attributes{"weight": 1})

	dist, _, _ := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.WithInfEdgeThreshold(5), // A-C is a wall
		dijkstra.WithMaxDistance(6),      // D (7) is out of range
	)
	fmt.Printf("dist[C]=%g, dist[D]=%g\n", dist["C"], dist["D"])
	// Output: dist[C]=6, dist[D]=+Inf
}

// ExampleShortestPath shows the point-to-point query used by the ksp package.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("S", "A", core.Attributes{"weight": 1})
	g.AddEdge("A", "T", core.Attributes{"weight": 1})
	g.AddEdge("S", "T", core.Attributes{"weight": 3})

	length, path, err := dijkstra.ShortestPath(g, "S", "T")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(length, path)
	// Output: 2 [S A T]
}
