// Package converters adapts kpaths graphs to gonum/graph.
//
// ToWeighted takes a snapshot of any graph exposing Directed, Vertices,
// Successors and EdgeBetween (*core.Graph does) and builds a
// simple.WeightedDirectedGraph or simple.WeightedUndirectedGraph. Vertex IDs
// are numbered in sorted order, so the same graph always maps to the same
// gonum node IDs.
//
// ShortestPath runs gonum's Dijkstra on such a snapshot and honours the same
// oracle contract as dijkstra.ShortestPath: an unreachable target yields an
// error matching core.ErrNoPath. Among equal-cost paths gonum may choose a
// different one than package dijkstra; lengths always agree.
//
// Self-loops are dropped (gonum's simple graphs reject them and no shortest
// path uses one). Negative or NaN weights are rejected up front with
// ErrNegativeWeight, because gonum's Dijkstra panics on them.
package converters
