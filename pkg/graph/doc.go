// Package graph provides the in-memory undirected graph used by the
// generators, serializers and benchmark harness.
//
// # Overview
//
// A [Graph] has a dense node range 0..N-1 fixed at construction and a set of
// undirected edges. Edges are stored under a canonical key ([Edge] with U < V),
// so (u, v) and (v, u) always refer to the same edge and the edge set is a
// true mathematical set: no self-loops, no duplicates.
//
// # Basic Usage
//
//	g := graph.New(5)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 0)          // no-op, already present
//	g.HasEdge(1, 0)          // true
//	g.IsClique([]int{0, 1})  // true
//
// # Ordering
//
// [Graph.Edges] returns edges sorted by (U, V) and [Graph.Nodes] returns
// ascending ids. Serializing an unmodified graph twice therefore produces
// byte-identical output.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Each generator call
// produces an independent instance, so no sharing is needed in practice.
package graph
