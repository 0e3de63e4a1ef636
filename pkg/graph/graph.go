package graph

import (
	"cmp"
	"errors"
	"maps"
	"slices"
)

var (
	// ErrNodeOutOfRange is returned by [Graph.AddEdge] when an endpoint is
	// outside the graph's node range [0, N).
	ErrNodeOutOfRange = errors.New("node out of range")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same node. Graphs are simple.
	ErrSelfLoop = errors.New("self-loop not allowed")
)

// Edge is an undirected edge in canonical form (U < V).
// Use [NewEdge] to build one from endpoints in either orientation.
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical edge for the unordered pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// Compare orders edges by U, then V.
func (e Edge) Compare(o Edge) int {
	if c := cmp.Compare(e.U, o.U); c != 0 {
		return c
	}
	return cmp.Compare(e.V, o.V)
}

// Graph is a simple undirected graph over the nodes 0..N-1.
//
// The zero value is an empty graph with no nodes; use New to size it.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	n     int
	edges map[Edge]struct{}
	adj   []map[int]struct{}
}

// New creates a graph with n isolated nodes. A negative n yields an empty graph.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{
		n:     n,
		edges: make(map[Edge]struct{}),
		adj:   adj,
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, g.n)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// HasNode reports whether id is within the node range.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < g.n }

// AddEdge inserts the undirected edge {u, v}.
// It returns true if the edge was new and false if it already existed.
// Returns ErrNodeOutOfRange or ErrSelfLoop for invalid endpoints.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false, ErrNodeOutOfRange
	}
	if u == v {
		return false, ErrSelfLoop
	}
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; ok {
		return false, nil
	}
	g.edges[e] = struct{}{}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	return true, nil
}

// HasEdge reports whether {u, v} is an edge, in either orientation.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[NewEdge(u, v)]
	return ok
}

// Edges returns a sorted copy of the edge set.
// Modifications to the returned slice do not affect the graph.
func (g *Graph) Edges() []Edge {
	edges := slices.Collect(maps.Keys(g.edges))
	slices.SortFunc(edges, Edge.Compare)
	return edges
}

// Neighbors returns the neighbors of id in ascending order.
// Returns nil if id is out of range.
func (g *Graph) Neighbors(id int) []int {
	if !g.HasNode(id) {
		return nil
	}
	return slices.Sorted(maps.Keys(g.adj[id]))
}

// Degree returns the number of neighbors of id, or 0 if id is out of range.
func (g *Graph) Degree(id int) int {
	if !g.HasNode(id) {
		return 0
	}
	return len(g.adj[id])
}

// IsClique reports whether every pair of distinct nodes in the set is
// connected. Sets with fewer than two nodes are trivially cliques.
func (g *Graph) IsClique(nodes []int) bool {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i] != nodes[j] && !g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}
	return true
}

// MaxEdges returns C(N, 2), the edge count of the complete graph on N nodes.
func (g *Graph) MaxEdges() int { return g.n * (g.n - 1) / 2 }

// Density returns EdgeCount / C(N, 2), or 0 for graphs with fewer than two nodes.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}
	return float64(len(g.edges)) / float64(g.MaxEdges())
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := New(g.n)
	for e := range g.edges {
		c.edges[e] = struct{}{}
		c.adj[e.U][e.V] = struct{}{}
		c.adj[e.V][e.U] = struct{}{}
	}
	return c
}
