package dataset

import (
	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// AdjacencyMatrix returns the symmetric 0/1 matrix of d under ascending node
// order: m[i][j] == m[j][i] == 1 iff {i, j} is an edge.
func AdjacencyMatrix(d Dataset) [][]int {
	m := make([][]int, d.Nodes)
	for i := range m {
		m[i] = make([]int, d.Nodes)
	}
	for _, e := range d.Edges {
		m[e.U][e.V] = 1
		m[e.V][e.U] = 1
	}
	return m
}

// EdgesFromMatrix derives the sorted edge list from an adjacency matrix.
// The matrix must be square, symmetric, 0/1 valued and have a zero diagonal.
func EdgesFromMatrix(m [][]int) ([]graph.Edge, error) {
	n := len(m)
	var edges []graph.Edge
	for i, row := range m {
		if len(row) != n {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix row %d has %d columns, want %d", i, len(row), n)
		}
		if row[i] != 0 {
			return nil, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix has a self-loop at %d", i)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix entry [%d][%d] = %d, want 0 or 1", i, j, v)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, errs.New(errs.ErrCodeInvalidDataset, "adjacency matrix is not symmetric at [%d][%d]", i, j)
			}
			if m[i][j] == 1 {
				edges = append(edges, graph.Edge{U: i, V: j})
			}
		}
	}
	return edges, nil
}

// FromAdjacencyMatrix builds a dataset with no cliques from m.
// It is the inverse of AdjacencyMatrix for the graph part.
func FromAdjacencyMatrix(m [][]int) (Dataset, error) {
	edges, err := EdgesFromMatrix(m)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Nodes: len(m), Edges: edges}, nil
}
