package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/generate"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

func sample(t *testing.T) Dataset {
	t.Helper()
	g, clique, err := generate.New(7).PlantedClique(12, 4, 0.3)
	require.NoError(t, err)
	return New(g, 4, [][]int{clique})
}

func TestRoundTripAllFormats(t *testing.T) {
	ds := sample(t)
	for _, f := range AllFormats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, ds, f))

			got, err := Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, ds.Nodes, got.Nodes)
			assert.Equal(t, ds.Edges, got.Edges)

			switch f {
			case FormatJSON:
				assert.Equal(t, ds.K, got.K)
				assert.Equal(t, ds.Cliques, got.Cliques)
			case FormatEdgeList:
				assert.Equal(t, ds.K, got.K)
			}
		})
	}
}

func TestDIMACSIsOneIndexed(t *testing.T) {
	g := graph.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(2, 1)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(g, 0, nil), FormatDIMACS))
	assert.Equal(t, "p edge 3 2\ne 1 2\ne 2 3\n", buf.String())
}

func TestEdgeListHeader(t *testing.T) {
	g := graph.New(4)
	_, _ = g.AddEdge(3, 0)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(g, 2, nil), FormatEdgeList))
	assert.Equal(t, "# n_nodes: 4\n# n_edges: 1\n# k: 2\n0 3\n", buf.String())
}

func TestSolverInput(t *testing.T) {
	g := graph.New(3)
	_, _ = g.AddEdge(1, 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(g, 0, nil), FormatSolver))
	assert.Equal(t, "3 1\n1 2\n", buf.String())
}

func TestJSONMatrixMatchesEdges(t *testing.T) {
	ds := sample(t)
	m := AdjacencyMatrix(ds)
	require.Len(t, m, ds.Nodes)
	for i := range m {
		assert.Zero(t, m[i][i])
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}

	edges, err := EdgesFromMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, ds.Edges, edges)
}

func TestEdgesFromMatrixRejects(t *testing.T) {
	tests := []struct {
		name string
		m    [][]int
	}{
		{"ragged", [][]int{{0, 1}, {1}}},
		{"self-loop", [][]int{{1, 0}, {0, 0}}},
		{"asymmetric", [][]int{{0, 1}, {0, 0}}},
		{"non-binary", [][]int{{0, 2}, {2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EdgesFromMatrix(tt.m)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidDataset))
		})
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	ds := sample(t)
	for _, f := range AllFormats() {
		var a, b bytes.Buffer
		require.NoError(t, Write(&a, ds, f))
		require.NoError(t, Write(&b, ds, f))
		assert.Equal(t, a.Bytes(), b.Bytes(), f)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	ds := sample(t)
	dir := filepath.Join(t.TempDir(), "nested", "datasets")

	paths, err := SaveAll(ds, dir, "easy_small", AllFormats()...)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())

		got, err := Load(p, "")
		require.NoError(t, err)
		assert.Equal(t, ds.Edges, got.Edges, p)
	}
	assert.Equal(t, filepath.Join(dir, "easy_small.dimacs"), paths[2])
}

func TestSaveAllRejectsBadName(t *testing.T) {
	_, err := SaveAll(sample(t), t.TempDir(), "../escape", FormatJSON)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidName))
}

func TestReadRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		f     Format
		input string
	}{
		{"edge list without header", FormatEdgeList, "0 1\n"},
		{"edge list count mismatch", FormatEdgeList, "# n_nodes: 3\n# n_edges: 2\n# k: 0\n0 1\n"},
		{"edge list out of range", FormatEdgeList, "# n_nodes: 2\n0 5\n"},
		{"edge list garbage", FormatEdgeList, "# n_nodes: 2\nzero one\n"},
		{"dimacs zero id", FormatDIMACS, "p edge 3 1\ne 0 1\n"},
		{"dimacs edge before problem", FormatDIMACS, "e 1 2\np edge 3 1\n"},
		{"dimacs unknown line", FormatDIMACS, "p edge 3 0\nx 1 2\n"},
		{"dimacs missing problem", FormatDIMACS, "c only comments\n"},
		{"solver self-loop", FormatSolver, "3 1\n2 2\n"},
		{"solver count mismatch", FormatSolver, "3 2\n0 1\n"},
		{"json disagreeing edges", FormatJSON, `{"n_nodes":2,"n_edges":1,"k":0,"edges":[],"cliques":[],"adjacency_matrix":[[0,1],[1,0]]}`},
		{"json bad matrix size", FormatJSON, `{"n_nodes":3,"n_edges":0,"k":0,"edges":[],"cliques":[],"adjacency_matrix":[[0,0],[0,0]]}`},
		{"json clique out of range", FormatJSON, `{"n_nodes":2,"n_edges":0,"k":1,"edges":[],"cliques":[[4]],"adjacency_matrix":[[0,0],[0,0]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.f)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidDataset), err.Error())
		})
	}
}

func TestReadDIMACSAcceptsComments(t *testing.T) {
	ds, err := Read(strings.NewReader("c generated\np col 3 1\n\ne 3 1\n"), FormatDIMACS)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Nodes)
	assert.Equal(t, []graph.Edge{{U: 0, V: 2}}, ds.Edges)
}

func TestFormatLookup(t *testing.T) {
	for alias, want := range map[string]Format{
		"json": FormatJSON, "TXT": FormatEdgeList, "edgelist": FormatEdgeList,
		"dimacs": FormatDIMACS, " in ": FormatSolver,
	} {
		got, err := ParseFormat(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("graphml")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))

	f, err := FormatFromPath("tests/hard_20.in")
	require.NoError(t, err)
	assert.Equal(t, FormatSolver, f)
	_, err = FormatFromPath("notes.md")
	assert.Error(t, err)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sample(t), Format("xml"))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}
