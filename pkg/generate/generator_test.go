package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

func TestRandomGraphExtremes(t *testing.T) {
	gen := New(1)

	empty, err := gen.RandomGraph(15, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())

	full, err := gen.RandomGraph(15, 1)
	require.NoError(t, err)
	assert.Equal(t, full.MaxEdges(), full.EdgeCount())

	none, err := gen.RandomGraph(0, 0.5)
	require.NoError(t, err)
	assert.Zero(t, none.NodeCount())

	_, err = gen.RandomGraph(-1, 0.5)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))
}

func TestSameSeedSameGraph(t *testing.T) {
	g1, c1, err := New(42).PlantedClique(40, 6, 0.5)
	require.NoError(t, err)
	g2, c2, err := New(42).PlantedClique(40, 6, 0.5)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestPlantedCliqueEdgeCount(t *testing.T) {
	// n=20, k=5: 10 guaranteed edges plus noise with mean 0.7*(190-10) = 126.
	const runs = 200
	total := 0
	for seed := range uint64(runs) {
		g, clique, err := New(seed).PlantedClique(20, 5, 0.7)
		require.NoError(t, err)
		require.Len(t, clique, 5)
		require.True(t, g.IsClique(clique))

		cliqueEdges := 0
		for i := 0; i < len(clique); i++ {
			for j := i + 1; j < len(clique); j++ {
				if g.HasEdge(clique[i], clique[j]) {
					cliqueEdges++
				}
			}
		}
		require.Equal(t, 10, cliqueEdges)
		total += g.EdgeCount() - cliqueEdges
	}

	mean := float64(total) / runs
	assert.InDelta(t, 0.7*(190-10), mean, 3.0)
}

func TestPlantedCliqueNoiseExtremes(t *testing.T) {
	gen := New(7)

	g, clique, err := gen.PlantedClique(12, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount(), "zero noise leaves only the clique")
	assert.True(t, g.IsClique(clique))

	g, _, err = gen.PlantedClique(12, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, g.MaxEdges(), g.EdgeCount(), "full noise yields the complete graph")
}

func TestPlantedCliqueInvalidSizes(t *testing.T) {
	tests := []struct {
		name string
		n, k int
	}{
		{"k exceeds n", 5, 6},
		{"negative k", 5, -1},
		{"negative n", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := New(1).PlantedClique(tt.n, tt.k, 0.5)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestRandomGraphM(t *testing.T) {
	gen := New(3)

	g, err := gen.RandomGraphM(30, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, g.EdgeCount())

	g, err = gen.RandomGraphM(6, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())

	_, err = gen.RandomGraphM(6, 16)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))
	_, err = gen.RandomGraphM(6, -1)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))
}

func TestGraphWithClique(t *testing.T) {
	g, clique, err := New(9).GraphWithClique(30, 5, 0.2)
	require.NoError(t, err)
	assert.Len(t, clique, 5)
	assert.True(t, g.IsClique(clique))
	assert.IsIncreasing(t, clique)
}

func TestMultipleCliques(t *testing.T) {
	g, cliques, err := New(11).MultipleCliques(50, 4, 3, 0.15)
	require.NoError(t, err)
	require.Len(t, cliques, 3)
	for _, c := range cliques {
		assert.Len(t, c, 4)
		assert.True(t, g.IsClique(c))
	}

	// Overlap is allowed: ten cliques of 4 on 6 nodes must share nodes.
	g, cliques, err = New(11).MultipleCliques(6, 4, 10, 0)
	require.NoError(t, err)
	assert.Len(t, cliques, 10)
	for _, c := range cliques {
		assert.True(t, g.IsClique(c))
	}

	_, _, err = New(11).MultipleCliques(6, 4, -1, 0)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))
}

func TestAddCliqueSubset(t *testing.T) {
	gen := New(5)
	g := graph.New(6)

	got, err := gen.AddClique(g, 3, []int{4, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, got)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.IsClique(got))
}

func TestAddCliqueIdempotent(t *testing.T) {
	gen := New(5)
	g, err := gen.RandomGraph(25, 0.3)
	require.NoError(t, err)

	subset := []int{1, 7, 8, 20}
	_, err = gen.AddClique(g, 4, subset)
	require.NoError(t, err)
	before := g.EdgeCount()

	_, err = gen.AddClique(g, 4, subset)
	require.NoError(t, err)
	assert.Equal(t, before, g.EdgeCount())
}

func TestAddCliqueErrors(t *testing.T) {
	tests := []struct {
		name   string
		k      int
		subset []int
	}{
		{"subset too short", 3, []int{0, 1}},
		{"subset too long", 1, []int{0, 1}},
		{"node out of range", 2, []int{0, 9}},
		{"duplicate node", 2, []int{3, 3}},
		{"k exceeds nodes", 7, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graph.New(6)
			_, err := New(1).AddClique(g, tt.k, tt.subset)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig), "got %v", err)
			assert.Zero(t, g.EdgeCount(), "failed call must not touch the graph")
		})
	}
}
