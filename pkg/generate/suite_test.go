package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

func TestHardSweep(t *testing.T) {
	cases := HardSweep(20, 100, 20, 0.7)
	require.Len(t, cases, 5)

	wantK := map[string]int{"hard_20": 5, "hard_40": 6, "hard_60": 9, "hard_80": 12, "hard_100": 15}
	for _, c := range cases {
		assert.Equal(t, wantK[c.Name], c.K, c.Name)
		assert.Equal(t, ModelPlanted, c.Model)
		assert.Equal(t, 0.7, c.EdgeProb)
	}

	assert.Nil(t, HardSweep(20, 100, 0, 0.7))
	assert.Empty(t, HardSweep(100, 20, 20, 0.7))
}

func TestDefaultSuiteGenerates(t *testing.T) {
	cases := DefaultSuite()
	require.Len(t, cases, 8)

	insts, err := New(42).Suite(cases[:4])
	require.NoError(t, err)
	require.Len(t, insts, 4)
	for _, inst := range insts {
		assert.Equal(t, inst.Case.Nodes, inst.Graph.NodeCount())
		assert.Len(t, inst.Cliques, inst.Case.Cliques)
		for _, c := range inst.Cliques {
			assert.True(t, inst.Graph.IsClique(c), inst.Case.Name)
		}
	}
}

func TestGenerateRejectsBadCases(t *testing.T) {
	gen := New(1)

	_, err := gen.Generate(Case{Name: "../escape", Nodes: 10, K: 3})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidName))

	_, err = gen.Generate(Case{Name: "tiny", Nodes: 3, K: 5, Cliques: 1})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))

	_, err = gen.Generate(Case{Name: "odd", Nodes: 10, K: 3, Model: "lattice"})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig))

	_, err = gen.Suite([]Case{{Name: "ok", Nodes: 10, K: 3, Cliques: 1}, {Name: "bad", Nodes: 2, K: 3}})
	assert.Error(t, err)
}
