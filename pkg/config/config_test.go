package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cliquebench/pkg/dataset"
	errs "github.com/matzehuels/cliquebench/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "./kclique", cfg.Solver)
	assert.Equal(t, "results.csv", cfg.Results)
	assert.Equal(t, "clique_benchmark.png", cfg.Chart)
	assert.Equal(t, Sweep{From: 20, To: 100, Step: 20, Noise: 0.7}, cfg.Sweep)

	names := make([]string, 0)
	for _, c := range cfg.SweepCases() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"hard_20", "hard_40", "hard_60", "hard_80", "hard_100"}, names)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "bench.toml", `
solver = "./build/kclique"
seed = 42
formats = ["json", "in"]

[sweep]
to = 200

[[cases]]
name = "tiny"
n_nodes = 10
k = 3
edge_prob = 0.2
n_cliques = 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./build/kclique", cfg.Solver)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.Sweep.From)
	assert.Equal(t, 200, cfg.Sweep.To)
	assert.Equal(t, "tests", cfg.TestsDir)
	require.Len(t, cfg.SuiteCases(), 1)
	assert.Equal(t, "tiny", cfg.SuiteCases()[0].Name)

	formats, err := cfg.DatasetFormats()
	require.NoError(t, err)
	assert.Equal(t, []dataset.Format{dataset.FormatJSON, dataset.FormatSolver}, formats)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "bench.yaml", `
results: out/results.csv
sweep:
  from: 10
  to: 50
  step: 10
  noise: 0.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/results.csv", cfg.Results)
	assert.Equal(t, Sweep{From: 10, To: 50, Step: 10, Noise: 0.5}, cfg.Sweep)
	assert.Len(t, cfg.SuiteCases(), 8)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown toml key", "c.toml", "solvr = \"x\"\n"},
		{"unknown yaml key", "c.yml", "solvr: x\n"},
		{"bad extension", "c.json", "{}"},
		{"malformed toml", "c.toml", "solver = \n"},
		{"noise above one", "c.toml", "[sweep]\nnoise = 1.5\n"},
		{"inverted sweep", "c.toml", "[sweep]\nfrom = 100\nto = 20\n"},
		{"sweep below planted clique size", "c.toml", "[sweep]\nfrom = 4\n"},
		{"zero step", "c.yaml", "sweep:\n  step: 0\n"},
		{"empty solver", "c.toml", "solver = \"\"\n"},
		{"unknown format", "c.toml", "formats = [\"graphml\"]\n"},
		{"clique larger than graph", "c.toml", "[[cases]]\nname = \"x\"\nn_nodes = 5\nk = 6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidConfig), err.Error())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGeneratorSeeding(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	g1, _, err := cfg.Generator().PlantedClique(30, 5, 0.5)
	require.NoError(t, err)
	g2, _, err := cfg.Generator().PlantedClique(30, 5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())
}
