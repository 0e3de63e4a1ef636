package generate

import (
	"fmt"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// Generation models for a Case.
const (
	// ModelMultiClique embeds Cliques k-cliques into a G(n, EdgeProb) graph.
	ModelMultiClique = "multi"
	// ModelPlanted plants one k-clique and applies EdgeProb as noise density.
	ModelPlanted = "planted"
)

// Case describes one named test instance.
type Case struct {
	Name     string  `json:"name" toml:"name" yaml:"name" validate:"required"`
	Nodes    int     `json:"n_nodes" toml:"n_nodes" yaml:"n_nodes" validate:"gte=1"`
	K        int     `json:"k" toml:"k" yaml:"k" validate:"gte=1,ltefield=Nodes"`
	EdgeProb float64 `json:"edge_prob" toml:"edge_prob" yaml:"edge_prob" validate:"gte=0,lte=1"`
	Cliques  int     `json:"n_cliques" toml:"n_cliques" yaml:"n_cliques" validate:"gte=0"`
	Model    string  `json:"model,omitempty" toml:"model" yaml:"model" validate:"omitempty,oneof=multi planted"`
}

// Instance is a generated Case with the cliques that were embedded in it.
type Instance struct {
	Case    Case
	Graph   *graph.Graph
	Cliques [][]int
}

// DefaultSuite returns the canonical test cases, from easy to very hard.
func DefaultSuite() []Case {
	return []Case{
		{Name: "easy_small", Nodes: 20, K: 3, EdgeProb: 0.3, Cliques: 1},
		{Name: "easy_medium", Nodes: 50, K: 4, EdgeProb: 0.25, Cliques: 1},
		{Name: "medium_sparse", Nodes: 100, K: 5, EdgeProb: 0.1, Cliques: 2},
		{Name: "medium_dense", Nodes: 100, K: 6, EdgeProb: 0.4, Cliques: 2},
		{Name: "hard_large", Nodes: 200, K: 7, EdgeProb: 0.15, Cliques: 3},
		{Name: "hard_very_dense", Nodes: 150, K: 8, EdgeProb: 0.5, Cliques: 2},
		{Name: "very_hard_sparse", Nodes: 300, K: 10, EdgeProb: 0.05, Cliques: 1},
		{Name: "very_hard_large", Nodes: 500, K: 12, EdgeProb: 0.1, Cliques: 2},
	}
}

// HardSweep returns planted-clique cases hard_<n> for n = from, from+step, ..., <= to.
// The clique size is max(5, int(0.15*n)). A non-positive step yields no cases.
func HardSweep(from, to, step int, noise float64) []Case {
	if step <= 0 {
		return nil
	}
	var cases []Case
	for n := from; n <= to; n += step {
		cases = append(cases, Case{
			Name:     fmt.Sprintf("hard_%d", n),
			Nodes:    n,
			K:        SweepCliqueSize(n),
			EdgeProb: noise,
			Cliques:  1,
			Model:    ModelPlanted,
		})
	}
	return cases
}

// SweepCliqueSize is the planted clique size used by HardSweep for n nodes.
func SweepCliqueSize(n int) int {
	return max(5, int(float64(n)*0.15))
}

// Generate builds one instance according to c.Model.
func (gen *Generator) Generate(c Case) (Instance, error) {
	if err := errs.ValidateCaseName(c.Name); err != nil {
		return Instance{}, err
	}
	switch c.Model {
	case ModelPlanted:
		g, clique, err := gen.PlantedClique(c.Nodes, c.K, c.EdgeProb)
		if err != nil {
			return Instance{}, fmt.Errorf("case %s: %w", c.Name, err)
		}
		return Instance{Case: c, Graph: g, Cliques: [][]int{clique}}, nil
	case "", ModelMultiClique:
		g, cliques, err := gen.MultipleCliques(c.Nodes, c.K, c.Cliques, c.EdgeProb)
		if err != nil {
			return Instance{}, fmt.Errorf("case %s: %w", c.Name, err)
		}
		return Instance{Case: c, Graph: g, Cliques: cliques}, nil
	default:
		return Instance{}, errs.New(errs.ErrCodeInvalidConfig, "case %s: unknown model %q", c.Name, c.Model)
	}
}

// Suite generates every case in order, stopping at the first error.
func (gen *Generator) Suite(cases []Case) ([]Instance, error) {
	out := make([]Instance, 0, len(cases))
	for _, c := range cases {
		inst, err := gen.Generate(c)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
