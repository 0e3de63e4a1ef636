package generate

import (
	"math/rand/v2"
	"slices"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// Generator produces random graphs from an explicit random source.
// A Generator is not safe for concurrent use; create one per goroutine.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded deterministically from seed.
func New(seed uint64) *Generator {
	return NewWithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom creates a generator seeded from the runtime's random source.
func NewRandom() *Generator {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates a generator drawing from r.
func NewWithRand(r *rand.Rand) *Generator {
	return &Generator{rng: r}
}

// RandomGraph builds a G(n,p) graph: each of the C(n,2) node pairs becomes an
// edge independently with probability p. Pairs are visited in upper-triangle
// order (i asc, j > i asc), one uniform draw per pair.
func (gen *Generator) RandomGraph(n int, p float64) (*graph.Graph, error) {
	if n < 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "node count must not be negative, got %d", n)
	}
	g := graph.New(n)
	gen.addNoise(g, p)
	return g, nil
}

// RandomGraphM builds a G(n,m) graph with exactly m distinct edges chosen
// uniformly among all node pairs.
func (gen *Generator) RandomGraphM(n, m int) (*graph.Graph, error) {
	if n < 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "node count must not be negative, got %d", n)
	}
	g := graph.New(n)
	if m < 0 || m > g.MaxEdges() {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "edge count %d outside [0, %d] for %d nodes", m, g.MaxEdges(), n)
	}

	pairs := make([]graph.Edge, 0, g.MaxEdges())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, graph.Edge{U: i, V: j})
		}
	}
	// Partial Fisher-Yates: the first m slots end up a uniform m-subset.
	for i := 0; i < m; i++ {
		j := i + gen.rng.IntN(len(pairs)-i)
		pairs[i], pairs[j] = pairs[j], pairs[i]
		if _, err := g.AddEdge(pairs[i].U, pairs[i].V); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "add edge %d-%d", pairs[i].U, pairs[i].V)
		}
	}
	return g, nil
}

// PlantedClique builds a graph with a guaranteed clique of size k: k distinct
// nodes are chosen uniformly, every pair among them is connected, and every
// remaining unconnected pair gets an edge with probability noise.
// The clique is returned sorted ascending.
func (gen *Generator) PlantedClique(n, k int, noise float64) (*graph.Graph, []int, error) {
	if err := validateSizes(n, k); err != nil {
		return nil, nil, err
	}
	g := graph.New(n)
	clique, err := gen.AddClique(g, k, nil)
	if err != nil {
		return nil, nil, err
	}
	gen.addNoise(g, noise)
	return g, clique, nil
}

// GraphWithClique builds a G(n,p) graph and embeds one k-clique in it.
func (gen *Generator) GraphWithClique(n, k int, p float64) (*graph.Graph, []int, error) {
	if err := validateSizes(n, k); err != nil {
		return nil, nil, err
	}
	g, err := gen.RandomGraph(n, p)
	if err != nil {
		return nil, nil, err
	}
	clique, err := gen.AddClique(g, k, nil)
	if err != nil {
		return nil, nil, err
	}
	return g, clique, nil
}

// MultipleCliques builds a G(n,p) graph and embeds nCliques independent
// k-cliques. Later cliques may overlap earlier ones; no node is excluded.
func (gen *Generator) MultipleCliques(n, k, nCliques int, p float64) (*graph.Graph, [][]int, error) {
	if err := validateSizes(n, k); err != nil {
		return nil, nil, err
	}
	if nCliques < 0 {
		return nil, nil, errs.New(errs.ErrCodeInvalidConfig, "clique count must not be negative, got %d", nCliques)
	}
	g, err := gen.RandomGraph(n, p)
	if err != nil {
		return nil, nil, err
	}
	cliques := make([][]int, 0, nCliques)
	for range nCliques {
		clique, err := gen.AddClique(g, k, nil)
		if err != nil {
			return nil, nil, err
		}
		cliques = append(cliques, clique)
	}
	return g, cliques, nil
}

// addNoise runs one Bernoulli trial per unconnected pair. Pairs already
// present (planted edges) are skipped without consuming a draw.
func (gen *Generator) addNoise(g *graph.Graph, p float64) {
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			if gen.rng.Float64() < p {
				_, _ = g.AddEdge(i, j)
			}
		}
	}
}

// sample returns k distinct values drawn uniformly from nodes, sorted.
func (gen *Generator) sample(nodes []int, k int) []int {
	pool := slices.Clone(nodes)
	for i := 0; i < k; i++ {
		j := i + gen.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := pool[:k]
	slices.Sort(out)
	return out
}

func validateSizes(n, k int) error {
	switch {
	case n < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "node count must not be negative, got %d", n)
	case k < 0:
		return errs.New(errs.ErrCodeInvalidConfig, "clique size must not be negative, got %d", k)
	case k > n:
		return errs.New(errs.ErrCodeInvalidConfig, "clique size %d exceeds node count %d", k, n)
	}
	return nil
}
