package generate

import (
	"slices"

	errs "github.com/matzehuels/cliquebench/pkg/errors"
	"github.com/matzehuels/cliquebench/pkg/graph"
)

// AddClique turns k nodes of g into a complete subgraph and returns them
// sorted ascending.
//
// If subset is nil, k distinct nodes are sampled uniformly without
// replacement from g's nodes. Otherwise subset must hold exactly k distinct,
// existing node ids. Missing edges are inserted and existing ones are left
// alone, so repeating the call on the same set does not change g.
func (gen *Generator) AddClique(g *graph.Graph, k int, subset []int) ([]int, error) {
	var chosen []int
	if subset == nil {
		if err := validateSizes(g.NodeCount(), k); err != nil {
			return nil, err
		}
		chosen = gen.sample(g.Nodes(), k)
	} else {
		if len(subset) != k {
			return nil, errs.New(errs.ErrCodeInvalidConfig, "node subset must have exactly %d nodes, got %d", k, len(subset))
		}
		chosen = slices.Clone(subset)
		slices.Sort(chosen)
		for i, id := range chosen {
			if !g.HasNode(id) {
				return nil, errs.New(errs.ErrCodeInvalidConfig, "node %d is not in the graph (0..%d)", id, g.NodeCount()-1)
			}
			if i > 0 && chosen[i-1] == id {
				return nil, errs.New(errs.ErrCodeInvalidConfig, "node subset contains %d more than once", id)
			}
		}
	}

	for i := 0; i < len(chosen); i++ {
		for j := i + 1; j < len(chosen); j++ {
			if _, err := g.AddEdge(chosen[i], chosen[j]); err != nil {
				return nil, errs.Wrap(errs.ErrCodeInternal, err, "connect %d-%d", chosen[i], chosen[j])
			}
		}
	}
	return chosen, nil
}
