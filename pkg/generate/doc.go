// Package generate builds random graphs with planted cliques.
//
// # Overview
//
// A [Generator] owns its random source, so independent generators never
// share hidden state and a fixed seed reproduces the same graphs:
//
//	gen := generate.New(42)
//	g, clique, err := gen.PlantedClique(20, 5, 0.7)
//
// The generators available are:
//
//   - [Generator.RandomGraph]: independent Bernoulli edge per node pair (G(n,p))
//   - [Generator.RandomGraphM]: exactly m edges chosen uniformly (G(n,m))
//   - [Generator.PlantedClique]: deterministic k-clique plus noise on every other pair
//   - [Generator.GraphWithClique]: G(n,p) followed by one embedded clique
//   - [Generator.MultipleCliques]: G(n,p) followed by several, possibly overlapping, cliques
//
// [Generator.AddClique] densifies a node subset into a complete subgraph and
// is idempotent: adding the same clique twice leaves the edge count unchanged.
//
// # Test Suites
//
// [Case] describes one named instance. [DefaultSuite] lists the canonical
// easy-to-very-hard cases and [HardSweep] builds the size sweep used by the
// benchmark driver. [Generator.Suite] generates them all.
//
// # Errors
//
// Size mistakes (k > n, negative counts, subset length not equal to k) are
// reported as INVALID_CONFIG errors from pkg/errors. Probabilities are not
// validated: p <= 0 produces no random edges and p >= 1 connects every pair.
package generate
