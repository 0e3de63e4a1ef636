// Package pkg provides the libraries behind cliquebench.
//
// # Overview
//
// Cliquebench builds random graphs with planted cliques of known size, writes
// them in several interchangeable formats and measures an external clique
// solver on them. The pkg directory is organized by stage:
//
//  1. [graph] - Undirected graph with a canonical edge set
//  2. [generate] - Random graphs, clique embedding and test suites
//  3. [dataset] - JSON, edge list, DIMACS and solver-input files
//  4. [bench] - Solver runner, output parser, results and manifests
//  5. [chart] and [render] - Timing charts and graph diagrams
//
// Supporting packages: [config] (TOML/YAML settings), [errors] (coded
// errors), [observability] (hooks and Prometheus metrics) and [buildinfo].
//
// # Data Flow
//
//	generate.Generator
//	         ↓
//	    graph.Graph + planted cliques
//	         ↓
//	    dataset.Save (.json .txt .dimacs .in)
//	         ↓
//	    bench.Runner (solver per .in file)
//	         ↓
//	    results.csv + clique_benchmark.png
//
// # Quick Start
//
//	gen := generate.New(42)
//	g, clique, _ := gen.PlantedClique(100, 15, 0.7)
//	ds := dataset.New(g, 15, [][]int{clique})
//	_ = dataset.Save(ds, "tests/hard_100.in", dataset.FormatSolver)
//
//	records := bench.NewRunner("./kclique", nil).Run(ctx, []bench.TestFile{{N: 100, Path: "tests/hard_100.in"}})
//	_, _ = bench.SaveAndPlot(records, "results.csv", "clique_benchmark.png")
//
// [graph]: github.com/matzehuels/cliquebench/pkg/graph
// [generate]: github.com/matzehuels/cliquebench/pkg/generate
// [dataset]: github.com/matzehuels/cliquebench/pkg/dataset
// [bench]: github.com/matzehuels/cliquebench/pkg/bench
// [chart]: github.com/matzehuels/cliquebench/pkg/chart
// [render]: github.com/matzehuels/cliquebench/pkg/render
// [config]: github.com/matzehuels/cliquebench/pkg/config
// [errors]: github.com/matzehuels/cliquebench/pkg/errors
// [observability]: github.com/matzehuels/cliquebench/pkg/observability
// [buildinfo]: github.com/matzehuels/cliquebench/pkg/buildinfo
package pkg
