package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquebench/pkg/config"
	"github.com/matzehuels/cliquebench/pkg/dataset"
	"github.com/matzehuels/cliquebench/pkg/generate"
	"github.com/matzehuels/cliquebench/pkg/observability"
)

// Suites accepted by the generate command.
const (
	suiteDefault = "default"
	suiteSweep   = "sweep"
)

// generateCommand creates the generate command for writing dataset suites.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		suite   string
		outDir  string
		formats []string
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate planted-clique datasets",
		Long: `Generate planted-clique datasets.

The default suite contains eight cases from easy_small to very_hard_large,
each written in every configured format (json, edge_list, dimacs, solver).
Use --suite sweep for the hard_<n> benchmark sweep instead. Cases can be
customized with [[cases]] entries in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.DatasetsDir = outDir
			}
			if cmd.Flags().Changed("format") {
				cfg.Formats = formats
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var cases []generate.Case
			switch suite {
			case suiteDefault:
				cases = cfg.SuiteCases()
			case suiteSweep:
				cases = cfg.SweepCases()
			default:
				return fmt.Errorf("unknown suite %q (want %s or %s)", suite, suiteDefault, suiteSweep)
			}
			return c.runGenerate(cmd.Context(), cfg, cases)
		},
	}

	cmd.Flags().StringVar(&suite, "suite", suiteDefault, "cases to generate: default or sweep")
	cmd.Flags().StringVarP(&outDir, "out", "o", config.DefaultDatasetsDir, "output directory")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "dataset formats: json, edge_list, dimacs, solver (default all)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")

	return cmd
}

// runGenerate writes every case in every configured format.
func (c *CLI) runGenerate(ctx context.Context, cfg config.Config, cases []generate.Case) error {
	formats, err := cfg.DatasetFormats()
	if err != nil {
		return err
	}
	gen := cfg.Generator()
	prog := newProgress(loggerFromContext(ctx))

	for _, cs := range cases {
		if err := ctx.Err(); err != nil {
			return err
		}
		ds, paths, err := c.writeCase(ctx, gen, cs, cfg.DatasetsDir, formats)
		if err != nil {
			return err
		}
		printSuccess("%s", cs.Name)
		printStats(ds.Nodes, ds.EdgeCount(), ds.K)
		for _, p := range paths {
			printFile(p)
		}
	}

	prog.done(fmt.Sprintf("Generated %d datasets", len(cases)))
	return nil
}

// writeCase generates cs and saves it under dir in each format, reporting
// to the generation hooks.
func (c *CLI) writeCase(ctx context.Context, gen *generate.Generator, cs generate.Case, dir string, formats []dataset.Format) (dataset.Dataset, []string, error) {
	hooks := observability.Generate()
	logger := loggerFromContext(ctx)

	start := time.Now()
	inst, err := gen.Generate(cs)
	kind := cs.Model
	if kind == "" {
		kind = generate.ModelMultiClique
	}
	if err != nil {
		hooks.OnGenerate(ctx, kind, cs.Nodes, 0, time.Since(start), err)
		return dataset.Dataset{}, nil, err
	}
	hooks.OnGenerate(ctx, kind, inst.Graph.NodeCount(), inst.Graph.EdgeCount(), time.Since(start), nil)
	logger.Debug("generated graph", "case", cs.Name, "nodes", inst.Graph.NodeCount(), "edges", inst.Graph.EdgeCount(), "density", fmt.Sprintf("%.3f", inst.Graph.Density()))

	ds := dataset.New(inst.Graph, cs.K, inst.Cliques)
	paths, err := dataset.SaveAll(ds, dir, cs.Name, formats...)
	if err != nil {
		return ds, paths, fmt.Errorf("save %s: %w", cs.Name, err)
	}
	for i, p := range paths {
		if info, err := os.Stat(p); err == nil {
			hooks.OnDatasetWritten(ctx, string(formats[i]), info.Size())
		}
	}
	return ds, paths, nil
}
