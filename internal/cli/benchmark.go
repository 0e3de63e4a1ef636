package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquebench/pkg/bench"
	"github.com/matzehuels/cliquebench/pkg/config"
	"github.com/matzehuels/cliquebench/pkg/dataset"
)

// benchCommand creates the bench command, the default sequence with flag
// overrides.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		cfgFlags config.Config
		from     int
		to       int
		step     int
		noise    float64
		seed     uint64
	)
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the clique solver on the hard sweep",
		Long: `Benchmark the clique solver on the hard sweep.

For every n in the sweep a planted-clique graph hard_<n> is generated and
written in the solver input format. The solver is run on each file in turn
and its timings are collected. Files whose run fails or whose output cannot
be parsed are reported and skipped.

Results are written as CSV together with a run manifest, and a chart of
time against n is drawn when there is at least one result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			overrideString(flags.Changed("solver"), &cfg.Solver, cfgFlags.Solver)
			overrideString(flags.Changed("tests-dir"), &cfg.TestsDir, cfgFlags.TestsDir)
			overrideString(flags.Changed("results"), &cfg.Results, cfgFlags.Results)
			overrideString(flags.Changed("chart"), &cfg.Chart, cfgFlags.Chart)
			if flags.Changed("from") {
				cfg.Sweep.From = from
			}
			if flags.Changed("to") {
				cfg.Sweep.To = to
			}
			if flags.Changed("step") {
				cfg.Sweep.Step = step
			}
			if flags.Changed("noise") {
				cfg.Sweep.Noise = noise
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runBenchmark(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFlags.Solver, "solver", defaults.Solver, "path to the solver binary")
	cmd.Flags().StringVar(&cfgFlags.TestsDir, "tests-dir", defaults.TestsDir, "directory for generated solver inputs")
	cmd.Flags().StringVar(&cfgFlags.Results, "results", defaults.Results, "results CSV path")
	cmd.Flags().StringVar(&cfgFlags.Chart, "chart", defaults.Chart, "chart PNG path")
	cmd.Flags().IntVar(&from, "from", defaults.Sweep.From, "smallest graph size (at least 5)")
	cmd.Flags().IntVar(&to, "to", defaults.Sweep.To, "largest graph size")
	cmd.Flags().IntVar(&step, "step", defaults.Sweep.Step, "graph size step")
	cmd.Flags().Float64Var(&noise, "noise", defaults.Sweep.Noise, "noise edge probability")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")

	return cmd
}

func overrideString(changed bool, dst *string, value string) {
	if changed {
		*dst = value
	}
}

// runBenchmark checks the solver, generates the sweep, runs the solver on
// every file and writes the results, manifest and chart.
func (c *CLI) runBenchmark(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	if err := bench.CheckSolver(cfg.Solver); err != nil {
		return err
	}

	files, err := c.generateSweep(ctx, cfg)
	if err != nil {
		return err
	}

	printNewline()
	printInfo("Running %s on %d files", cfg.Solver, len(files))
	runner := bench.NewRunner(cfg.Solver, logger)

	spinner := newSpinner(ctx, "Running solver...")
	invoke := runner.Invoke
	runner.Invoke = func(ctx context.Context, solver, path string) ([]byte, error) {
		spinner.Update(fmt.Sprintf("Running solver on %s...", filepath.Base(path)))
		return invoke(ctx, solver, path)
	}

	started := time.Now()
	spinner.Start()
	results := runner.RunFiles(ctx, files)
	spinner.Stop()
	finished := time.Now()

	if err := ctx.Err(); err != nil {
		return err
	}

	var records []bench.Record
	for _, res := range results {
		switch {
		case res.Err != nil:
			printError("n=%d: %v", res.File.N, res.Err)
		case res.ExitErr != nil:
			printWarning("n=%d: %v (kept %d results)", res.File.N, res.ExitErr, len(res.Records))
		default:
			printSuccess("n=%d: %d results in %s", res.File.N, len(res.Records), res.Duration.Round(time.Millisecond))
		}
		records = append(records, res.Records...)
	}

	return c.saveResults(cfg, records, bench.NewManifest(cfg.Solver, results, started, finished))
}

// generateSweep writes the hard_<n> cases in the solver input format.
func (c *CLI) generateSweep(ctx context.Context, cfg config.Config) ([]bench.TestFile, error) {
	gen := cfg.Generator()
	cases := cfg.SweepCases()
	prog := newProgress(loggerFromContext(ctx))

	files := make([]bench.TestFile, 0, len(cases))
	for _, cs := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ds, paths, err := c.writeCase(ctx, gen, cs, cfg.TestsDir, []dataset.Format{dataset.FormatSolver})
		if err != nil {
			return nil, err
		}
		printDetail("%s: n=%d, k=%d, %d edges", cs.Name, ds.Nodes, ds.K, ds.EdgeCount())
		files = append(files, bench.TestFile{N: cs.Nodes, Path: paths[0]})
	}
	prog.done(fmt.Sprintf("Generated %d test files", len(files)))
	return files, nil
}

// saveResults writes the CSV, manifest and chart and prints the summary.
func (c *CLI) saveResults(cfg config.Config, records []bench.Record, manifest bench.Manifest) error {
	plotted, err := bench.SaveAndPlot(records, cfg.Results, cfg.Chart)
	if err != nil {
		return err
	}
	manifestPath := bench.ManifestPath(cfg.Results)
	if err := manifest.Save(manifestPath); err != nil {
		return err
	}

	printNewline()
	if len(records) > 0 {
		printSummary(bench.Summarize(records))
	}
	printSuccess("Results saved")
	printFile(cfg.Results)
	printFile(manifestPath)
	if plotted {
		printSuccess("Chart saved")
		printFile(cfg.Chart)
	} else {
		printWarning("No results; chart skipped")
	}
	printKeyValue("Run", manifest.RunID)
	return nil
}
