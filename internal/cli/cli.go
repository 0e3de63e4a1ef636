// Package cli implements the cliquebench command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquebench/pkg/buildinfo"
	"github.com/matzehuels/cliquebench/pkg/config"
	"github.com/matzehuels/cliquebench/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cliquebench"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string
	metricsFile string
	metrics     *observability.PrometheusHooks
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it generates the hard sweep, benchmarks the
// solver on it and writes the results and chart.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cliquebench generates planted-clique graphs and benchmarks a clique solver",
		Long: `Cliquebench generates random graphs with planted cliques of known size,
writes them in several interoperable formats, and measures an external clique
solver over a sweep of graph sizes.

Run without a subcommand to generate the hard_<n> sweep, run the solver on
every file, and write the results CSV and chart.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.installMetrics()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.writeMetrics()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runBenchmark(cmd.Context(), cfg)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.plotCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the --config file, or returns the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	return cfg, nil
}

// =============================================================================
// Metrics
// =============================================================================

// installMetrics registers Prometheus hooks when a metrics file is requested.
func (c *CLI) installMetrics() {
	if c.metricsFile == "" || c.metrics != nil {
		return
	}
	c.metrics = observability.NewPrometheusHooks()
	observability.SetGenerateHooks(c.metrics)
	observability.SetBenchHooks(c.metrics)
}

// writeMetrics exports collected metrics, if any were requested.
func (c *CLI) writeMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := c.metrics.WriteTextfile(c.metricsFile); err != nil {
		return err
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}
