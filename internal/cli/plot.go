package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquebench/pkg/bench"
	"github.com/matzehuels/cliquebench/pkg/chart"
)

// plotCommand creates the plot command for redrawing a results chart.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "plot [results.csv]",
		Short: "Draw the benchmark chart from a results file",
		Long: `Draw the benchmark chart from a results file.

Reads a CSV written by 'bench' (default: the configured results path) and
draws time against graph size with one line per algorithm.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			input := cfg.Results
			if len(args) == 1 {
				input = args[0]
			}
			if output == "" {
				output = cfg.Chart
			}
			return c.runPlot(input, output, title)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "chart PNG path (default from config)")
	cmd.Flags().StringVar(&title, "title", chart.DefaultOptions().Title, "chart title")

	return cmd
}

func (c *CLI) runPlot(input, output, title string) error {
	records, err := bench.LoadResults(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded results", "path", input, "records", len(records))
	if len(records) == 0 {
		printWarning("%s has no results; chart skipped", input)
		return nil
	}

	opts := chart.DefaultOptions()
	opts.Title = title
	if err := chart.SavePNG(output, chart.FromRecords(records), opts); err != nil {
		return err
	}
	printSuccess("Chart saved")
	printFile(output)
	return nil
}
