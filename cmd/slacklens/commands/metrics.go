package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slacklens/slacklens/internal/dump"
	"github.com/slacklens/slacklens/internal/export"
	"github.com/slacklens/slacklens/internal/stats"
)

// metrics <dump.yaml>: export timing QoR in Prometheus text format.
func metricsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "metrics <dump.yaml>",
		Short: "Export timing QoR as Prometheus text exposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := dump.Load(args[0])
			if err != nil {
				return err
			}

			s, err := stats.Collect(a, a, a, a, a.Paths(), cfg.Report.HistogramBins)
			if err != nil {
				return err
			}

			// The flag overrides the config file's output path.
			dest := cfg.Metrics.Output
			if output != "" {
				dest = output
			}

			var w io.Writer = cmd.OutOrStdout()
			if dest != "" {
				f, err := os.Create(dest)
				if err != nil {
					return fmt.Errorf("metrics: create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			return export.WriteText(w, export.MetricFamilies(cfg.Metrics.Namespace, a, s))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write metrics to file instead of stdout")
	return cmd
}
