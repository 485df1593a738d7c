package commands

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slacklens/slacklens/internal/checks"
	"github.com/slacklens/slacklens/internal/config"
	"github.com/slacklens/slacklens/internal/dump"
	"github.com/slacklens/slacklens/internal/report"
	"github.com/slacklens/slacklens/internal/stats"
)

// report <dump.yaml>: print setup/hold summaries and evaluate checks.
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <dump.yaml>",
		Short: "Print setup and hold timing summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), cfg, args[0])
		},
	}
}

// runReport is shared by the report and watch commands.
func runReport(w io.Writer, cfg *config.Config, dumpPath string) error {
	a, err := dump.Load(dumpPath)
	if err != nil {
		return err
	}

	s, err := stats.Collect(a, a, a, a, a.Paths(), cfg.Report.HistogramBins)
	if err != nil {
		return err
	}

	report.WriteSetupSummary(w, a, s)
	if !cfg.Report.SkipHold {
		report.WriteHoldSummary(w, a, a, a, s)
	}
	if !cfg.Report.SkipPins {
		pins := a.ClusterPins()
		sort.Slice(pins, func(i, j int) bool { return pins[i] < pins[j] })
		report.WriteClusterPinCriticalities(w, a, a, pins)
	}

	violations := checks.Evaluate(cfg.Checks, s)
	for _, v := range violations {
		slog.Warn("checks: violation", "rule", v.Rule.Name, "severity", v.Rule.Severity,
			"condition", v.Rule.Condition, "value", v.Value)
	}
	if checks.HasCritical(violations) {
		return fmt.Errorf("checks: %d violation(s), at least one critical", len(violations))
	}
	return nil
}
