package commands

import (
	"github.com/spf13/cobra"

	"github.com/slacklens/slacklens/internal/checks"
	"github.com/slacklens/slacklens/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

// Execute builds and runs the slacklens CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "slacklens",
		Short: "Timing QoR post-analysis for place-and-route flows",
		Long: "slacklens turns a timing analyzer's per-node slack tags into " +
			"decision-ready figures: WNS/TNS, slack histograms, per-domain-pair " +
			"critical paths and bounded criticality scores.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				cfg = config.Defaults()
				return nil
			}
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := checks.Validate(loaded.Checks); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (optional)")

	root.AddCommand(reportCmd(), metricsCmd(), watchCmd())
	return root.Execute()
}
