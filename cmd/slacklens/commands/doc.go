// Package commands defines the slacklens CLI.
//
// Commands
//
//   - report   Print setup/hold timing summaries and evaluate QoR checks
//   - metrics  Export timing QoR as Prometheus text exposition
//   - watch    Re-run the report whenever the analysis dump is rewritten
//
// The root command loads the optional YAML config (--config) before any
// subcommand runs; without one, defaults apply (10 histogram bins, no
// checks, "slacklens" metric namespace). A report with a firing
// critical-severity check exits non-zero.
package commands
