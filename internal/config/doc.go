// Package config loads and watches the slacklens configuration file.
//
// Top-level types:
//   - Config{Report, Metrics, Checks}: full config tree parsed from YAML
//   - ReportConfig: histogram_bins, skip_hold, skip_pins
//   - MetricsConfig: namespace, output path for the text exposition
//   - CheckRule: name, condition ("field op value"), severity
//
// Load(path) reads the YAML file, applies defaults (10 histogram bins,
// "slacklens" metric namespace, "warning" severity), then validates.
//
// Watch(ctx, path, validate) uses fsnotify to detect file changes and
// delivers each reloaded Config that passes the validate hook on the
// returned channel, keeping only the latest undelivered update. It
// handles the rename→create pattern used by atomic-save editors by
// re-adding the watch after each reload.
package config
