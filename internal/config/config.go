package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHistogramBins = 10
	DefaultNamespace     = "slacklens"
	DefaultSeverity      = "warning"
)

// Config is the top-level slacklens configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Metrics MetricsConfig `yaml:"metrics"`
	Checks  []CheckRule   `yaml:"checks"`
}

// ReportConfig holds report-rendering settings.
type ReportConfig struct {
	// HistogramBins is the number of equal-width slack histogram buckets.
	HistogramBins int `yaml:"histogram_bins"`

	// SkipHold omits the hold timing summary from the report.
	SkipHold bool `yaml:"skip_hold"`

	// SkipPins omits the cluster pin criticality table from the report.
	SkipPins bool `yaml:"skip_pins"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	// Namespace prefixes every exported metric name.
	Namespace string `yaml:"namespace"`

	// Output is the file the metrics command writes to; empty means stdout.
	Output string `yaml:"output"`
}

// CheckRule defines one threshold check evaluated against the summary.
type CheckRule struct {
	// Name is the human-readable check identifier.
	Name string `yaml:"name"`

	// Condition is an expression like "setup_wns_ns < -0.1" or
	// "fmax_mhz < 150". The check fires when the condition holds.
	Condition string `yaml:"condition"`

	// Severity is one of: critical | warning | info. A firing critical
	// check makes the report command exit non-zero.
	Severity string `yaml:"severity"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values. It is the
// configuration used when no config file is given.
func Defaults() *Config {
	return &Config{
		Report:  ReportConfig{HistogramBins: DefaultHistogramBins},
		Metrics: MetricsConfig{Namespace: DefaultNamespace},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Report.HistogramBins < 1 {
		return fmt.Errorf("report.histogram_bins must be >= 1, got %d", cfg.Report.HistogramBins)
	}
	if cfg.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required")
	}
	for i := range cfg.Checks {
		rule := &cfg.Checks[i]
		if rule.Name == "" {
			return fmt.Errorf("checks[%d]: name is required", i)
		}
		if rule.Condition == "" {
			return fmt.Errorf("checks[%d] %q: condition is required", i, rule.Name)
		}
		switch rule.Severity {
		case "":
			rule.Severity = DefaultSeverity
		case "critical", "warning", "info":
		default:
			return fmt.Errorf("checks[%d] %q: unknown severity %q", i, rule.Name, rule.Severity)
		}
	}
	return nil
}
