package checks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slacklens/slacklens/internal/config"
	"github.com/slacklens/slacklens/internal/stats"
	"github.com/slacklens/slacklens/internal/timing"
)

// Violation is one fired check: the rule and the value that triggered it.
type Violation struct {
	Rule  config.CheckRule
	Value float64
}

// String renders the violation for logs.
func (v Violation) String() string {
	return fmt.Sprintf("%s [%s]: %s (value %g)", v.Rule.Name, v.Rule.Severity, v.Rule.Condition, v.Value)
}

// Validate checks that every rule condition parses and references a known
// field. Called once after config load so a typo fails fast instead of
// silently never firing.
func Validate(rules []config.CheckRule) error {
	for i, rule := range rules {
		field, op, _, err := splitCondition(rule.Condition)
		if err != nil {
			return fmt.Errorf("checks[%d] %q: %w", i, rule.Name, err)
		}
		if !knownField(field) {
			return fmt.Errorf("checks[%d] %q: unknown field %q", i, rule.Name, field)
		}
		if !knownOp(op) {
			return fmt.Errorf("checks[%d] %q: unknown operator %q", i, rule.Name, op)
		}
	}
	return nil
}

// Evaluate tests every rule against the summary and returns the violations
// in rule order. Rules whose field is not applicable to this design are
// skipped.
func Evaluate(rules []config.CheckRule, s *stats.Summary) []Violation {
	var out []Violation
	for _, rule := range rules {
		field, op, threshold, err := splitCondition(rule.Condition)
		if err != nil {
			continue // rejected by Validate; unreachable for validated config
		}
		value, ok := numericField(field, s)
		if !ok {
			continue
		}
		if compare(value, op, threshold) {
			out = append(out, Violation{Rule: rule, Value: value})
		}
	}
	return out
}

// HasCritical reports whether any violation has critical severity.
func HasCritical(violations []Violation) bool {
	for _, v := range violations {
		if v.Rule.Severity == "critical" {
			return true
		}
	}
	return false
}

// splitCondition parses "field op value".
func splitCondition(cond string) (field, op string, threshold float64, err error) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("condition %q is not \"field op value\"", cond)
	}
	threshold, err = strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("condition %q: bad threshold: %w", cond, err)
	}
	return parts[0], parts[1], threshold, nil
}

// numericField maps a field name to its value in the summary. ok is false
// when the field does not apply to this design.
func numericField(field string, s *stats.Summary) (float64, bool) {
	switch field {
	case "setup_wns_ns":
		return timing.SecToNanosec(s.SetupWNS), true
	case "setup_tns_ns":
		return timing.SecToNanosec(s.SetupTNS), true
	case "hold_wns_ns":
		return timing.SecToNanosec(s.HoldWNS), true
	case "hold_tns_ns":
		return timing.SecToNanosec(s.HoldTNS), true
	case "critical_path_ns":
		if !s.HasCriticalPath {
			return 0, false
		}
		return timing.SecToNanosec(s.CriticalPath.Delay), true
	case "fmax_mhz":
		return s.FmaxMHz()
	case "geomean_period_ns":
		if !s.HasPeriodStats {
			return 0, false
		}
		return timing.SecToNanosec(s.GeomeanPeriod), true
	default:
		return 0, false
	}
}

func knownField(field string) bool {
	switch field {
	case "setup_wns_ns", "setup_tns_ns", "hold_wns_ns", "hold_tns_ns",
		"critical_path_ns", "fmax_mhz", "geomean_period_ns":
		return true
	}
	return false
}

func knownOp(op string) bool {
	switch op {
	case ">", ">=", "<", "<=", "==":
		return true
	}
	return false
}

// compare applies a comparison operator to two float64 values.
func compare(v float64, op string, threshold float64) bool {
	switch op {
	case ">":
		return v > threshold
	case ">=":
		return v >= threshold
	case "<":
		return v < threshold
	case "<=":
		return v <= threshold
	case "==":
		return v == threshold
	default:
		return false
	}
}
