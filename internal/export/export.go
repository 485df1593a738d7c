package export

import (
	"fmt"
	"io"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/slacklens/slacklens/internal/stats"
	"github.com/slacklens/slacklens/internal/timing"
)

// MetricFamilies builds the gauge families for one analysis run.
// namespace prefixes every metric name (e.g. "slacklens").
func MetricFamilies(namespace string, cons timing.Constraints, s *stats.Summary) []*dto.MetricFamily {
	var fams []*dto.MetricFamily

	add := func(name, help string, value float64) {
		mf := gaugeFamily(namespace+"_"+name, help)
		addGauge(mf, value, nil)
		fams = append(fams, mf)
	}

	add("setup_wns_seconds", "Setup worst negative slack.", s.SetupWNS)
	add("setup_tns_seconds", "Setup total negative slack.", s.SetupTNS)
	add("hold_wns_seconds", "Hold worst negative slack.", s.HoldWNS)
	add("hold_tns_seconds", "Hold total negative slack.", s.HoldTNS)

	if s.HasCriticalPath {
		add("critical_path_delay_seconds", "Delay of the least-slack critical path.", s.CriticalPath.Delay)
	}
	if fmax, ok := s.FmaxMHz(); ok {
		add("fmax_hertz", "Maximum clock frequency (single-constraint designs only).", fmax*1e6)
	}
	if s.HasPeriodStats {
		add("geomean_intra_domain_period_seconds",
			"Geometric mean non-virtual intra-domain critical path delay.", s.GeomeanPeriod)
		add("fanout_weighted_geomean_intra_domain_period_seconds",
			"Fanout-weighted geometric mean non-virtual intra-domain critical path delay.", s.FanoutWeightedGeomeanPeriod)
	}

	if len(s.Paths) > 0 {
		delays := gaugeFamily(namespace+"_domain_pair_cpd_seconds",
			"Per-domain-pair critical path delay.")
		slacks := gaugeFamily(namespace+"_domain_pair_worst_slack_seconds",
			"Per-domain-pair worst setup slack.")
		for _, p := range s.Paths {
			labels := map[string]string{
				"launch":  cons.ClockDomainName(p.Launch),
				"capture": cons.ClockDomainName(p.Capture),
			}
			addGauge(delays, p.Delay, labels)
			addGauge(slacks, p.Slack, labels)
		}
		fams = append(fams, delays, slacks)
	}

	if len(s.Fanouts) > 0 {
		fanouts := gaugeFamily(namespace+"_clock_fanout",
			"Approximate per-launch-domain signal fanout (tag count).")
		for _, d := range cons.ClockDomains() {
			count, ok := s.Fanouts[d]
			if !ok {
				continue
			}
			addGauge(fanouts, float64(count), map[string]string{"clock": cons.ClockDomainName(d)})
		}
		fams = append(fams, fanouts)
	}

	return fams
}

// WriteText encodes the families in Prometheus text exposition format.
func WriteText(w io.Writer, fams []*dto.MetricFamily) error {
	for _, mf := range fams {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("export: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// gaugeFamily allocates an empty gauge family.
func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

// addGauge appends one gauge sample with the given labels, in sorted
// label order so the exposition is byte-stable across runs.
func addGauge(mf *dto.MetricFamily, value float64, labels map[string]string) {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(value)}}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.Label = append(m.Label, &dto.LabelPair{Name: proto.String(k), Value: proto.String(labels[k])})
	}
	mf.Metric = append(mf.Metric, m)
}
