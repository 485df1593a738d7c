package stats

import (
	"fmt"

	"github.com/slacklens/slacklens/internal/histogram"
	"github.com/slacklens/slacklens/internal/timing"
)

// Summary carries every decision-ready figure derived from one analysis
// run. It is a read-only value: the next run collects a fresh one and the
// old one is discarded.
type Summary struct {
	// Worst / total negative slack, setup and hold (seconds, <= 0).
	SetupWNS float64
	SetupTNS float64
	HoldWNS  float64
	HoldTNS  float64

	// Paths is the per-domain-pair critical path table, in the analyzer's
	// enumeration order.
	Paths []timing.PathInfo

	// CriticalPath is the least-slack path over all pairs; HasCriticalPath
	// is false when the design has no constrained paths at all.
	CriticalPath    timing.PathInfo
	HasCriticalPath bool

	// LongestPath is the maximum-delay path over all pairs.
	LongestPath    timing.PathInfo
	HasLongestPath bool

	// Slack distribution histograms; empty when no tags of the kind exist.
	SetupHistogram []histogram.Bucket
	HoldHistogram  []histogram.Bucket

	// Fanouts is the per-launch-domain approximate fanout count.
	Fanouts map[timing.DomainID]int

	// Geometric-mean period statistics over intra-domain, non-virtual
	// pairs. Computed only for multi-clock designs (more than one domain
	// pair); HasPeriodStats is false otherwise.
	GeomeanPeriod               float64
	FanoutWeightedGeomeanPeriod float64
	HasPeriodStats              bool
}

// FmaxMHz returns the maximum clock frequency implied by the critical
// path. It is only meaningful for a single-constraint design; ok is false
// otherwise.
func (s *Summary) FmaxMHz() (float64, bool) {
	if !s.HasCriticalPath || len(s.Paths) != 1 {
		return 0, false
	}
	return timing.SecToMHz(s.CriticalPath.Delay), true
}

// Collect runs every reduction once over the analyzed design and returns
// the resulting Summary.
//
// paths is the upstream critical-path table (one entry per domain pair);
// bins is the histogram bucket count (>= 1). Collect is pure and
// deterministic: reductions run in the graph's enumeration order, and
// exact ties in path selection keep the first-enumerated pair.
func Collect(g timing.Graph, cons timing.Constraints, setup timing.SetupAnalyzer, hold timing.HoldAnalyzer, paths []timing.PathInfo, bins int) (*Summary, error) {
	s := &Summary{
		SetupWNS: SetupWNS(g, setup),
		SetupTNS: SetupTNS(g, setup),
		HoldWNS:  HoldWNS(g, hold),
		HoldTNS:  HoldTNS(g, hold),
		Paths:    paths,
		Fanouts:  ClockFanouts(g, setup),
	}

	s.CriticalPath, s.HasCriticalPath = LeastSlackPath(paths)
	s.LongestPath, s.HasLongestPath = LongestDelayPath(paths)

	var err error
	s.SetupHistogram, err = histogram.Build(collectSlacks(g, setup.SetupSlacks), bins)
	if err != nil {
		return nil, fmt.Errorf("stats: setup histogram: %w", err)
	}
	s.HoldHistogram, err = histogram.Build(collectSlacks(g, hold.HoldSlacks), bins)
	if err != nil {
		return nil, fmt.Errorf("stats: hold histogram: %w", err)
	}

	if err := s.collectPeriodStats(cons); err != nil {
		return nil, err
	}
	return s, nil
}

// collectSlacks flattens one kind of slack tag over the output-class nodes.
func collectSlacks(g timing.Graph, slacks tagSource) []float64 {
	var vals []float64
	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			vals = append(vals, tag.Time)
		}
	}
	return vals
}

// collectPeriodStats fills the geomean period figures for multi-clock
// designs. Intra-domain, non-virtual pairs only; a pair whose launch
// domain has no fanout count is a data-consistency bug in the upstream
// analyzer and aborts the collection.
func (s *Summary) collectPeriodStats(cons timing.Constraints) error {
	if len(s.Paths) <= 1 {
		return nil
	}

	var cpds []float64
	var weighted []float64
	totalFanout := 0.0
	for _, p := range s.Paths {
		if !p.Pair().Intra() || cons.IsVirtualClock(p.Launch) {
			continue
		}
		cpds = append(cpds, p.Delay)

		fanout, ok := s.Fanouts[p.Launch]
		if !ok {
			return fmt.Errorf("stats: no fanout count for clock domain %q", cons.ClockDomainName(p.Launch))
		}
		weighted = append(weighted, p.Delay*float64(fanout))
		totalFanout += float64(fanout)
	}
	if len(cpds) == 0 {
		return nil
	}

	// Normalize the weighted delays by the total fanout before averaging.
	for i := range weighted {
		weighted[i] /= totalFanout
	}

	s.GeomeanPeriod, _ = Geomean(cpds)
	s.FanoutWeightedGeomeanPeriod, _ = Geomean(weighted)
	s.HasPeriodStats = true
	return nil
}
