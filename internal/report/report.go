package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/slacklens/slacklens/internal/criticality"
	"github.com/slacklens/slacklens/internal/histogram"
	"github.com/slacklens/slacklens/internal/stats"
	"github.com/slacklens/slacklens/internal/timing"
)

const histogramBarWidth = 40

// WriteSetupSummary renders the setup timing summary: final critical path
// and Fmax (single-constraint designs only), sWNS/sTNS, the setup slack
// histogram, and for multi-clock designs the per-pair CPD and worst-slack
// tables plus the intra-domain period geomeans.
func WriteSetupSummary(w io.Writer, cons timing.Constraints, s *stats.Summary) {
	if s.HasCriticalPath {
		fmt.Fprintf(w, "Final critical path: %g ns", timing.SecToNanosec(s.CriticalPath.Delay))
		if fmax, ok := s.FmaxMHz(); ok {
			// Fmax is only meaningful for a single-clock circuit.
			fmt.Fprintf(w, ", Fmax: %g MHz", fmax)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Setup Worst Negative Slack (sWNS): %g ns\n", timing.SecToNanosec(s.SetupWNS))
	fmt.Fprintf(w, "Setup Total Negative Slack (sTNS): %g ns\n", timing.SecToNanosec(s.SetupTNS))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Setup slack histogram:")
	writeHistogram(w, s.SetupHistogram)

	if len(s.Paths) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Intra-domain critical path delays (CPDs):")
		writeCPDs(w, cons, s.Paths, true)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Inter-domain critical path delays (CPDs):")
		writeCPDs(w, cons, s.Paths, false)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Intra-domain worst setup slacks per constraint:")
		writePathSlacks(w, cons, s.Paths, true)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Inter-domain worst setup slacks per constraint:")
		writePathSlacks(w, cons, s.Paths, false)
	}

	if s.HasPeriodStats {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Geometric mean non-virtual intra-domain period: %g ns (%g MHz)\n",
			timing.SecToNanosec(s.GeomeanPeriod), timing.SecToMHz(s.GeomeanPeriod))
		fmt.Fprintf(w, "Fanout-weighted geomean non-virtual intra-domain period: %g ns (%g MHz)\n",
			timing.SecToNanosec(s.FanoutWeightedGeomeanPeriod), timing.SecToMHz(s.FanoutWeightedGeomeanPeriod))
	}
	fmt.Fprintln(w)
}

// WriteHoldSummary renders the hold timing summary: hWNS/hTNS, the hold
// slack histogram, and for multi-clock designs the per-pair worst hold
// slack tables. Pairs with no path are omitted.
func WriteHoldSummary(w io.Writer, g timing.Graph, cons timing.Constraints, hold timing.HoldAnalyzer, s *stats.Summary) {
	fmt.Fprintf(w, "Hold Worst Negative Slack (hWNS): %g ns\n", timing.SecToNanosec(s.HoldWNS))
	fmt.Fprintf(w, "Hold Total Negative Slack (hTNS): %g ns\n", timing.SecToNanosec(s.HoldTNS))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Hold slack histogram:")
	writeHistogram(w, s.HoldHistogram)

	domains := cons.ClockDomains()
	if len(domains) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Intra-domain worst hold slacks per constraint:")
		for _, d := range domains {
			pair := timing.DomainPair{Launch: d, Capture: d}
			worst, ok := stats.WorstHoldSlack(g, hold, pair)
			if !ok {
				continue // no path
			}
			fmt.Fprintf(w, "  %s to %s worst hold slack: %g ns\n",
				cons.ClockDomainName(d), cons.ClockDomainName(d), timing.SecToNanosec(worst))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Inter-domain worst hold slacks per constraint:")
		for _, launch := range domains {
			for _, capture := range domains {
				if launch == capture {
					continue
				}
				pair := timing.DomainPair{Launch: launch, Capture: capture}
				worst, ok := stats.WorstHoldSlack(g, hold, pair)
				if !ok {
					continue // no path
				}
				fmt.Fprintf(w, "  %s to %s worst hold slack: %g ns\n",
					cons.ClockDomainName(launch), cons.ClockDomainName(capture), timing.SecToNanosec(worst))
			}
		}
	}
	fmt.Fprintln(w)
}

// WriteClusterPinCriticalities renders the per-cluster-pin criticality
// table, most critical first.
func WriteClusterPinCriticalities(w io.Writer, netlist criticality.NetlistMap, crits criticality.PinCriticalities, pins []criticality.ClusterPinID) {
	if len(pins) == 0 {
		return
	}

	type pinCrit struct {
		pin  criticality.ClusterPinID
		crit float64
	}
	rows := make([]pinCrit, 0, len(pins))
	for _, pin := range pins {
		rows = append(rows, pinCrit{pin, criticality.ClusterPinCriticality(netlist, crits, pin)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].crit != rows[j].crit {
			return rows[i].crit > rows[j].crit
		}
		return rows[i].pin < rows[j].pin
	})

	fmt.Fprintln(w, "Cluster pin criticalities:")
	for _, r := range rows {
		fmt.Fprintf(w, "  pin %d: %.4f\n", r.pin, r.crit)
	}
	fmt.Fprintln(w)
}

// writeCPDs prints the per-pair critical path delay lines, filtered to
// intra- or inter-domain pairs.
func writeCPDs(w io.Writer, cons timing.Constraints, paths []timing.PathInfo, intra bool) {
	for _, p := range paths {
		if p.Pair().Intra() != intra {
			continue
		}
		fmt.Fprintf(w, "  %s to %s CPD: %g ns (%g MHz)\n",
			cons.ClockDomainName(p.Launch), cons.ClockDomainName(p.Capture),
			timing.SecToNanosec(p.Delay), timing.SecToMHz(p.Delay))
	}
}

// writePathSlacks prints the per-pair worst setup slack lines, filtered to
// intra- or inter-domain pairs.
func writePathSlacks(w io.Writer, cons timing.Constraints, paths []timing.PathInfo, intra bool) {
	for _, p := range paths {
		if p.Pair().Intra() != intra {
			continue
		}
		fmt.Fprintf(w, "  %s to %s worst setup slack: %g ns\n",
			cons.ClockDomainName(p.Launch), cons.ClockDomainName(p.Capture),
			timing.SecToNanosec(p.Slack))
	}
}

// writeHistogram prints one line per bucket with a bar proportional to the
// largest count.
func writeHistogram(w io.Writer, buckets []histogram.Bucket) {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "  (no slack tags)")
		return
	}

	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	for _, b := range buckets {
		bar := 0
		if maxCount > 0 {
			bar = b.Count * histogramBarWidth / maxCount
		}
		fmt.Fprintf(w, "  [%11.4g ns, %11.4g ns) %6d %s\n",
			timing.SecToNanosec(b.Min), timing.SecToNanosec(b.Max), b.Count,
			strings.Repeat("*", bar))
	}
}
