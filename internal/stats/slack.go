package stats

import "github.com/slacklens/slacklens/internal/timing"

// tagSource yields one kind of slack tag for a node. It lets the setup and
// hold reductions share one loop body.
type tagSource func(timing.NodeID) []timing.Tag

// totalNegativeSlack sums every slack tag value below zero across the
// graph's output-class nodes. Non-negative tags contribute nothing, so the
// result is always <= 0.
func totalNegativeSlack(g timing.Graph, slacks tagSource) float64 {
	tns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			if tag.Time < 0 {
				tns += tag.Time
			}
		}
	}
	return tns
}

// worstNegativeSlack returns the most negative slack tag value across the
// graph's output-class nodes, starting from a zero baseline: a design with
// no violations reports exactly 0.
func worstNegativeSlack(g timing.Graph, slacks tagSource) float64 {
	wns := 0.0
	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			if tag.Time < wns {
				wns = tag.Time
			}
		}
	}
	return wns
}

// SetupTNS returns the setup total negative slack (seconds, <= 0).
func SetupTNS(g timing.Graph, az timing.SetupAnalyzer) float64 {
	return totalNegativeSlack(g, az.SetupSlacks)
}

// SetupWNS returns the setup worst negative slack (seconds, <= 0; exactly 0
// when no setup constraint is violated).
func SetupWNS(g timing.Graph, az timing.SetupAnalyzer) float64 {
	return worstNegativeSlack(g, az.SetupSlacks)
}

// HoldTNS returns the hold total negative slack (seconds, <= 0).
func HoldTNS(g timing.Graph, az timing.HoldAnalyzer) float64 {
	return totalNegativeSlack(g, az.HoldSlacks)
}

// HoldWNS returns the hold worst negative slack (seconds, <= 0; exactly 0
// when no hold constraint is violated).
func HoldWNS(g timing.Graph, az timing.HoldAnalyzer) float64 {
	return worstNegativeSlack(g, az.HoldSlacks)
}

// nodeSlack scans a node's slack tags for the exact domain pair. ok is
// false when the node has no tag for that pair, which is distinct from a
// zero slack.
func nodeSlack(tags []timing.Tag, pair timing.DomainPair) (float64, bool) {
	for _, tag := range tags {
		if tag.Pair() == pair {
			return tag.Time, true
		}
	}
	return 0, false
}

// NodeSetupSlack returns the node's setup slack for the exact
// (launch, capture) pair. ok is false when the node carries no such tag.
func NodeSetupSlack(az timing.SetupAnalyzer, node timing.NodeID, pair timing.DomainPair) (float64, bool) {
	return nodeSlack(az.SetupSlacks(node), pair)
}

// NodeHoldSlack returns the node's hold slack for the exact
// (launch, capture) pair. ok is false when the node carries no such tag.
func NodeHoldSlack(az timing.HoldAnalyzer, node timing.NodeID, pair timing.DomainPair) (float64, bool) {
	return nodeSlack(az.HoldSlacks(node), pair)
}

// worstSlackForPair returns the minimum slack over all output-class nodes
// for exactly the given pair. ok is false when no node carries a matching
// tag anywhere in the design ("no path", not a numeric extreme).
func worstSlackForPair(g timing.Graph, slacks tagSource, pair timing.DomainPair) (worst float64, ok bool) {
	for _, node := range g.LogicalOutputs() {
		for _, tag := range slacks(node) {
			if tag.Pair() != pair {
				continue
			}
			if !ok || tag.Time < worst {
				worst = tag.Time
				ok = true
			}
		}
	}
	return worst, ok
}

// WorstSetupSlack returns the design-wide minimum setup slack for the pair.
// ok is false when no path exists between the two domains.
func WorstSetupSlack(g timing.Graph, az timing.SetupAnalyzer, pair timing.DomainPair) (float64, bool) {
	return worstSlackForPair(g, az.SetupSlacks, pair)
}

// WorstHoldSlack returns the design-wide minimum hold slack for the pair.
// ok is false when no path exists between the two domains.
func WorstHoldSlack(g timing.Graph, az timing.HoldAnalyzer, pair timing.DomainPair) (float64, bool) {
	return worstSlackForPair(g, az.HoldSlacks, pair)
}
