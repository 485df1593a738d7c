package stats

import "github.com/slacklens/slacklens/internal/timing"

// ClockFanouts counts, per launch clock domain, the timing tags seen on
// source and sink nodes. Both arrival and required tags count, so a node
// carrying both kinds for a domain contributes two to that domain's total.
//
// This is an approximation of signal fanout used only to weight period
// statistics, not an exact net-fanout count. The double counting is part
// of the contract; fanout-weighted geomeans depend on it.
func ClockFanouts(g timing.Graph, az timing.SetupAnalyzer) map[timing.DomainID]int {
	fanouts := make(map[timing.DomainID]int)
	for _, node := range g.Nodes() {
		t := g.NodeType(node)
		if t != timing.NodeSource && t != timing.NodeSink {
			continue
		}
		for _, tag := range az.SetupTags(node, timing.TagArrival) {
			fanouts[tag.Launch]++
		}
		for _, tag := range az.SetupTags(node, timing.TagRequired) {
			fanouts[tag.Launch]++
		}
	}
	return fanouts
}
