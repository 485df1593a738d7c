package stats

import "github.com/slacklens/slacklens/internal/timing"

// fakeGraph is a minimal timing.Graph for reduction tests.
type fakeGraph struct {
	nodes   []timing.NodeID
	outputs []timing.NodeID
	types   map[timing.NodeID]timing.NodeType
}

func (g *fakeGraph) Nodes() []timing.NodeID          { return g.nodes }
func (g *fakeGraph) LogicalOutputs() []timing.NodeID { return g.outputs }
func (g *fakeGraph) NodeType(n timing.NodeID) timing.NodeType {
	if t, ok := g.types[n]; ok {
		return t
	}
	return timing.NodeInternal
}

// fakeAnalyzer implements timing.SetupAnalyzer and timing.HoldAnalyzer
// from literal per-node tag maps.
type fakeAnalyzer struct {
	setupSlacks map[timing.NodeID][]timing.Tag
	holdSlacks  map[timing.NodeID][]timing.Tag
	arrivals    map[timing.NodeID][]timing.Tag
	requireds   map[timing.NodeID][]timing.Tag
}

func (a *fakeAnalyzer) SetupSlacks(n timing.NodeID) []timing.Tag { return a.setupSlacks[n] }
func (a *fakeAnalyzer) HoldSlacks(n timing.NodeID) []timing.Tag  { return a.holdSlacks[n] }
func (a *fakeAnalyzer) SetupTags(n timing.NodeID, kind timing.TagKind) []timing.Tag {
	switch kind {
	case timing.TagArrival:
		return a.arrivals[n]
	case timing.TagRequired:
		return a.requireds[n]
	default:
		return a.setupSlacks[n]
	}
}

// fakeConstraints implements timing.Constraints from literal maps.
type fakeConstraints struct {
	domains []timing.DomainID
	names   map[timing.DomainID]string
	virtual map[timing.DomainID]bool
}

func (c *fakeConstraints) ClockDomains() []timing.DomainID          { return c.domains }
func (c *fakeConstraints) ClockDomainName(d timing.DomainID) string { return c.names[d] }
func (c *fakeConstraints) IsVirtualClock(d timing.DomainID) bool    { return c.virtual[d] }

// slackTag builds a setup/hold slack tag; ns is in nanoseconds.
func slackTag(launch, capture timing.DomainID, ns float64) timing.Tag {
	return timing.Tag{Kind: timing.TagSlack, Launch: launch, Capture: capture, Time: ns * 1e-9}
}

func arrivalTag(launch timing.DomainID, ns float64) timing.Tag {
	return timing.Tag{Kind: timing.TagArrival, Launch: launch, Capture: launch, Time: ns * 1e-9}
}

func requiredTag(launch timing.DomainID, ns float64) timing.Tag {
	return timing.Tag{Kind: timing.TagRequired, Launch: launch, Capture: launch, Time: ns * 1e-9}
}
