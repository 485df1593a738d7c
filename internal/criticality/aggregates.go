package criticality

import "github.com/slacklens/slacklens/internal/timing"

// DomainAggregates holds the design-wide per-pair normalization inputs for
// relaxed criticality: the maximum required time and the worst (minimum)
// slack seen anywhere for each domain pair.
type DomainAggregates struct {
	MaxRequired map[timing.DomainPair]float64
	WorstSlack  map[timing.DomainPair]float64
}

// CollectDomainAggregates runs the prerequisite pass over the whole design.
// It must complete before Relaxed is called for any node: a pair that shows
// up in a slack tag without an entry here is a fatal precondition at
// criticality time.
func CollectDomainAggregates(g timing.Graph, az timing.SetupAnalyzer) DomainAggregates {
	agg := DomainAggregates{
		MaxRequired: make(map[timing.DomainPair]float64),
		WorstSlack:  make(map[timing.DomainPair]float64),
	}
	for _, node := range g.LogicalOutputs() {
		for _, tag := range az.SetupTags(node, timing.TagRequired) {
			pair := tag.Pair()
			if cur, ok := agg.MaxRequired[pair]; !ok || tag.Time > cur {
				agg.MaxRequired[pair] = tag.Time
			}
		}
		for _, tag := range az.SetupSlacks(node) {
			pair := tag.Pair()
			if cur, ok := agg.WorstSlack[pair]; !ok || tag.Time < cur {
				agg.WorstSlack[pair] = tag.Time
			}
		}
	}
	return agg
}
