package timing

// Graph is the read-only view of the analyzer's timing graph.
//
// Enumeration order is fixed for the life of a run; the reductions in the
// stats package break exact ties by first-encountered, so the order is
// semantically significant.
type Graph interface {
	// Nodes enumerates every node in the graph.
	Nodes() []NodeID

	// LogicalOutputs enumerates the output-class nodes (path endpoints)
	// over which slack statistics are aggregated.
	LogicalOutputs() []NodeID

	// NodeType classifies a node.
	NodeType(NodeID) NodeType
}

// Constraints is the read-only view of the analyzer's clock constraints.
type Constraints interface {
	// ClockDomains enumerates every constrained clock domain.
	ClockDomains() []DomainID

	// ClockDomainName returns the domain's display name.
	ClockDomainName(DomainID) string

	// IsVirtualClock reports whether the domain represents an I/O
	// constraint with no physical clock pin. Virtual domains are excluded
	// from aggregate period statistics.
	IsVirtualClock(DomainID) bool
}

// SetupAnalyzer exposes a node's setup-analysis tags.
type SetupAnalyzer interface {
	// SetupSlacks returns the node's setup slack tags.
	SetupSlacks(NodeID) []Tag

	// SetupTags returns the node's setup tags of the given kind.
	SetupTags(NodeID, TagKind) []Tag
}

// HoldAnalyzer exposes a node's hold-analysis tags.
type HoldAnalyzer interface {
	// HoldSlacks returns the node's hold slack tags.
	HoldSlacks(NodeID) []Tag
}
