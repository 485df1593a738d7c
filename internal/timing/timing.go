package timing

// NodeID identifies one node of the analyzer's timing graph.
type NodeID int32

// DomainID identifies one clock domain in the analyzer's constraints.
type DomainID int32

// DomainPair is an ordered (launch, capture) clock domain combination.
// It is a plain value type so it compares by value and can key maps.
type DomainPair struct {
	Launch  DomainID
	Capture DomainID
}

// Intra reports whether the pair launches and captures on the same domain.
func (p DomainPair) Intra() bool { return p.Launch == p.Capture }

// NodeType classifies a timing graph node.
type NodeType uint8

const (
	// NodeSource is a point where a timing path begins (e.g. FF output,
	// primary input).
	NodeSource NodeType = iota

	// NodeSink is a point where a timing path ends (e.g. FF input,
	// primary output).
	NodeSink

	// NodeInternal is any node that is neither a path start nor end.
	NodeInternal
)

// String returns the lowercase name used in dumps and logs.
func (t NodeType) String() string {
	switch t {
	case NodeSource:
		return "source"
	case NodeSink:
		return "sink"
	default:
		return "internal"
	}
}

// SecToNanosec converts a time value in seconds to nanoseconds.
func SecToNanosec(seconds float64) float64 { return 1e9 * seconds }

// SecToMHz converts a period in seconds to a frequency in MHz.
func SecToMHz(seconds float64) float64 { return (1 / seconds) / 1e6 }
