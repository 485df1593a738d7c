package timing

// TagKind identifies what quantity a Tag carries.
type TagKind uint8

const (
	// TagArrival is a data arrival time.
	TagArrival TagKind = iota

	// TagRequired is a data required time.
	TagRequired

	// TagSlack is a slack (required minus arrival); negative means the
	// constraint is violated.
	TagSlack
)

// String returns the lowercase name used in dumps and logs.
func (k TagKind) String() string {
	switch k {
	case TagArrival:
		return "arrival"
	case TagRequired:
		return "required"
	default:
		return "slack"
	}
}

// Tag is one analyzer-produced record attached to a graph node: a signed
// time value (seconds) for one domain pair. A node may carry any number of
// tags of a given kind.
type Tag struct {
	Kind    TagKind
	Launch  DomainID
	Capture DomainID
	Time    float64 // seconds
}

// Pair returns the tag's (launch, capture) domain pair.
func (t Tag) Pair() DomainPair { return DomainPair{Launch: t.Launch, Capture: t.Capture} }
