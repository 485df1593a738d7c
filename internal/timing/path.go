package timing

// PathInfo summarizes the single worst timing path for one domain pair.
//
// Delay and Slack are independent extremal selections made by the upstream
// critical-path search: the maximum-delay path and the minimum-slack path
// for the pair need not be the same physical path.
type PathInfo struct {
	Launch  DomainID
	Capture DomainID
	Delay   float64 // seconds
	Slack   float64 // seconds; negative = violation
}

// Pair returns the path's (launch, capture) domain pair.
func (p PathInfo) Pair() DomainPair { return DomainPair{Launch: p.Launch, Capture: p.Capture} }
