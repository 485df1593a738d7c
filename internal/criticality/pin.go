package criticality

// AtomPinID identifies one pin of the fine-grained (atom) netlist.
type AtomPinID int32

// ClusterPinID identifies one pin of the coarse-grained (clustered)
// netlist.
type ClusterPinID int32

// NetlistMap resolves a clustered-netlist pin to the atom pins it
// represents. A cluster pin may map to zero, one or many atom pins; zero
// is valid (an unused cluster pin).
type NetlistMap interface {
	AtomPins(ClusterPinID) []AtomPinID
}

// PinCriticalities exposes the analyzer's already-computed per-atom-pin
// setup criticality.
type PinCriticalities interface {
	SetupPinCriticality(AtomPinID) float64
}

// ClusterPinCriticality returns the criticality of a clustered-netlist
// pin: the maximum over its constituent atom pins, 0 when the pin maps to
// no atom pins. A cluster pin is as critical as its most critical
// constituent.
func ClusterPinCriticality(netlist NetlistMap, crits PinCriticalities, pin ClusterPinID) float64 {
	crit := 0.0
	for _, atom := range netlist.AtomPins(pin) {
		if c := crits.SetupPinCriticality(atom); c > crit {
			crit = c
		}
	}
	return crit
}
