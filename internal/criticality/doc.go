// Package criticality converts slack tags into bounded [0, 1] criticality
// scores that drive placement and routing cost functions.
//
// Relaxed implements relaxed per-constraint criticality as defined in
//
//	M. Wainberg and V. Betz, "Robust Optimization of Multiple Timing
//	Constraints," IEEE TCAD, vol. 34, no. 12, pp. 1942-1953, Dec. 2015.
//
// computed as a post-processing step: each tag is normalized by its own
// domain pair's design-wide maximum required time, shifted by that pair's
// own worst slack when the pair is in violation. Normalizing per pair
// keeps each clock domain's criticality scale independent, so one badly
// violated domain does not wash out the ordering within a clean one.
//
// CollectDomainAggregates runs the prerequisite design-wide pass that
// produces the per-pair maximum required time and worst slack maps; it
// must complete before any Relaxed call.
//
// ClusterPinCriticality reduces the atom pins behind a clustered-netlist
// pin to a single score (maximum over the set, 0 when empty).
package criticality
