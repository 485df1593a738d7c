// Package stats reduces an analyzed timing graph's tag collections into
// decision-ready figures.
//
// paths.go selects the longest-delay and least-slack critical paths from
// the per-domain-pair path table (first-encountered wins on exact ties).
//
// slack.go provides setup/hold worst and total negative slack (WNS/TNS),
// per-node exact-pair slack lookup, and per-pair design-wide worst slack.
// "Not found" / "no path" results are comma-ok, never sentinel numbers.
//
// fanout.go approximates per-launch-domain signal fanout from the tag
// counts on source and sink nodes.
//
// Collect (summary.go) runs every reduction once over a graph and returns
// a Summary, the single input consumed by the report, export and checks
// packages.
package stats
