// Package timing defines the in-memory model shared by every analysis
// package: clock domains and domain pairs, per-node timing tags, per-pair
// critical path summaries, and the read-only interfaces through which the
// upstream timing analyzer's results are consumed.
//
// Top-level types:
//   - DomainID, DomainPair: clock domain handles; DomainPair is an ordered
//     (launch, capture) value usable as a map key
//   - Tag: one analyzer-produced record with a kind (arrival|required|slack),
//     a domain pair, and a signed time in seconds (negative slack = violation)
//   - PathInfo: per-domain-pair critical path (delay + worst slack)
//   - Graph, Constraints, SetupAnalyzer, HoldAnalyzer: the analyzer-side
//     views, always passed explicitly (never ambient state) so repeated or
//     concurrent runs cannot interfere
//
// SecToNanosec and SecToMHz convert the canonical seconds representation
// for presentation.
package timing
