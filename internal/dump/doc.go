// Package dump loads a YAML timing analysis dump, the file the upstream
// timing analyzer writes after each propagation run, and exposes it
// through the read-only views in internal/timing.
//
// The file carries clocks (id, name, virtual flag), nodes (type, output
// flag, per-kind tag lists), the per-domain-pair critical path table, and
// optionally the clustered-netlist pin mapping with per-atom-pin setup
// criticalities. All times in the file are nanoseconds; the in-memory
// model is seconds.
//
// Load(path) reads and validates the file and returns an *Analysis, which
// implements timing.Graph, timing.Constraints, timing.SetupAnalyzer,
// timing.HoldAnalyzer, criticality.NetlistMap and
// criticality.PinCriticalities. Enumeration order follows file order, so
// first-wins tie-breaks are reproducible across runs on the same dump.
package dump
