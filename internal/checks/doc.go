// Package checks evaluates configured threshold rules against a collected
// stats.Summary, so CI and flow scripts can gate on timing QoR.
//
// A rule condition is "field op value", e.g. "setup_wns_ns < -0.1" or
// "fmax_mhz < 150". Supported fields: setup_wns_ns, setup_tns_ns,
// hold_wns_ns, hold_tns_ns, critical_path_ns, fmax_mhz,
// geomean_period_ns. Fields not applicable to the design (fmax on a
// multi-clock circuit, geomean on a single-clock one) never fire.
//
// Validate rejects malformed conditions up front; Evaluate returns the
// violations; HasCritical tells the CLI whether to exit non-zero.
package checks
