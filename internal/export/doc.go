// Package export renders a collected stats.Summary as Prometheus gauge
// families in text exposition format, so place-and-route flows can push
// per-iteration timing QoR into the same dashboards as the rest of the
// build infrastructure.
//
// MetricFamilies builds the dto.MetricFamily set; WriteText encodes it.
// Time-valued metrics are in seconds, frequency in hertz, per Prometheus
// base-unit conventions.
package export
