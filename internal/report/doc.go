// Package report renders human-readable timing summaries from a collected
// stats.Summary. It is presentation only: every figure it prints is
// computed by the stats, histogram and criticality packages, and pairs
// with no path are skipped rather than printed as numeric extremes.
package report
