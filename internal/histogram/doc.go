// Package histogram buckets slack values into a fixed number of
// equal-width ranges for distribution reporting.
//
// Build produces ascending, non-overlapping [min, max) buckets covering
// [global_min, global_max], with the last bucket's max forced to the exact
// global maximum to absorb floating-point rounding. Bucket counts always
// sum to the number of input values.
package histogram
