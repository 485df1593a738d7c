package histogram

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoBucket reports a value that matched no bucket. Buckets cover the
// full [min, max] range of the input, so this can only mean a logic or
// data-consistency bug, never ordinary rounding.
var ErrNoBucket = errors.New("histogram: value outside every bucket")

// Bucket is one half-open slack range [Min, Max) and the number of values
// that fell into it. The final bucket of a histogram is closed at Max.
type Bucket struct {
	Min   float64
	Max   float64
	Count int
}

// Build distributes values into bins equal-width buckets.
//
// The bucket boundaries are min + i*width for width = (max-min)/bins, in
// ascending order, with the last bucket's Max forced to the exact input
// maximum so rounding drift cannot strand the largest value. Each value is
// counted in the first bucket whose Max is >= the value.
//
// An empty input yields an empty histogram. When every value is identical
// the buckets all degenerate to zero width and the first takes the full
// count.
func Build(values []float64, bins int) ([]Bucket, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram: bins must be >= 1, got %d", bins)
	}
	if len(values) == 0 {
		return nil, nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	buckets := make([]Bucket, bins)
	lo := min
	for i := range buckets {
		hi := lo + width
		buckets[i] = Bucket{Min: lo, Max: hi}
		lo = hi
	}
	// Force the last bucket to close exactly at the input maximum.
	buckets[bins-1].Max = max

	for _, v := range values {
		i := sort.Search(len(buckets), func(i int) bool { return buckets[i].Max >= v })
		if i == len(buckets) {
			return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrNoBucket, v, min, max)
		}
		buckets[i].Count++
	}
	return buckets, nil
}
