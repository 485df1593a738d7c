package stats

import "math"

// Geomean returns the geometric mean of vals, computed in log space to
// avoid overflow on long inputs. ok is false when vals is empty.
func Geomean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += math.Log(v)
	}
	return math.Exp(sum / float64(len(vals))), true
}
