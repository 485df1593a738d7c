package stats

import "github.com/slacklens/slacklens/internal/timing"

// LongestDelayPath returns the path with the maximum delay among the
// per-domain-pair critical paths. ok is false when paths is empty.
//
// Exact delay ties keep the earliest-enumerated pair: the comparison is
// strictly-greater, so a later equal path never replaces the current best.
func LongestDelayPath(paths []timing.PathInfo) (best timing.PathInfo, ok bool) {
	for _, p := range paths {
		if !ok || p.Delay > best.Delay {
			best = p
			ok = true
		}
	}
	return best, ok
}

// LeastSlackPath returns the path with the minimum slack among the
// per-domain-pair critical paths. ok is false when paths is empty.
// Ties keep the earliest-enumerated pair, as in LongestDelayPath.
func LeastSlackPath(paths []timing.PathInfo) (best timing.PathInfo, ok bool) {
	for _, p := range paths {
		if !ok || p.Slack < best.Slack {
			best = p
			ok = true
		}
	}
	return best, ok
}
