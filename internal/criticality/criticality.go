package criticality

import (
	"errors"
	"fmt"

	"github.com/slacklens/slacklens/internal/timing"
)

// RoundOffTolerance is the allowed floating-point drift outside [0, 1]
// before clamping. Larger deviations are a logic error, not numeric noise.
const RoundOffTolerance = 1e-4

// Precondition violations. Each indicates a caller or data-consistency bug
// and aborts the computation.
var (
	// ErrWrongTagKind reports a non-slack tag passed to Relaxed.
	ErrWrongTagKind = errors.New("criticality: tag is not a slack tag")

	// ErrMissingAggregate reports a domain pair with no precomputed
	// aggregate entry, meaning the design-wide pass did not run to completion.
	ErrMissingAggregate = errors.New("criticality: no aggregate for domain pair")

	// ErrNonPositiveRequired reports a maximum required time that is not
	// strictly positive after slack shifting.
	ErrNonPositiveRequired = errors.New("criticality: max required time not positive after shift")

	// ErrOutOfBounds reports a criticality outside [0, 1] by more than
	// RoundOffTolerance.
	ErrOutOfBounds = errors.New("criticality: value outside [0, 1] beyond tolerance")
)

// Relaxed returns the worst (maximum) relaxed per-constraint criticality
// over the given slack tags, in [0, 1]. An empty tag set is not critical
// and yields 0.
//
// maxReq and worstSlack are the design-wide per-pair aggregates from
// CollectDomainAggregates; every pair referenced by a tag must be present
// in both. The stored aggregates are never mutated: the violation shift is
// applied to per-call copies only.
func Relaxed(maxReq, worstSlack map[timing.DomainPair]float64, tags []timing.Tag) (float64, error) {
	maxCrit := 0.0
	for _, tag := range tags {
		if tag.Kind != timing.TagSlack {
			return 0, fmt.Errorf("%w: got %s", ErrWrongTagKind, tag.Kind)
		}

		pair := tag.Pair()
		req, ok := maxReq[pair]
		if !ok {
			return 0, fmt.Errorf("%w: (%d, %d) missing max required time", ErrMissingAggregate, pair.Launch, pair.Capture)
		}
		worst, ok := worstSlack[pair]
		if !ok {
			return 0, fmt.Errorf("%w: (%d, %d) missing worst slack", ErrMissingAggregate, pair.Launch, pair.Capture)
		}

		slack := tag.Time
		if worst < 0 {
			// The pair is violated somewhere in the design: shift both the
			// slack and the required time by the pair's own worst slack so
			// the ratio stays bounded. Shifting per pair (not globally) is
			// what keeps each domain's criticality scale independent.
			shift := -worst
			slack += shift
			req += shift
		}
		if req <= 0 {
			return 0, fmt.Errorf("%w: pair (%d, %d), max required %g", ErrNonPositiveRequired, pair.Launch, pair.Capture, req)
		}

		crit := 1 - slack/req
		if crit < -RoundOffTolerance || crit > 1+RoundOffTolerance {
			return 0, fmt.Errorf("%w: %g", ErrOutOfBounds, crit)
		}
		crit = clamp01(crit)

		if crit > maxCrit {
			maxCrit = crit
		}
	}
	return maxCrit, nil
}

// clamp01 restricts v to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
