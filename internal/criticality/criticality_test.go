package criticality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacklens/slacklens/internal/timing"
)

var pairAA = timing.DomainPair{Launch: 0, Capture: 0}

func slackTag(ns float64) timing.Tag {
	return timing.Tag{Kind: timing.TagSlack, Launch: 0, Capture: 0, Time: ns * 1e-9}
}

func TestRelaxed_NoViolationInDomain(t *testing.T) {
	// max_req 10 ns, slack 2 ns, worst slack 2 ns (no violation):
	// no shift, criticality = 1 - 2/10 = 0.8.
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: 2e-9}

	crit, err := Relaxed(maxReq, worst, []timing.Tag{slackTag(2)})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, crit, 1e-12)
}

func TestRelaxed_ViolatedDomainShifts(t *testing.T) {
	// Same design but the pair's worst slack is -1 ns: shift = 1 ns,
	// shifted slack 3 ns, shifted max_req 11 ns, criticality = 1 - 3/11.
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: -1e-9}

	crit, err := Relaxed(maxReq, worst, []timing.Tag{slackTag(2)})
	require.NoError(t, err)
	assert.InDelta(t, 1-3.0/11.0, crit, 1e-12)
}

func TestRelaxed_ShiftDoesNotMutateAggregates(t *testing.T) {
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: -1e-9}

	_, err := Relaxed(maxReq, worst, []timing.Tag{slackTag(2)})
	require.NoError(t, err)
	assert.Equal(t, 10e-9, maxReq[pairAA])
	assert.Equal(t, -1e-9, worst[pairAA])
}

func TestRelaxed_WorstTagWins(t *testing.T) {
	// The tag at the pair's worst slack has criticality 1; the result is
	// the maximum over all tags.
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: -1e-9}

	crit, err := Relaxed(maxReq, worst, []timing.Tag{slackTag(2), slackTag(-1), slackTag(5)})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, crit, 1e-12)
}

func TestRelaxed_Deterministic(t *testing.T) {
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: -1e-9}
	tags := []timing.Tag{slackTag(2), slackTag(0.5)}

	a, err := Relaxed(maxReq, worst, tags)
	require.NoError(t, err)
	b, err := Relaxed(maxReq, worst, tags)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRelaxed_EmptyTagsNotCritical(t *testing.T) {
	crit, err := Relaxed(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, crit)
}

func TestRelaxed_Preconditions(t *testing.T) {
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: 0}

	tests := []struct {
		name    string
		maxReq  map[timing.DomainPair]float64
		worst   map[timing.DomainPair]float64
		tags    []timing.Tag
		wantErr error
	}{
		{
			name:    "non-slack tag",
			maxReq:  maxReq,
			worst:   worst,
			tags:    []timing.Tag{{Kind: timing.TagArrival, Time: 2e-9}},
			wantErr: ErrWrongTagKind,
		},
		{
			name:    "missing max required entry",
			maxReq:  map[timing.DomainPair]float64{},
			worst:   worst,
			tags:    []timing.Tag{slackTag(2)},
			wantErr: ErrMissingAggregate,
		},
		{
			name:    "missing worst slack entry",
			maxReq:  maxReq,
			worst:   map[timing.DomainPair]float64{},
			tags:    []timing.Tag{slackTag(2)},
			wantErr: ErrMissingAggregate,
		},
		{
			name:    "non-positive required time",
			maxReq:  map[timing.DomainPair]float64{pairAA: 0},
			worst:   worst,
			tags:    []timing.Tag{slackTag(0)},
			wantErr: ErrNonPositiveRequired,
		},
		{
			name:   "drift beyond tolerance",
			maxReq: maxReq,
			worst:  worst,
			// worst slack 0 means no shift; slack -5 ns gives 1.5.
			tags:    []timing.Tag{slackTag(-5)},
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "negative beyond tolerance",
			maxReq:  maxReq,
			worst:   worst,
			tags:    []timing.Tag{slackTag(15)},
			wantErr: ErrOutOfBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Relaxed(tt.maxReq, tt.worst, tt.tags)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRelaxed_ClampsRoundOff(t *testing.T) {
	// A slack marginally below the domain's worst is round-off, not a
	// logic error: it lands within tolerance and clamps to exactly 1.
	maxReq := map[timing.DomainPair]float64{pairAA: 10e-9}
	worst := map[timing.DomainPair]float64{pairAA: -1e-9}

	eps := 1e-5 * 10e-9 // drift of 1e-5 relative to max_req, inside 1e-4
	tags := []timing.Tag{{Kind: timing.TagSlack, Launch: 0, Capture: 0, Time: -1e-9 - eps}}

	crit, err := Relaxed(maxReq, worst, tags)
	require.NoError(t, err)
	assert.Equal(t, 1.0, crit)
}
