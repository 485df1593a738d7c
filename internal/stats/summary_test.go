package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacklens/slacklens/internal/timing"
)

// multiClockDesign builds a two-clock design plus a virtual I/O constraint.
func multiClockDesign() (*fakeGraph, *fakeConstraints, *fakeAnalyzer) {
	g := &fakeGraph{
		nodes:   []timing.NodeID{0, 1},
		outputs: []timing.NodeID{0, 1},
		types: map[timing.NodeID]timing.NodeType{
			0: timing.NodeSource,
			1: timing.NodeSink,
		},
	}
	cons := &fakeConstraints{
		domains: []timing.DomainID{0, 1, 2},
		names:   map[timing.DomainID]string{0: "clk_a", 1: "clk_b", 2: "io"},
		virtual: map[timing.DomainID]bool{2: true},
	}
	az := &fakeAnalyzer{
		setupSlacks: map[timing.NodeID][]timing.Tag{
			0: {slackTag(0, 0, -3), slackTag(0, 0, -1)},
			1: {slackTag(1, 1, 0), slackTag(1, 1, 2), slackTag(0, 1, 4)},
		},
		holdSlacks: map[timing.NodeID][]timing.Tag{
			0: {slackTag(0, 0, 0.1)},
		},
		arrivals: map[timing.NodeID][]timing.Tag{
			0: {arrivalTag(0, 1)},
			1: {arrivalTag(1, 4)},
		},
		requireds: map[timing.NodeID][]timing.Tag{
			0: {requiredTag(0, 10)},
			1: {requiredTag(1, 5)},
		},
	}
	return g, cons, az
}

func multiClockPaths() []timing.PathInfo {
	return []timing.PathInfo{
		{Launch: 0, Capture: 0, Delay: 10e-9, Slack: 2e-9},
		{Launch: 1, Capture: 1, Delay: 5e-9, Slack: 1e-9},
		{Launch: 2, Capture: 2, Delay: 7e-9, Slack: 0.5e-9}, // virtual, excluded from geomeans
		{Launch: 0, Capture: 1, Delay: 6e-9, Slack: -0.2e-9},
	}
}

func TestCollect(t *testing.T) {
	g, cons, az := multiClockDesign()

	s, err := Collect(g, cons, az, az, multiClockPaths(), 4)
	require.NoError(t, err)

	assert.InDelta(t, -3e-9, s.SetupWNS, 1e-18)
	assert.InDelta(t, -4e-9, s.SetupTNS, 1e-18)
	assert.Equal(t, 0.0, s.HoldWNS)
	assert.Equal(t, 0.0, s.HoldTNS)

	// Least-slack path is the inter-domain one at -0.2 ns.
	require.True(t, s.HasCriticalPath)
	assert.Equal(t, timing.DomainID(0), s.CriticalPath.Launch)
	assert.Equal(t, timing.DomainID(1), s.CriticalPath.Capture)

	require.True(t, s.HasLongestPath)
	assert.Equal(t, 10e-9, s.LongestPath.Delay)

	// Fmax is only defined for single-constraint designs.
	_, ok := s.FmaxMHz()
	assert.False(t, ok)

	// Setup slacks {-3, -1, 0, 2, 4} ns into 4 bins: counts {1, 2, 1, 1}.
	require.Len(t, s.SetupHistogram, 4)
	counts := []int{
		s.SetupHistogram[0].Count, s.SetupHistogram[1].Count,
		s.SetupHistogram[2].Count, s.SetupHistogram[3].Count,
	}
	assert.Equal(t, []int{1, 2, 1, 1}, counts)

	// Each source/sink node has one arrival and one required tag.
	assert.Equal(t, map[timing.DomainID]int{0: 2, 1: 2}, s.Fanouts)

	// Geomeans over the two intra-domain non-virtual CPDs (10, 5 ns).
	require.True(t, s.HasPeriodStats)
	assert.InDelta(t, math.Sqrt(10e-9*5e-9), s.GeomeanPeriod, 1e-15)
	// Weighted by equal fanouts (2 and 2 of 4): values 5 and 2.5 ns.
	assert.InDelta(t, math.Sqrt(5e-9*2.5e-9), s.FanoutWeightedGeomeanPeriod, 1e-15)
}

func TestCollect_Deterministic(t *testing.T) {
	g, cons, az := multiClockDesign()

	a, err := Collect(g, cons, az, az, multiClockPaths(), 4)
	require.NoError(t, err)
	b, err := Collect(g, cons, az, az, multiClockPaths(), 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCollect_SingleConstraintFmax(t *testing.T) {
	g, cons, az := multiClockDesign()
	paths := []timing.PathInfo{{Launch: 0, Capture: 0, Delay: 10e-9, Slack: 2e-9}}

	s, err := Collect(g, cons, az, az, paths, 4)
	require.NoError(t, err)

	fmax, ok := s.FmaxMHz()
	require.True(t, ok)
	assert.InDelta(t, 100, fmax, 1e-9) // 10 ns period = 100 MHz
	assert.False(t, s.HasPeriodStats)  // single pair: no period stats
}

func TestCollect_MissingFanoutIsError(t *testing.T) {
	g, cons, az := multiClockDesign()
	az.arrivals = map[timing.NodeID][]timing.Tag{0: {arrivalTag(0, 1)}}
	az.requireds = nil // domain 1 ends up with no fanout count

	_, err := Collect(g, cons, az, az, multiClockPaths(), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fanout count")
}
