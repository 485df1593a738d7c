package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slacklens/slacklens/internal/config"
)

const testDump = `
clocks:
  - {id: 0, name: clk}
nodes:
  - id: 0
    type: source
    setup_arrivals: [{launch: 0, capture: 0, ns: 1.0}]
    setup_requireds: [{launch: 0, capture: 0, ns: 10.0}]
  - id: 1
    type: sink
    output: true
    setup_slacks:
      - {launch: 0, capture: 0, ns: -0.5}
      - {launch: 0, capture: 0, ns: 2.0}
    hold_slacks:
      - {launch: 0, capture: 0, ns: 0.1}
paths:
  - {launch: 0, capture: 0, delay_ns: 10.0, slack_ns: -0.5}
pins:
  atoms:
    - {id: 0, setup_criticality: 0.3}
    - {id: 1, setup_criticality: 0.9}
  cluster:
    - {id: 0, atoms: [0, 1]}
`

func writeTestDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDump), 0o644))
	return path
}

func TestRunReport(t *testing.T) {
	var buf bytes.Buffer
	err := runReport(&buf, config.Defaults(), writeTestDump(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Final critical path: 10 ns, Fmax: 100 MHz")
	assert.Contains(t, out, "Setup Worst Negative Slack (sWNS): -0.5 ns")
	assert.Contains(t, out, "Hold Worst Negative Slack (hWNS): 0 ns")
	assert.Contains(t, out, "Cluster pin criticalities:")
	assert.Contains(t, out, "pin 0: 0.9000")
}

func TestRunReport_SkipSections(t *testing.T) {
	cfg := config.Defaults()
	cfg.Report.SkipHold = true
	cfg.Report.SkipPins = true

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, cfg, writeTestDump(t)))

	out := buf.String()
	assert.NotContains(t, out, "Hold Worst Negative Slack")
	assert.NotContains(t, out, "Cluster pin criticalities")
}

func TestRunReport_CriticalCheckFails(t *testing.T) {
	cfg := config.Defaults()
	cfg.Checks = []config.CheckRule{
		{Name: "no setup violations", Condition: "setup_wns_ns < 0", Severity: "critical"},
	}

	var buf bytes.Buffer
	err := runReport(&buf, cfg, writeTestDump(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "critical")
}

func TestRunReport_WarningCheckPasses(t *testing.T) {
	cfg := config.Defaults()
	cfg.Checks = []config.CheckRule{
		{Name: "no setup violations", Condition: "setup_wns_ns < 0", Severity: "warning"},
	}

	var buf bytes.Buffer
	assert.NoError(t, runReport(&buf, cfg, writeTestDump(t)))
}

func TestRunReport_MissingDump(t *testing.T) {
	var buf bytes.Buffer
	err := runReport(&buf, config.Defaults(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
