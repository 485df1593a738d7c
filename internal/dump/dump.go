package dump

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slacklens/slacklens/internal/criticality"
	"github.com/slacklens/slacklens/internal/timing"
)

const nsToSec = 1e-9

// Analysis is one loaded timing analysis run. It is immutable after Load
// and must outlive every reduction made over it; the next analyzer run
// produces a new dump and a new Analysis.
type Analysis struct {
	domains []timing.DomainID
	names   map[timing.DomainID]string
	virtual map[timing.DomainID]bool

	nodes     []timing.NodeID
	outputs   []timing.NodeID
	nodeTypes map[timing.NodeID]timing.NodeType

	setupSlacks    map[timing.NodeID][]timing.Tag
	holdSlacks     map[timing.NodeID][]timing.Tag
	setupArrivals  map[timing.NodeID][]timing.Tag
	setupRequireds map[timing.NodeID][]timing.Tag

	paths []timing.PathInfo

	clusterPins map[criticality.ClusterPinID][]criticality.AtomPinID
	atomCrits   map[criticality.AtomPinID]float64
}

// Load reads, parses and validates the YAML analysis dump at path.
func Load(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dump: read file: %w", err)
	}

	var f dumpFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("dump: parse yaml: %w", err)
	}

	a, err := build(&f)
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	return a, nil
}

// build converts the file representation into the in-memory model,
// rejecting dangling clock references and malformed entries up front so
// the reductions never see inconsistent data.
func build(f *dumpFile) (*Analysis, error) {
	a := &Analysis{
		names:          make(map[timing.DomainID]string),
		virtual:        make(map[timing.DomainID]bool),
		nodeTypes:      make(map[timing.NodeID]timing.NodeType),
		setupSlacks:    make(map[timing.NodeID][]timing.Tag),
		holdSlacks:     make(map[timing.NodeID][]timing.Tag),
		setupArrivals:  make(map[timing.NodeID][]timing.Tag),
		setupRequireds: make(map[timing.NodeID][]timing.Tag),
		clusterPins:    make(map[criticality.ClusterPinID][]criticality.AtomPinID),
		atomCrits:      make(map[criticality.AtomPinID]float64),
	}

	for i, c := range f.Clocks {
		id := timing.DomainID(c.ID)
		if _, dup := a.names[id]; dup {
			return nil, fmt.Errorf("clocks[%d]: duplicate clock id %d", i, c.ID)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("clocks[%d]: name is required", i)
		}
		a.domains = append(a.domains, id)
		a.names[id] = c.Name
		a.virtual[id] = c.Virtual
	}

	for i, n := range f.Nodes {
		id := timing.NodeID(n.ID)
		if _, dup := a.nodeTypes[id]; dup {
			return nil, fmt.Errorf("nodes[%d]: duplicate node id %d", i, n.ID)
		}

		var nt timing.NodeType
		switch n.Type {
		case "source":
			nt = timing.NodeSource
		case "sink":
			nt = timing.NodeSink
		case "internal", "":
			nt = timing.NodeInternal
		default:
			return nil, fmt.Errorf("nodes[%d]: unknown type %q", i, n.Type)
		}
		a.nodes = append(a.nodes, id)
		a.nodeTypes[id] = nt
		if n.Output {
			a.outputs = append(a.outputs, id)
		}

		var err error
		if a.setupSlacks[id], err = a.tags(n.SetupSlacks, timing.TagSlack); err != nil {
			return nil, fmt.Errorf("nodes[%d] setup_slacks: %w", i, err)
		}
		if a.holdSlacks[id], err = a.tags(n.HoldSlacks, timing.TagSlack); err != nil {
			return nil, fmt.Errorf("nodes[%d] hold_slacks: %w", i, err)
		}
		if a.setupArrivals[id], err = a.tags(n.SetupArrivals, timing.TagArrival); err != nil {
			return nil, fmt.Errorf("nodes[%d] setup_arrivals: %w", i, err)
		}
		if a.setupRequireds[id], err = a.tags(n.SetupRequireds, timing.TagRequired); err != nil {
			return nil, fmt.Errorf("nodes[%d] setup_requireds: %w", i, err)
		}
	}

	for i, p := range f.Paths {
		launch, capture := timing.DomainID(p.Launch), timing.DomainID(p.Capture)
		if _, ok := a.names[launch]; !ok {
			return nil, fmt.Errorf("paths[%d]: unknown launch clock %d", i, p.Launch)
		}
		if _, ok := a.names[capture]; !ok {
			return nil, fmt.Errorf("paths[%d]: unknown capture clock %d", i, p.Capture)
		}
		a.paths = append(a.paths, timing.PathInfo{
			Launch:  launch,
			Capture: capture,
			Delay:   p.DelayNS * nsToSec,
			Slack:   p.SlackNS * nsToSec,
		})
	}

	for i, p := range f.Pins.Atoms {
		if p.SetupCriticality < 0 || p.SetupCriticality > 1 {
			return nil, fmt.Errorf("pins.atoms[%d]: criticality %g outside [0, 1]", i, p.SetupCriticality)
		}
		a.atomCrits[criticality.AtomPinID(p.ID)] = p.SetupCriticality
	}
	for i, p := range f.Pins.Cluster {
		id := criticality.ClusterPinID(p.ID)
		// A pin with no atom pins is valid (criticality 0) and must still
		// appear in the pin enumeration.
		atoms := make([]criticality.AtomPinID, 0, len(p.Atoms))
		for _, atom := range p.Atoms {
			if _, ok := a.atomCrits[criticality.AtomPinID(atom)]; !ok {
				return nil, fmt.Errorf("pins.cluster[%d]: unknown atom pin %d", i, atom)
			}
			atoms = append(atoms, criticality.AtomPinID(atom))
		}
		a.clusterPins[id] = atoms
	}

	return a, nil
}

// tags converts one tag list, checking clock references.
func (a *Analysis) tags(entries []tagEntry, kind timing.TagKind) ([]timing.Tag, error) {
	var out []timing.Tag
	for i, e := range entries {
		launch, capture := timing.DomainID(e.Launch), timing.DomainID(e.Capture)
		if _, ok := a.names[launch]; !ok {
			return nil, fmt.Errorf("tag[%d]: unknown launch clock %d", i, e.Launch)
		}
		if _, ok := a.names[capture]; !ok {
			return nil, fmt.Errorf("tag[%d]: unknown capture clock %d", i, e.Capture)
		}
		out = append(out, timing.Tag{
			Kind:    kind,
			Launch:  launch,
			Capture: capture,
			Time:    e.NS * nsToSec,
		})
	}
	return out, nil
}

// Paths returns the per-domain-pair critical path table in file order.
func (a *Analysis) Paths() []timing.PathInfo { return a.paths }

// Nodes implements timing.Graph.
func (a *Analysis) Nodes() []timing.NodeID { return a.nodes }

// LogicalOutputs implements timing.Graph.
func (a *Analysis) LogicalOutputs() []timing.NodeID { return a.outputs }

// NodeType implements timing.Graph.
func (a *Analysis) NodeType(n timing.NodeID) timing.NodeType { return a.nodeTypes[n] }

// ClockDomains implements timing.Constraints.
func (a *Analysis) ClockDomains() []timing.DomainID { return a.domains }

// ClockDomainName implements timing.Constraints.
func (a *Analysis) ClockDomainName(d timing.DomainID) string { return a.names[d] }

// IsVirtualClock implements timing.Constraints.
func (a *Analysis) IsVirtualClock(d timing.DomainID) bool { return a.virtual[d] }

// SetupSlacks implements timing.SetupAnalyzer.
func (a *Analysis) SetupSlacks(n timing.NodeID) []timing.Tag { return a.setupSlacks[n] }

// SetupTags implements timing.SetupAnalyzer.
func (a *Analysis) SetupTags(n timing.NodeID, kind timing.TagKind) []timing.Tag {
	switch kind {
	case timing.TagArrival:
		return a.setupArrivals[n]
	case timing.TagRequired:
		return a.setupRequireds[n]
	default:
		return a.setupSlacks[n]
	}
}

// HoldSlacks implements timing.HoldAnalyzer.
func (a *Analysis) HoldSlacks(n timing.NodeID) []timing.Tag { return a.holdSlacks[n] }

// AtomPins implements criticality.NetlistMap.
func (a *Analysis) AtomPins(pin criticality.ClusterPinID) []criticality.AtomPinID {
	return a.clusterPins[pin]
}

// SetupPinCriticality implements criticality.PinCriticalities.
func (a *Analysis) SetupPinCriticality(pin criticality.AtomPinID) float64 {
	return a.atomCrits[pin]
}

// ClusterPins enumerates the cluster pins present in the dump. Order is
// unspecified; callers that print should sort.
func (a *Analysis) ClusterPins() []criticality.ClusterPinID {
	out := make([]criticality.ClusterPinID, 0, len(a.clusterPins))
	for pin := range a.clusterPins {
		out = append(out, pin)
	}
	return out
}
