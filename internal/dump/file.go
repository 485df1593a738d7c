package dump

// File-level types mapping 1:1 to the analyzer's YAML dump format.
// All times are nanoseconds in the file.

type dumpFile struct {
	Clocks []clockEntry `yaml:"clocks"`
	Nodes  []nodeEntry  `yaml:"nodes"`
	Paths  []pathEntry  `yaml:"paths"`
	Pins   pinSection   `yaml:"pins"`
}

type clockEntry struct {
	ID      int32  `yaml:"id"`
	Name    string `yaml:"name"`
	Virtual bool   `yaml:"virtual"`
}

type nodeEntry struct {
	ID   int32  `yaml:"id"`
	Type string `yaml:"type"` // source | sink | internal

	// Output marks the node as an output-class endpoint aggregated by the
	// slack statistics.
	Output bool `yaml:"output"`

	SetupSlacks    []tagEntry `yaml:"setup_slacks"`
	HoldSlacks     []tagEntry `yaml:"hold_slacks"`
	SetupArrivals  []tagEntry `yaml:"setup_arrivals"`
	SetupRequireds []tagEntry `yaml:"setup_requireds"`
}

type tagEntry struct {
	Launch  int32   `yaml:"launch"`
	Capture int32   `yaml:"capture"`
	NS      float64 `yaml:"ns"`
}

type pathEntry struct {
	Launch  int32   `yaml:"launch"`
	Capture int32   `yaml:"capture"`
	DelayNS float64 `yaml:"delay_ns"`
	SlackNS float64 `yaml:"slack_ns"`
}

type pinSection struct {
	Cluster []clusterPinEntry `yaml:"cluster"`
	Atoms   []atomPinEntry    `yaml:"atoms"`
}

type clusterPinEntry struct {
	ID    int32   `yaml:"id"`
	Atoms []int32 `yaml:"atoms"`
}

type atomPinEntry struct {
	ID               int32   `yaml:"id"`
	SetupCriticality float64 `yaml:"setup_criticality"`
}
