package topology

// File is the parsed shape of a containerlab topology document. Only the
// subset topoctl operates on is typed; node bodies stay untyped maps so
// vendor extensions round-trip unchanged.
type File struct {
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Prefix   *string        `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Mgmt     map[string]any `yaml:"mgmt,omitempty" json:"mgmt,omitempty"`
	Topology Topology       `yaml:"topology" json:"topology"`
}

// Topology holds the layered configuration sections and the element
// collections.
type Topology struct {
	Defaults map[string]any            `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Kinds    map[string]map[string]any `yaml:"kinds,omitempty" json:"kinds,omitempty"`
	Groups   map[string]map[string]any `yaml:"groups,omitempty" json:"groups,omitempty"`
	Nodes    map[string]map[string]any `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Links    []Link                    `yaml:"links,omitempty" json:"links,omitempty"`
}

// Link connects two endpoints, each written as "node:interface" (or a
// special endpoint such as "macvlan:ens3").
type Link struct {
	Endpoints []string       `yaml:"endpoints" json:"endpoints"`
	Vars      map[string]any `yaml:"vars,omitempty" json:"vars,omitempty"`
}
