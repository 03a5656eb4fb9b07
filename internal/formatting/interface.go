// Package formatting renders resolver and allocator results for the CLI in
// table, YAML, or JSON form.
package formatting

import "fmt"

// Format selects an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// NodeSummary is one row of a node inventory listing.
type NodeSummary struct {
	Name  string `yaml:"name" json:"name"`
	Kind  string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
	Image string `yaml:"image,omitempty" json:"image,omitempty"`
	// Inherited counts properties whose effective value came from a
	// non-node layer.
	Inherited int `yaml:"inherited" json:"inherited"`
}

// ResolveReport is the effective configuration of one node together with the
// set of inherited property names.
type ResolveReport struct {
	Node      string         `yaml:"node" json:"node"`
	Effective map[string]any `yaml:"effective" json:"effective"`
	Inherited []string       `yaml:"inherited,omitempty" json:"inherited,omitempty"`
}

// Allocation is the outcome of one identifier allocation.
type Allocation struct {
	Base     string `yaml:"base" json:"base"`
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
}

// Options adjusts formatter behavior.
type Options struct {
	// NoColor disables table styling for non-TTY output.
	NoColor bool
}

// Formatter renders the CLI-facing views of resolver and allocator output.
type Formatter interface {
	FormatNodeList(nodes []NodeSummary) string
	FormatResolveReport(report ResolveReport) string
	FormatAllocations(allocations []Allocation) string
}

// NewFormatter creates the formatter for the requested format.
func NewFormatter(format Format, options Options) (Formatter, error) {
	switch format {
	case FormatTable, "":
		return NewTableFormatter(options), nil
	case FormatYAML:
		return NewYAMLFormatter(options), nil
	case FormatJSON:
		return NewJSONFormatter(options), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table, yaml or json)", format)
	}
}
