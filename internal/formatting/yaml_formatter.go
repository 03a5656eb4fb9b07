package formatting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting.
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{options: options}
}

func marshalYAML(v any) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	return string(data)
}

// FormatNodeList formats a node inventory as YAML.
func (f *YAMLFormatter) FormatNodeList(nodes []NodeSummary) string {
	return marshalYAML(map[string]any{"nodes": nodes, "count": len(nodes)})
}

// FormatResolveReport formats a node's effective configuration as YAML.
func (f *YAMLFormatter) FormatResolveReport(report ResolveReport) string {
	return marshalYAML(report)
}

// FormatAllocations formats allocation results as YAML.
func (f *YAMLFormatter) FormatAllocations(allocations []Allocation) string {
	return marshalYAML(map[string]any{"allocations": allocations})
}
