package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"

	sigsyaml "sigs.k8s.io/yaml"
)

// JSONFormatter provides JSON output formatting. Values are marshaled
// through the YAML path first so both formats always agree on shape.
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{options: options}
}

func marshalJSON(v any) string {
	yamlData := []byte(marshalYAML(v))
	jsonData, err := sigsyaml.YAMLToJSON(yamlData)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, jsonData, "", "  "); err != nil {
		return string(jsonData)
	}
	indented.WriteByte('\n')
	return indented.String()
}

// FormatNodeList formats a node inventory as JSON.
func (f *JSONFormatter) FormatNodeList(nodes []NodeSummary) string {
	return marshalJSON(map[string]any{"nodes": nodes, "count": len(nodes)})
}

// FormatResolveReport formats a node's effective configuration as JSON.
func (f *JSONFormatter) FormatResolveReport(report ResolveReport) string {
	return marshalJSON(report)
}

// FormatAllocations formats allocation results as JSON.
func (f *JSONFormatter) FormatAllocations(allocations []Allocation) string {
	return marshalJSON(map[string]any{"allocations": allocations})
}
