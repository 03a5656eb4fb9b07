package formatting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() ResolveReport {
	return ResolveReport{
		Node: "srl1",
		Effective: map[string]any{
			"kind":   "nokia_srlinux",
			"memory": "2Gb",
			"image":  "ghcr.io/nokia/srlinux:latest",
			"env":    map[string]any{"SRL_DEBUG": "0"},
		},
		Inherited: []string{"image", "memory"},
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{FormatTable, FormatYAML, FormatJSON, ""} {
		f, err := NewFormatter(format, Options{})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, f)
	}
	_, err := NewFormatter("xml", Options{})
	assert.Error(t, err)
}

func TestTableFormatter_ResolveReport(t *testing.T) {
	f := NewTableFormatter(Options{NoColor: true})
	out := f.FormatResolveReport(sampleReport())
	assert.Contains(t, out, "srl1")
	assert.Contains(t, out, "memory")
	assert.Contains(t, out, "(inherited)")
	assert.Contains(t, out, "explicit")
}

func TestTableFormatter_NodeList(t *testing.T) {
	f := NewTableFormatter(Options{NoColor: true})
	assert.Contains(t, f.FormatNodeList(nil), "No nodes found")

	out := f.FormatNodeList([]NodeSummary{{Name: "srl1", Kind: "nokia_srlinux", Inherited: 3}})
	assert.Contains(t, out, "srl1")
	assert.Contains(t, out, "nokia_srlinux")
}

func TestTableFormatter_SingleAllocationIsBare(t *testing.T) {
	f := NewTableFormatter(Options{NoColor: true})
	out := f.FormatAllocations([]Allocation{{Base: "srl1", ID: "srl5", Category: "node"}})
	assert.Equal(t, "srl5\n", out)
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	f := NewYAMLFormatter(Options{})
	out := f.FormatResolveReport(sampleReport())

	var decoded ResolveReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "srl1", decoded.Node)
	assert.Equal(t, []string{"image", "memory"}, decoded.Inherited)
}

func TestJSONFormatter_ProducesValidJSON(t *testing.T) {
	f := NewJSONFormatter(Options{})
	out := f.FormatResolveReport(sampleReport())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "srl1", decoded["node"])

	out = f.FormatAllocations([]Allocation{{Base: "dummy", ID: "dummy1", Category: "dummy"}})
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "2Gb", renderValue("2Gb"))
	assert.Equal(t, "4", renderValue(4))
	assert.Equal(t, "", renderValue(nil))
	assert.Equal(t, `{"a":1}`, renderValue(map[string]any{"a": 1}))
	assert.Equal(t, `["x","y"]`, renderValue([]any{"x", "y"}))
}
