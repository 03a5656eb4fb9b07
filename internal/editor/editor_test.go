package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topoctl/internal/topology"
)

const editorTopology = `
name: edit-lab
topology:
  defaults:
    memory: 1Gb
  kinds:
    nokia_srlinux:
      memory: 2Gb
  nodes:
    srl1:
      kind: nokia_srlinux
`

func newEditor(t *testing.T) (*Editor, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte(editorTopology), 0644))

	doc, err := topology.Load(path)
	require.NoError(t, err)

	var out bytes.Buffer
	e, err := New(doc, "srl1", &out)
	require.NoError(t, err)
	return e, &out, path
}

func TestNew_UnknownNode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte(editorTopology), 0644))
	doc, err := topology.Load(path)
	require.NoError(t, err)

	_, err = New(doc, "srl9", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDispatch_ShowMarksInherited(t *testing.T) {
	e, out, _ := newEditor(t)
	quit, err := e.Dispatch("show")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "(inherited)")
	assert.Contains(t, out.String(), "2Gb")
}

func TestDispatch_SetOverridesInheritance(t *testing.T) {
	e, out, _ := newEditor(t)
	_, err := e.Dispatch("set memory 8Gb")
	require.NoError(t, err)

	out.Reset()
	_, err = e.Dispatch("show")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "8Gb")

	// memory is now explicitly divergent, so its row is explicit.
	node, _ := e.doc.Node("srl1")
	assert.Equal(t, "8Gb", node["memory"])
	assert.NotContains(t, e.resolver.Inherited(node), "memory")
}

func TestDispatch_SetParsesYAMLValues(t *testing.T) {
	e, _, _ := newEditor(t)
	_, err := e.Dispatch("set cpu 4")
	require.NoError(t, err)
	node, _ := e.doc.Node("srl1")
	assert.Equal(t, 4, node["cpu"])

	_, err = e.Dispatch("set binds [a:b, c:d]")
	require.NoError(t, err)
	node, _ = e.doc.Node("srl1")
	assert.Len(t, node["binds"], 2)
}

func TestDispatch_SetOnEmptyBodyNode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: bare\ntopology:\n  nodes:\n    srl1:\n"), 0644))
	doc, err := topology.Load(path)
	require.NoError(t, err)

	e, err := New(doc, "srl1", &bytes.Buffer{})
	require.NoError(t, err)

	_, err = e.Dispatch("set memory 2Gb")
	require.NoError(t, err)
	node, _ := doc.Node("srl1")
	assert.Equal(t, "2Gb", node["memory"])
}

func TestDispatch_Unset(t *testing.T) {
	e, _, _ := newEditor(t)
	_, err := e.Dispatch("set memory 8Gb")
	require.NoError(t, err)
	_, err = e.Dispatch("unset memory")
	require.NoError(t, err)

	node, _ := e.doc.Node("srl1")
	_, ok := node["memory"]
	assert.False(t, ok)

	_, err = e.Dispatch("unset memory")
	assert.Error(t, err, "unsetting a non-explicit property fails")
}

func TestDispatch_SaveWritesDocument(t *testing.T) {
	e, _, path := newEditor(t)
	_, err := e.Dispatch("set image alpine:3")
	require.NoError(t, err)
	_, err = e.Dispatch("save")
	require.NoError(t, err)

	reloaded, err := topology.Load(path)
	require.NoError(t, err)
	node, _ := reloaded.Node("srl1")
	assert.Equal(t, "alpine:3", node["image"])
}

func TestDispatch_QuitAndUnknown(t *testing.T) {
	e, _, _ := newEditor(t)
	quit, err := e.Dispatch("quit")
	assert.NoError(t, err)
	assert.True(t, quit)

	_, err = e.Dispatch("frobnicate")
	assert.Error(t, err)

	quit, err = e.Dispatch("")
	assert.NoError(t, err)
	assert.False(t, quit)
}
