package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Basic(t *testing.T) {
	e := New()
	out, err := e.Render("{{ .Name }}: {{ .Effective.memory }}", NodeContext{
		Name:      "srl1",
		Effective: map[string]any{"memory": "2Gb"},
	})
	require.NoError(t, err)
	assert.Equal(t, "srl1: 2Gb", out)
}

func TestRender_SprigFunctions(t *testing.T) {
	e := New()
	out, err := e.Render(`{{ .Name | upper }} {{ .Inherited | join "," }}`, NodeContext{
		Name:      "srl1",
		Inherited: []string{"image", "memory"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SRL1 image,memory", out)
}

func TestRender_IsInherited(t *testing.T) {
	e := New()
	ctx := NodeContext{
		Name:      "srl1",
		Effective: map[string]any{"memory": "2Gb"},
		Inherited: []string{"memory"},
	}
	out, err := e.Render(`{{ if .IsInherited "memory" }}inherited{{ else }}explicit{{ end }}`, ctx)
	require.NoError(t, err)
	assert.Equal(t, "inherited", out)
}

func TestRender_ParseError(t *testing.T) {
	e := New()
	_, err := e.Render("{{ .Name", NodeContext{})
	assert.Error(t, err)
}

func TestRender_MissingKeysAreZero(t *testing.T) {
	e := New()
	out, err := e.Render("{{ .Effective.cpu }}", NodeContext{Effective: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, "<no value>", out)
}
