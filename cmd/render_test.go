package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderCommandDefaultTemplate(t *testing.T) {
	path := writeFixtureTopology(t, t.TempDir())

	renderCmd := newRenderCmd()
	var buf bytes.Buffer
	renderCmd.SetOut(&buf)
	renderCmd.SetArgs([]string{"-t", path})

	if err := renderCmd.Execute(); err != nil {
		t.Fatalf("Error executing render: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "srl1 (nokia_srlinux)") {
		t.Errorf("Expected default report line for srl1, got: %q", output)
	}
	// srl1 inherits image and memory from the kind layer.
	if !strings.Contains(output, "inherits:") {
		t.Errorf("Expected inherits marker, got: %q", output)
	}
}

func TestRenderCommandInlineTemplate(t *testing.T) {
	path := writeFixtureTopology(t, t.TempDir())

	renderCmd := newRenderCmd()
	var buf bytes.Buffer
	renderCmd.SetOut(&buf)
	renderCmd.SetArgs([]string{"-t", path, "--template", `{{ .Name }}:{{ if .IsInherited "memory" }}inherited{{ else }}explicit{{ end }}`})

	if err := renderCmd.Execute(); err != nil {
		t.Fatalf("Error executing render: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "srl1:inherited") {
		t.Errorf("Expected srl1 memory marked inherited, got: %q", output)
	}
	if !strings.Contains(output, "srl4:explicit") {
		t.Errorf("Expected srl4 memory marked explicit, got: %q", output)
	}
}

func TestRenderCommandBadTemplate(t *testing.T) {
	path := writeFixtureTopology(t, t.TempDir())

	renderCmd := newRenderCmd()
	renderCmd.SetOut(&bytes.Buffer{})
	renderCmd.SetErr(&bytes.Buffer{})
	renderCmd.SetArgs([]string{"-t", path, "--template", "{{ .Name"})

	if err := renderCmd.Execute(); err == nil {
		t.Error("Expected a parse error for an unterminated template")
	}
}
