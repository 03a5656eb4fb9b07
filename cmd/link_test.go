package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLinkCommandAllocatesInterfaces(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)
	withConfigPath(t, t.TempDir())

	linkCmd := newLinkCmd()
	var buf bytes.Buffer
	linkCmd.SetOut(&buf)
	linkCmd.SetArgs([]string{"-t", path, "srl1", "srl4"})

	if err := linkCmd.Execute(); err != nil {
		t.Fatalf("Error executing link: %v", err)
	}

	// srl1:e1-1 is already used by the fixture's link, so srl1 gets e1-2
	// while srl4 starts at e1-1. Both follow the nokia_srlinux pattern from
	// the default tool config.
	if !strings.Contains(buf.String(), "srl1:e1-2 <-> srl4:e1-1") {
		t.Errorf("Expected allocated endpoints in output, got: %q", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read topology: %v", err)
	}
	if !strings.Contains(string(data), "srl1:e1-2") {
		t.Errorf("Expected new link persisted, got: %s", data)
	}
}

func TestLinkCommandSpecialEndpoint(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)
	withConfigPath(t, t.TempDir())

	linkCmd := newLinkCmd()
	var buf bytes.Buffer
	linkCmd.SetOut(&buf)
	linkCmd.SetArgs([]string{"-t", path, "srl4", "macvlan"})

	if err := linkCmd.Execute(); err != nil {
		t.Fatalf("Error executing link: %v", err)
	}

	// A bare special endpoint gets its numbered form.
	if !strings.Contains(buf.String(), "macvlan1") {
		t.Errorf("Expected macvlan1 endpoint, got: %q", buf.String())
	}
}

func TestLinkCommandVerbatimEndpoint(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)
	withConfigPath(t, t.TempDir())

	linkCmd := newLinkCmd()
	var buf bytes.Buffer
	linkCmd.SetOut(&buf)
	linkCmd.SetArgs([]string{"-t", path, "host:ens3", "srl4"})

	if err := linkCmd.Execute(); err != nil {
		t.Fatalf("Error executing link: %v", err)
	}

	if !strings.Contains(buf.String(), "host:ens3") {
		t.Errorf("Expected verbatim endpoint kept, got: %q", buf.String())
	}
}

func TestLinkCommandUnknownNode(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)
	withConfigPath(t, t.TempDir())

	linkCmd := newLinkCmd()
	linkCmd.SetOut(&bytes.Buffer{})
	linkCmd.SetErr(&bytes.Buffer{})
	linkCmd.SetArgs([]string{"-t", path, "srl1", "ghost"})

	if err := linkCmd.Execute(); err == nil {
		t.Error("Expected an error for an unknown node")
	}
}

func TestRemoveCommandDropsNodeAndLinks(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)

	removeCmd := newRemoveCmd()
	var buf bytes.Buffer
	removeCmd.SetOut(&buf)
	removeCmd.SetArgs([]string{"-t", path, "srl1"})

	if err := removeCmd.Execute(); err != nil {
		t.Fatalf("Error executing remove: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read topology: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "srl1:") {
		t.Errorf("Expected srl1 and its link endpoints gone, got: %s", content)
	}
	if !strings.Contains(content, "srl2") {
		t.Errorf("Expected srl2 to survive, got: %s", content)
	}
}

func TestRemoveCommandUnknownNode(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureTopology(t, dir)

	removeCmd := newRemoveCmd()
	removeCmd.SetOut(&bytes.Buffer{})
	removeCmd.SetErr(&bytes.Buffer{})
	removeCmd.SetArgs([]string{"-t", path, "ghost"})

	if err := removeCmd.Execute(); err == nil {
		t.Error("Expected an error for an unknown node")
	}
}
