package formatting

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TableFormatter provides rich table output formatting.
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{options: options}
}

func (f *TableFormatter) newWriter() table.Writer {
	t := table.NewWriter()
	if !f.options.NoColor {
		t.SetStyle(table.StyleRounded)
	}
	return t
}

// FormatNodeList formats a node inventory as a table.
func (f *TableFormatter) FormatNodeList(nodes []NodeSummary) string {
	if len(nodes) == 0 {
		return "No nodes found\n"
	}

	t := f.newWriter()
	t.AppendHeader(table.Row{"NAME", "KIND", "GROUP", "IMAGE", "INHERITED"})
	for _, n := range nodes {
		t.AppendRow(table.Row{n.Name, n.Kind, n.Group, n.Image, n.Inherited})
	}
	return t.Render() + "\n"
}

// FormatResolveReport formats a node's effective configuration, marking
// inherited properties.
func (f *TableFormatter) FormatResolveReport(report ResolveReport) string {
	t := f.newWriter()
	t.SetTitle("Node: %s", report.Node)
	t.AppendHeader(table.Row{"PROPERTY", "VALUE", "SOURCE"})
	for _, key := range sortedKeys(report.Effective) {
		source := "explicit"
		if inSet(key, report.Inherited) {
			source = "(inherited)"
		}
		t.AppendRow(table.Row{key, renderValue(report.Effective[key]), source})
	}
	return t.Render() + "\n"
}

// FormatAllocations formats allocation results.
func (f *TableFormatter) FormatAllocations(allocations []Allocation) string {
	if len(allocations) == 0 {
		return "No identifiers allocated\n"
	}
	if len(allocations) == 1 {
		return fmt.Sprintf("%s\n", allocations[0].ID)
	}

	t := f.newWriter()
	t.AppendHeader(table.Row{"BASE", "ID", "CATEGORY"})
	for _, a := range allocations {
		t.AppendRow(table.Row{a.Base, a.ID, a.Category})
	}
	return t.Render() + "\n"
}
