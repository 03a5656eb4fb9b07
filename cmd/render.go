package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"topoctl/internal/resolve"
	"topoctl/internal/template"
	"topoctl/internal/topology"
)

const defaultReportTemplate = `{{ .Name }} ({{ .Effective.kind }}){{ if .Inherited }} inherits: {{ .Inherited | join ", " }}{{ end }}`

// newRenderCmd creates the command that renders a report template over every
// node of a topology.
func newRenderCmd() *cobra.Command {
	var (
		topologyPath string
		templateStr  string
		templateFile string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report template over all resolved nodes",
		Long: `Executes a Go template (with the sprig function library) once per node,
against the node's resolved configuration. The template receives .Name,
.Effective, .Explicit, .Inherited and the .IsInherited helper.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl := templateStr
			if templateFile != "" {
				data, err := os.ReadFile(templateFile)
				if err != nil {
					return fmt.Errorf("failed to read template file: %w", err)
				}
				tpl = string(data)
			}
			if tpl == "" {
				tpl = defaultReportTemplate
			}

			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}
			resolver := resolve.NewResolver(doc.TopologyConfig())
			engine := template.New()

			names := doc.NodeNames()
			sort.Strings(names)
			for _, name := range names {
				node, _ := doc.Node(name)
				out, err := engine.Render(tpl, template.NodeContext{
					Name:      name,
					Effective: resolver.Resolve(node),
					Inherited: resolver.Inherited(node),
					Explicit:  node,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	cmd.Flags().StringVar(&templateStr, "template", "", "inline template string")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "file containing the template")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}
