package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"topoctl/internal/cli"
	"topoctl/internal/formatting"
	"topoctl/internal/resolve"
	"topoctl/internal/template"
	"topoctl/internal/topology"
)

// newResolveCmd creates the command that prints a node's effective
// configuration with inherited properties marked.
func newResolveCmd() *cobra.Command {
	var (
		topologyPath string
		outputFormat string
		templateStr  string
	)

	cmd := &cobra.Command{
		Use:   "resolve [node]",
		Short: "Show the effective configuration of one or all nodes",
		Long: `Resolves a node's effective configuration by merging the topology's
defaults, kind and group layers with the node's explicit values, and marks
every property whose value is inherited from a non-node layer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}

			names := doc.NodeNames()
			sort.Strings(names)
			if len(args) == 1 {
				if _, ok := doc.Node(args[0]); !ok {
					return &cli.NodeNotFoundError{Node: args[0], Path: topologyPath}
				}
				names = args[:1]
			}

			resolver := resolve.NewResolver(doc.TopologyConfig())

			if templateStr != "" {
				engine := template.New()
				for _, name := range names {
					node, _ := doc.Node(name)
					out, err := engine.Render(templateStr, template.NodeContext{
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
			}

			formatter, err := formatting.NewFormatter(formatting.Format(outputFormat), formatting.Options{})
			if err != nil {
				return err
			}
			for _, name := range names {
				node, _ := doc.Node(name)
				report := formatting.ResolveReport{
					Node:      name,
					Effective: resolver.Resolve(node),
					Inherited: resolver.Inherited(node),
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResolveReport(report))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml, json)")
	cmd.Flags().StringVar(&templateStr, "template", "", "render each node through a Go template instead")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}
