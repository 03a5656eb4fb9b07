package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"topoctl/internal/cli"
	"topoctl/internal/config"
	"topoctl/internal/naming"
	"topoctl/internal/resolve"
	"topoctl/internal/topology"
)

// newLinkCmd creates the command that connects two nodes. Endpoint interface
// names follow the kind's configured pattern and skip identifiers already in
// use.
func newLinkCmd() *cobra.Command {
	var topologyPath string

	cmd := &cobra.Command{
		Use:   "link <node-a> <node-b>",
		Short: "Add a link between two nodes",
		Long: `Adds a link between two nodes, allocating the next free interface on
each side. The interface naming pattern comes from the tool configuration's
per-kind patterns (default eth{n}). Special endpoints (host, mgmt-net,
macvlan, ...) may be given verbatim with an explicit interface part, e.g.
"host:ens3".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolCfg, err := loadToolConfig()
			if err != nil {
				return err
			}

			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}

			used := doc.UsedIDs()
			resolver := resolve.NewResolver(doc.TopologyConfig())

			endpoints := make([]string, 0, 2)
			for _, arg := range args {
				ep, err := endpointFor(doc, resolver, toolCfg, arg, used)
				if err != nil {
					return err
				}
				used.Add(ep)
				endpoints = append(endpoints, ep)
			}

			if err := doc.AddLink(endpoints...); err != nil {
				return err
			}
			if err := doc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s <-> %s\n", endpoints[0], endpoints[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}

// endpointFor turns a link argument into an endpoint identifier. Arguments
// already carrying an interface part ("srl1:e1-3", "host:ens3") pass through
// unchanged; bare node names get the next free interface for the node's kind.
func endpointFor(doc *topology.Document, resolver *resolve.Resolver, toolCfg config.Config, arg string, used *naming.UsedIDSet) (string, error) {
	if naming.Classify(arg) == naming.CategoryAdapter {
		return arg, nil
	}

	node, ok := doc.Node(arg)
	if !ok {
		if naming.Classify(arg) != naming.CategoryNode {
			// Bare special endpoint without an interface part; allocate its
			// numbered form instead.
			return naming.Generate(arg, used), nil
		}
		return "", &cli.NodeNotFoundError{Node: arg, Path: doc.Path()}
	}

	kind, _ := resolver.Resolve(node)["kind"].(string)
	iface := naming.NextInterface(arg, toolCfg.InterfacePattern(kind), used)
	return arg + ":" + iface, nil
}
