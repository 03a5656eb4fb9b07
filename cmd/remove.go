package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"topoctl/internal/cli"
	"topoctl/internal/topology"
)

// newRemoveCmd creates the command that deletes a node together with every
// link touching one of its endpoints.
func newRemoveCmd() *cobra.Command {
	var topologyPath string

	cmd := &cobra.Command{
		Use:     "remove <node>",
		Aliases: []string{"rm"},
		Short:   "Remove a node and its links from a topology",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}

			if !doc.RemoveNode(args[0]) {
				return &cli.NodeNotFoundError{Node: args[0], Path: topologyPath}
			}
			if err := doc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed node %s from %s\n", args[0], topologyPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}
