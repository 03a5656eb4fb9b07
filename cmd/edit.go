package cmd

import (
	"github.com/spf13/cobra"

	"topoctl/internal/editor"
	"topoctl/internal/topology"
)

// newEditCmd creates the interactive node editor command.
func newEditCmd() *cobra.Command {
	var topologyPath string

	cmd := &cobra.Command{
		Use:   "edit <node>",
		Short: "Edit a node's explicit properties interactively",
		Long: `Opens an interactive editor session for one node. Properties can be
set and unset one at a time; after every change the effective configuration
is shown with inherited properties marked. Changes are written back only on
an explicit save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}

			session, err := editor.New(doc, args[0], cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return session.Run()
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}
