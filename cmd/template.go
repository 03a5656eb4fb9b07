package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"topoctl/internal/config"
	"topoctl/internal/naming"
	"topoctl/internal/topology"
)

// newTemplateCmd groups the custom node template subcommands. Templates are
// reusable node definitions stored under the config directory; applying one
// seeds a new node's explicit properties.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage custom node templates",
	}
	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateShowCmd())
	cmd.AddCommand(newTemplateDeleteCmd())
	cmd.AddCommand(newTemplateApplyCmd())
	return cmd
}

func templateStorage() *config.Storage {
	if configPathFlag != "" {
		return config.NewStorageWithPath(configPathFlag)
	}
	return config.NewStorage()
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored node templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, problems := templateStorage().LoadAll()
			if len(nodes) == 0 && !problems.HasErrors() {
				fmt.Fprintln(cmd.OutOrStdout(), "No node templates stored")
				return nil
			}
			for _, node := range nodes {
				if node.Kind != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", node.Name, node.Kind)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), node.Name)
			}
			if problems.HasErrors() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped broken templates:\n%s\n", problems.Summary())
			}
			return nil
		},
	}
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a stored node template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := templateStorage().Load(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(node)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored node template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return templateStorage().Delete(args[0])
		},
	}
}

// newTemplateApplyCmd adds a node to a topology from a stored template,
// allocating a fresh name from the template name (or --name) against the
// document's used identifiers.
func newTemplateApplyCmd() *cobra.Command {
	var (
		topologyPath string
		baseName     string
	)

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Add a node from a stored template to a topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := templateStorage().Load(args[0])
			if err != nil {
				return err
			}

			toolCfg, err := loadToolConfig()
			if err != nil {
				return err
			}

			doc, err := topology.Load(topologyPath)
			if err != nil {
				return err
			}

			base := baseName
			if base == "" {
				base = tmpl.Name
			}

			name, node := materializeTemplate(tmpl, toolCfg, base, doc)
			if err := doc.AddNode(name, node); err != nil {
				return err
			}
			if err := doc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added node %s to %s\n", name, topologyPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	cmd.Flags().StringVar(&baseName, "name", "", "base name for the new node (default: template name)")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}

// materializeTemplate turns a stored template into a concrete node: a fresh
// name allocated against the document's used identifiers and an explicit
// property map. Template values win over the tool-config defaults.
func materializeTemplate(tmpl config.CustomNode, toolCfg config.Config, base string, doc *topology.Document) (string, map[string]any) {
	name := naming.Generate(base, doc.UsedIDs())

	node := make(map[string]any, len(tmpl.Properties)+2)
	for k, v := range tmpl.Properties {
		node[k] = v
	}

	kind := tmpl.Kind
	if kind == "" {
		kind = toolCfg.DefaultKind
	}
	if kind != "" {
		node["kind"] = kind
	}

	image := tmpl.Image
	if image == "" {
		image = toolCfg.DefaultImage
	}
	if image != "" {
		node["image"] = image
	}

	return name, node
}
