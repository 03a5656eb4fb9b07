package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"topoctl/internal/cli"
	"topoctl/internal/naming"
	"topoctl/internal/resolve"
	"topoctl/internal/topology"
)

// newValidateCmd creates the command that checks topology files for
// structural problems.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <paths...>",
		Short: "Validate topology files",
		Long: `Parses each topology file, resolves every node against the layered
configuration, and checks link endpoints for consistency. Exits with code 2
when any file has findings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			for _, arg := range args {
				expanded, err := collectTopologyPaths(arg)
				if err != nil {
					return err
				}
				paths = append(paths, expanded...)
			}

			results := make([][]string, len(paths))
			var g errgroup.Group
			g.SetLimit(8)
			for i, path := range paths {
				i, path := i, path
				g.Go(func() error {
					results[i] = validateTopology(path)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var firstFailure *cli.ValidationError
			for i, problems := range results {
				if len(problems) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", paths[i])
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", paths[i])
				for _, p := range problems {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", p)
				}
				if firstFailure == nil {
					firstFailure = &cli.ValidationError{Path: paths[i], Problems: problems}
				}
			}
			if firstFailure != nil {
				return firstFailure
			}
			return nil
		},
	}
}

// validateTopology returns the findings for one file. An unparseable file is
// a single finding, not a command failure.
func validateTopology(path string) []string {
	doc, err := topology.Load(path)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string

	// Resolving is total, but a node whose kind or group is not declared in
	// the layered sections is worth flagging.
	file := doc.File()
	resolver := resolve.NewResolver(doc.TopologyConfig())
	names := doc.NodeNames()
	sort.Strings(names)
	for _, name := range names {
		node, _ := doc.Node(name)
		effective := resolver.Resolve(node)
		if kind, ok := node["kind"].(string); ok && kind != "" {
			if _, declared := file.Topology.Kinds[kind]; !declared && len(file.Topology.Kinds) > 0 {
				problems = append(problems, fmt.Sprintf("node %s: kind %q has no kind-level configuration", name, kind))
			}
		}
		if group, ok := node["group"].(string); ok && group != "" {
			if _, declared := file.Topology.Groups[group]; !declared && len(file.Topology.Groups) > 0 {
				problems = append(problems, fmt.Sprintf("node %s: group %q has no group-level configuration", name, group))
			}
		}
		if _, ok := effective["kind"]; !ok {
			problems = append(problems, fmt.Sprintf("node %s: no kind set on any layer", name))
		}
	}

	// Link endpoints must reference declared nodes or special endpoints,
	// and no endpoint may be used twice.
	seen := map[string]bool{}
	for i, link := range file.Topology.Links {
		if len(link.Endpoints) < 2 {
			problems = append(problems, fmt.Sprintf("link %d: needs at least two endpoints", i))
			continue
		}
		for _, ep := range link.Endpoints {
			if seen[ep] {
				problems = append(problems, fmt.Sprintf("link %d: endpoint %s used more than once", i, ep))
			}
			seen[ep] = true

			nodeRef := ep
			if idx := strings.Index(ep, ":"); idx >= 0 {
				nodeRef = ep[:idx]
			}
			if _, ok := doc.Node(nodeRef); ok {
				continue
			}
			if naming.Classify(nodeRef) != naming.CategoryNode {
				// Special endpoints (host, mgmt-net, macvlan, ...) do not
				// need a node definition.
				continue
			}
			problems = append(problems, fmt.Sprintf("link %d: endpoint %s references undefined node %q", i, ep, nodeRef))
		}
	}

	return problems
}
