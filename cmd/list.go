package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"topoctl/internal/cli"
	"topoctl/internal/formatting"
	"topoctl/internal/resolve"
	"topoctl/internal/topology"
)

// topologyFileSuffixes are the file name endings scanned in directory mode.
var topologyFileSuffixes = []string{".clab.yml", ".clab.yaml", ".clab.json"}

// newListCmd creates the node inventory command.
func newListCmd() *cobra.Command {
	var (
		outputFormat string
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "list <file-or-directory>",
		Short: "List topology nodes with their resolved kind, group and image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectTopologyPaths(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no topology files found under %s", args[0])
			}

			var (
				mu        sync.Mutex
				summaries []formatting.NodeSummary
			)
			scan := func() error {
				var g errgroup.Group
				g.SetLimit(8)
				for _, path := range paths {
					path := path
					g.Go(func() error {
						nodes, err := summarizeTopology(path)
						if err != nil {
							return err
						}
						mu.Lock()
						summaries = append(summaries, nodes...)
						mu.Unlock()
						return nil
					})
				}
				return g.Wait()
			}

			if err := cli.WithSpinner(fmt.Sprintf("Scanning %d topology files...", len(paths)), quiet || len(paths) == 1, scan); err != nil {
				return err
			}

			sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

			formatter, err := formatting.NewFormatter(formatting.Format(outputFormat), formatting.Options{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNodeList(summaries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml, json)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress spinner")
	return cmd
}

// collectTopologyPaths expands a file or directory argument into the list of
// topology files to inspect.
func collectTopologyPaths(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, suffix := range topologyFileSuffixes {
			if strings.HasSuffix(d.Name(), suffix) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// summarizeTopology resolves every node of one topology into list rows.
func summarizeTopology(path string) ([]formatting.NodeSummary, error) {
	doc, err := topology.Load(path)
	if err != nil {
		return nil, err
	}

	resolver := resolve.NewResolver(doc.TopologyConfig())
	var summaries []formatting.NodeSummary
	for _, name := range doc.NodeNames() {
		node, _ := doc.Node(name)
		effective := resolver.Resolve(node)
		kind, _ := effective["kind"].(string)
		group, _ := effective["group"].(string)
		image, _ := effective["image"].(string)
		summaries = append(summaries, formatting.NodeSummary{
			Name:      name,
			Kind:      kind,
			Group:     group,
			Image:     image,
			Inherited: len(resolver.Inherited(node)),
		})
	}
	return summaries, nil
}
