package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"topoctl/internal/formatting"
	"topoctl/internal/naming"
	"topoctl/internal/topology"
)

// newNameCmd creates the command that allocates fresh element identifiers.
func newNameCmd() *cobra.Command {
	var (
		topologyPath string
		outputFormat string
		count        int
	)

	cmd := &cobra.Command{
		Use:   "name <base>",
		Short: "Allocate collision-free identifiers from a base name",
		Long: `Allocates one or more fresh identifiers derived from the base name,
against the identifiers already used in the topology. Each allocated
identifier is accounted for before the next is generated, so a batch is
always collision-free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			used := naming.NewUsedIDSet()
			if topologyPath != "" {
				doc, err := topology.Load(topologyPath)
				if err != nil {
					return err
				}
				used = doc.UsedIDs()
			}

			base := args[0]
			allocations := make([]formatting.Allocation, 0, count)
			for i := 0; i < count; i++ {
				id := naming.Generate(base, used)
				used.Add(id)
				allocations = append(allocations, formatting.Allocation{
					Base:     base,
					ID:       id,
					Category: naming.Classify(base).String(),
				})
			}

			formatter, err := formatting.NewFormatter(formatting.Format(outputFormat), formatting.Options{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAllocations(allocations))
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file providing the used identifiers")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml, json)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to allocate")
	return cmd
}
