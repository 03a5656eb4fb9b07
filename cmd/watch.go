package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"topoctl/internal/watcher"
	"topoctl/pkg/logging"
)

// newWatchCmd creates the command that re-validates a topology whenever the
// file changes on disk.
func newWatchCmd() *cobra.Command {
	var topologyPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a topology file and re-validate on every change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(topologyPath); err != nil {
				return err
			}

			report := func() {
				problems := validateTopology(topologyPath)
				if len(problems) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", topologyPath)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", topologyPath)
				for _, p := range problems {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", p)
				}
			}

			w := watcher.New(watcher.Config{
				Path:     topologyPath,
				OnChange: report,
			})
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			report()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh
			logging.Info("Watch", "Shutting down")
			return nil
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "topology file (required)")
	_ = cmd.MarkFlagRequired("topology")
	return cmd
}
