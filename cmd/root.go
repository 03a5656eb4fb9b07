package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"topoctl/internal/cli"
	"topoctl/internal/config"
	"topoctl/pkg/logging"
)

// Exit codes for CLI commands. These follow common conventions so scripts
// can distinguish validation findings from tool failures.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeValidation indicates one or more topology files failed validation.
	ExitCodeValidation = 2
)

var (
	configPathFlag string
	logLevelFlag   string
)

// rootCmd represents the base command for the topoctl application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "topoctl",
	Short: "Edit and resolve containerlab topologies",
	Long: `topoctl inspects and edits containerlab topology files. It resolves
every node's effective configuration from the defaults/kind/group hierarchy,
shows which properties are inherited, and allocates collision-free names for
new nodes, interfaces and special network endpoints.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(logLevelFlag), os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "topoctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var validation *cli.ValidationError
	if errors.As(err, &validation) {
		return ExitCodeValidation
	}
	return ExitCodeError
}

// loadToolConfig loads the topoctl configuration honoring --config-path.
func loadToolConfig() (config.Config, error) {
	path := configPathFlag
	if path == "" {
		path = config.GetDefaultConfigPathOrPanic()
	}
	return config.LoadConfig(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config-path", "",
		"config directory (default is $HOME/.config/topoctl)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newRemoveCmd())
}
