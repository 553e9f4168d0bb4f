package cmd

import (
	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "venvdir",
	Short: "Manage named Python virtual environments",
	Long: `venvdir keeps a registry of named Python virtual environments.

Environments are created under ~/.venvdir/venvs by default, or registered
from anywhere on disk, and can then be listed, located and removed by name.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Usage is only printed for argument errors.
		cmd.SilenceUsage = true
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
