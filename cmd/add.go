package cmd

import (
	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/audit"
)

var addPath string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register an existing virtual environment",
	Long: `Register the environment at --path under <name> without creating it.

An entry that already uses <name> is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addPath, "path", "p", "", "Path to the environment root (required)")
	_ = addCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	entry, err := reg.Add(args[0], addPath)
	if err != nil {
		return err
	}

	recordEvent(audit.EventAdd, entry.Name(), entry.Path())
	logSuccess("Registered %s at %s", entry.Name(), entry.Path())
	return nil
}
