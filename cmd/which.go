package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/app"
)

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Print the path of a virtual environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	entry, err := loadEntry(args[0])
	if err != nil {
		return err
	}

	if !app.Default.FS.Exists(entry.Path()) {
		logWarning("%s is registered but %s is missing", entry.Name(), entry.Path())
	}

	fmt.Fprintln(cmd.OutOrStdout(), entry.Path())
	return nil
}
