package cmd

import (
	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/audit"
)

var removeKeepFiles bool

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a virtual environment and its entry",
	Long: `Delete the environment directory of <name> and then its entry.

With --keep-files only the entry is removed and the directory stays on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeKeepFiles, "keep-files", false, "Only unregister, leave the directory in place")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	reg, err := openRegistry()
	if err != nil {
		return err
	}

	entry, err := reg.Get(name)
	if err != nil {
		return err
	}

	if removeKeepFiles {
		if err := reg.Forget(name); err != nil {
			return err
		}
		recordEvent(audit.EventForget, name, entry.Path())
		logSuccess("Unregistered %s", name)
		logInfo("Files kept at %s", entry.Path())
		return nil
	}

	if err := reg.Remove(name); err != nil {
		return err
	}
	recordEvent(audit.EventRemove, name, entry.Path())

	logSuccess("Removed %s", name)
	return nil
}
