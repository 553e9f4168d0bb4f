package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/registry"
	"github.com/venvdir/venvdir/internal/table"
)

var (
	listAll      bool
	listNoHeader bool
)

// listHeader is the default column set for list.
var listHeader = table.Header{
	{Key: registry.NameKey, Label: "NAME"},
	{Key: "path", Label: "PATH"},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all managed virtual environments",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show every metadata column")
	listCmd.Flags().BoolVar(&listNoHeader, "no-header", false, "Omit the header row")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := listEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		logInfo("No virtual environments managed with venvdir")
		return nil
	}

	opts := table.Options{NoHeader: listNoHeader}
	if !listAll {
		opts.Header = listHeader
	}

	fmt.Fprintln(cmd.OutOrStdout(), table.Format(table.Records(entries), opts))
	return nil
}
