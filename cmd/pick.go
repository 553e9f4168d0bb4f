package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive environment picker",
	Long: `Opens an interactive TUI for selecting a virtual environment.

Use arrow keys or j/k to navigate, / to filter, Enter to select.

Actions:
  Enter  - Print the path of the selected environment
  d      - Show instructions for removing the selected environment
  q/Esc  - Quit

When stdout is not a terminal the environments are listed instead.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	entries, err := listEntries()
	if err != nil {
		return err
	}

	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(out, tui.SimplePicker(entries))
		return nil
	}

	if len(entries) == 0 {
		logInfo("No virtual environments managed with venvdir. Create one with: venvdir create <name>")
		return nil
	}

	logging.Debug("picker mode started", "entries", len(entries))

	result, err := tui.RunPicker(entries)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionSelect:
		if result.Entry != nil {
			fmt.Fprintln(out, result.Entry.Path())
		}

	case tui.ActionRemove:
		if result.Entry != nil {
			fmt.Fprintf(out, "\nTo remove '%s', run:\n", result.Entry.Name())
			fmt.Fprintf(out, "  venvdir remove %s\n", result.Entry.Name())
		}

	case tui.ActionQuit, tui.ActionNone:
		// Just exit cleanly
	}

	return nil
}
