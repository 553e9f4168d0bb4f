package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/app"
	"github.com/venvdir/venvdir/internal/audit"
	"github.com/venvdir/venvdir/internal/logging"
)

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Display the history of registry changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var historyJSON bool

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output events as JSON lines")
	rootCmd.AddCommand(historyCmd)
}

// auditLogger returns the history logger of the default app, or nil when
// the state directory is unknown.
func auditLogger() *audit.Logger {
	if app.Default.Paths == nil {
		return nil
	}
	return audit.NewLogger(app.Default.Paths.Home)
}

// recordEvent appends to the history. Failures are logged and otherwise
// ignored since the registry change already happened.
func recordEvent(eventType audit.EventType, name, path string) {
	l := auditLogger()
	if l == nil {
		return
	}
	if err := l.LogEvent(eventType, name, path); err != nil {
		logging.Warn("failed to record history", "type", eventType, "entry", name, "error", err)
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	}

	l := auditLogger()
	if l == nil {
		return fmt.Errorf("state directory is not configured")
	}

	events, err := l.Events(name)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		if name != "" {
			logInfo("No history for %s", name)
		} else {
			logInfo("No history recorded")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if historyJSON {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		if e.Path != "" {
			fmt.Fprintf(out, "[%s] %-8s %s (%s)\n", ts, e.Type, e.Entry, e.Path)
		} else {
			fmt.Fprintf(out, "[%s] %-8s %s\n", ts, e.Type, e.Entry)
		}
	}

	return nil
}
