package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/app"
	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/health"
	"github.com/venvdir/venvdir/internal/registry"
	"github.com/venvdir/venvdir/internal/table"
)

var checkHeader = table.Header{
	{Key: "name", Label: "NAME"},
	{Key: "status", Label: "STATUS"},
	{Key: "age", Label: "AGE"},
	{Key: "path", Label: "PATH"},
}

var checkCmd = &cobra.Command{
	Use:   "check [name...]",
	Short: "Check that registered environments still exist on disk",
	Long: `Check every registered environment, or only the named ones.

An environment is healthy when its directory holds pyvenv.cfg and a Python
interpreter. The command fails when any checked environment is missing or
broken.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var entries []*registry.Entry
	if len(args) == 0 {
		all, err := listEntries()
		if err != nil {
			return err
		}
		entries = all
	} else {
		for _, name := range args {
			e, err := loadEntry(name)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
	}

	if len(entries) == 0 {
		logInfo("No virtual environments managed with venvdir")
		return nil
	}

	now := time.Now()
	results := make([]*health.CheckResult, 0, len(entries))
	unhealthy := 0
	for _, e := range entries {
		r := health.Check(app.Default.FS, e, now)
		if r.Status() != health.StatusHealthy {
			unhealthy++
		}
		results = append(results, r)
	}

	fmt.Fprintln(cmd.OutOrStdout(), table.Format(table.Records(results), table.Options{Header: checkHeader}))

	if unhealthy > 0 {
		return errors.New(errors.ExitGeneralError, fmt.Sprintf("%d of %d environments are not healthy", unhealthy, len(results)))
	}
	return nil
}
