package cmd

import (
	"github.com/spf13/cobra"

	"github.com/venvdir/venvdir/internal/audit"
	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/registry"
)

var (
	createPath       string
	createWithoutPip bool
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create and register a new virtual environment",
	Long: `Create a new virtual environment named <name> and register it.

The environment is created at <path>/<name>. Without --path it goes into the
default environments directory (~/.venvdir/venvs, or environments_dir from
config.toml). An explicit --path must already exist.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createPath, "path", "p", "", "Base directory to create the environment in")
	createCmd.Flags().BoolVar(&createWithoutPip, "without-pip", false, "Create the environment without pip")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	var opts []registry.Option
	if createWithoutPip {
		opts = append(opts, registry.WithPip(false))
	}

	reg, err := openRegistry(opts...)
	if err != nil {
		return err
	}

	logging.Debug("create", "name", name, "base", createPath)
	entry, err := reg.Create(cmd.Context(), name, createPath)
	if err != nil {
		return err
	}

	recordEvent(audit.EventCreate, entry.Name(), entry.Path())
	logSuccess("Created %s at %s", entry.Name(), entry.Path())
	return nil
}
