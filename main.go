package main

import (
	"os"

	"github.com/venvdir/venvdir/cmd"
	"github.com/venvdir/venvdir/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
