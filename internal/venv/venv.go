// Package venv builds Python virtual environments on disk.
//
// The registry treats creation as opaque: a Creator receives the target
// directory and either leaves a working environment there or returns an
// error.
package venv

import (
	"context"
	"fmt"
	"strings"

	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/system"
)

// Creator provisions an isolated environment at a target path.
type Creator interface {
	// Create builds an environment rooted at target. When withPip is true
	// the environment includes its package installer.
	Create(ctx context.Context, target string, withPip bool) error
}

// CommandCreator creates environments by running an external command,
// typically "python3 -m venv".
type CommandCreator struct {
	// Command is the argv prefix; the target path is appended.
	Command []string

	exec system.CommandExecutor
}

// NewCommandCreator returns a creator that runs command through exec.
// A nil exec uses system.DefaultExecutor.
func NewCommandCreator(command []string, exec system.CommandExecutor) *CommandCreator {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &CommandCreator{Command: command, exec: exec}
}

// Args returns the full argv used to create target.
func (c *CommandCreator) Args(target string, withPip bool) []string {
	args := append([]string{}, c.Command...)
	if !withPip {
		args = append(args, "--without-pip")
	}
	return append(args, target)
}

func (c *CommandCreator) Create(ctx context.Context, target string, withPip bool) error {
	if len(c.Command) == 0 {
		return fmt.Errorf("no venv command configured")
	}

	args := c.Args(target, withPip)
	logging.Debug("running venv command", "argv", args)

	out, err := c.exec.Execute(ctx, args[0], args[1:]...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
