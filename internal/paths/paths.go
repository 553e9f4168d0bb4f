// Package paths resolves the per-user state directory of venvdir and the
// files and directories kept beneath it.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/venvdir/venvdir/internal/errors"
)

const (
	// ProductName names the hidden state directory (~/.venvdir).
	ProductName = "venvdir"

	// EnvHome overrides the state directory when set.
	EnvHome = "VENVDIR_HOME"

	EntriesFileName = "entries.cfg"
	ConfigFileName  = "config.toml"
	VenvsDirName    = "venvs"
)

// homeDir can be overridden in tests.
var homeDir = os.UserHomeDir

// Paths holds the resolved state locations.
type Paths struct {
	Home            string // ~/.venvdir
	EntriesFile     string // ~/.venvdir/entries.cfg
	ConfigFile      string // ~/.venvdir/config.toml
	EnvironmentsDir string // ~/.venvdir/venvs
}

// DefaultPaths computes the state locations for the current user. It has no
// side effects; directories are created on demand by StateDir.
func DefaultPaths() (*Paths, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		userHome, err := homeDir()
		if err != nil {
			return nil, errors.IOError("failed to resolve home directory", err)
		}
		home = filepath.Join(userHome, "."+ProductName)
	}
	return New(home), nil
}

// New returns Paths rooted at the given state directory.
func New(home string) *Paths {
	return &Paths{
		Home:            home,
		EntriesFile:     filepath.Join(home, EntriesFileName),
		ConfigFile:      filepath.Join(home, ConfigFileName),
		EnvironmentsDir: filepath.Join(home, VenvsDirName),
	}
}

// StateDir joins the state directory with sub and creates the result,
// including parents, if it does not exist yet.
func (p *Paths) StateDir(sub ...string) (string, error) {
	dir := filepath.Join(append([]string{p.Home}, sub...)...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.IOError(fmt.Sprintf("failed to create state directory %s", dir), err)
	}
	return dir, nil
}

// DefaultEnvironmentsDir returns the directory new environments are created
// in when no base path is given, creating it if needed.
func (p *Paths) DefaultEnvironmentsDir() (string, error) {
	return p.StateDir(VenvsDirName)
}

// StateDir resolves and creates a directory under the current user's state
// directory.
func StateDir(sub ...string) (string, error) {
	p, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return p.StateDir(sub...)
}

// DefaultEnvironmentsDir resolves and creates the current user's default
// environments directory.
func DefaultEnvironmentsDir() (string, error) {
	p, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return p.DefaultEnvironmentsDir()
}
