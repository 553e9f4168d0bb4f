package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/venvdir/venvdir/internal/errors"
)

// DefaultVenvCommand is the command used to build a new environment. The
// target path is appended as the last argument.
const DefaultVenvCommand = "python3 -m venv"

// entryNameRegex validates entry names.
// Names start with a letter or digit, followed by letters, digits, dots,
// underscores, or hyphens. Maximum length is 63 characters.
var entryNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,62}$`)

// ValidateEntryName checks if an entry name is valid.
// Valid names:
//   - Start with a letter or digit
//   - Contain only letters, digits, dots, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators
//
// Names are case-sensitive.
func ValidateEntryName(name string) error {
	if name == "" {
		return errors.ValidationError("entry name cannot be empty")
	}

	if !entryNameRegex.MatchString(name) {
		return errors.ValidationError(fmt.Sprintf("invalid entry name %q: must start with a letter or digit, contain only letters, digits, dots, underscores, or hyphens, and be at most 63 characters", name))
	}

	return nil
}

// Settings are the user-tunable options read from config.toml
type Settings struct {
	VenvCommand     string `toml:"venv_command"`
	WithPip         bool   `toml:"with_pip"`
	EnvironmentsDir string `toml:"environments_dir"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() *Settings {
	return &Settings{
		VenvCommand: DefaultVenvCommand,
		WithPip:     true,
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.VenvCommand) == "" {
		return fmt.Errorf("venv_command is required")
	}

	if _, err := s.VenvArgs(); err != nil {
		return err
	}

	if s.EnvironmentsDir != "" && !filepath.IsAbs(s.EnvironmentsDir) {
		return fmt.Errorf("environments_dir must be an absolute path (got %q)", s.EnvironmentsDir)
	}

	return nil
}

// VenvArgs splits VenvCommand into argv using shell quoting rules.
func (s *Settings) VenvArgs() ([]string, error) {
	args, err := shellquote.Split(s.VenvCommand)
	if err != nil {
		return nil, fmt.Errorf("invalid venv_command %q: %w", s.VenvCommand, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("venv_command is required")
	}
	return args, nil
}

// LoadSettings loads settings from the given config.toml. A missing file
// yields DefaultSettings; keys absent from the file keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, errors.ConfigError("failed to read settings", err)
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse settings %s", path), err)
	}

	if err := settings.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid settings %s", path), err)
	}

	return settings, nil
}
