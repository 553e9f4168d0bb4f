// Package config provides user settings and input validation for venvdir.
//
// # Settings File
//
// Settings are read from config.toml in the state directory (~/.venvdir):
//
//	venv_command = "python3.12 -m venv"   # command used to build environments
//	with_pip = true                       # install pip into new environments
//	environments_dir = "/srv/venvs"       # default base path for create
//
// A missing file yields DefaultSettings. venv_command is split with shell
// quoting rules, so interpreters with spaces in their path can be quoted.
//
// # Entry Names
//
// ValidateEntryName guards names before they are joined onto a base path:
// names are case-sensitive, 1-63 characters, and cannot contain path
// separators.
package config
