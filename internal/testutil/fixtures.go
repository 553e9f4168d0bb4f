package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/venvdir/venvdir/internal/config"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadSettingsFixture decodes a settings fixture without validating it.
func LoadSettingsFixture(name string) (*config.Settings, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	settings := config.DefaultSettings()
	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ValidSettings returns the valid settings fixture.
func ValidSettings() (*config.Settings, error) {
	return LoadSettingsFixture("valid_config.toml")
}

// InvalidSettings returns the invalid settings fixture.
func InvalidSettings() (*config.Settings, error) {
	return LoadSettingsFixture("invalid_config.toml")
}
