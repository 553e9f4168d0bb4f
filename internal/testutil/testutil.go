// Package testutil provides test utilities for command and integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/venvdir/venvdir/internal/app"
	"github.com/venvdir/venvdir/internal/config"
	"github.com/venvdir/venvdir/internal/paths"
	"github.com/venvdir/venvdir/internal/store"
	"github.com/venvdir/venvdir/internal/system"
	"github.com/venvdir/venvdir/internal/venv"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Paths    *paths.Paths
	Settings *config.Settings
	Creator  *venv.MockCreator
	Executor *system.MockExecutor
	App      *app.App
}

// NewTestEnv creates a test environment rooted in a temporary state
// directory and installs it as app.Default until the test ends. The
// package default executor is replaced by a mock for the same duration.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	p := paths.New(filepath.Join(tmpDir, "state"))
	if err := os.MkdirAll(p.Home, 0755); err != nil {
		t.Fatalf("Failed to create state directory: %v", err)
	}

	settings := config.DefaultSettings()
	creator := venv.NewMockCreator()

	executor := system.NewMockExecutor()
	system.SetDefaultExecutor(executor)
	t.Cleanup(system.ResetDefaults)

	testApp := app.New(
		app.WithPaths(p),
		app.WithSettings(settings),
		app.WithCreator(creator),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	return &TestEnv{
		T:        t,
		TmpDir:   tmpDir,
		Paths:    p,
		Settings: settings,
		Creator:  creator,
		Executor: executor,
		App:      testApp,
	}
}

// InstallEntries copies an entries fixture over the test entries file.
func (e *TestEnv) InstallEntries(fixture string) error {
	data, err := LoadFixture(fixture)
	if err != nil {
		return err
	}
	return os.WriteFile(e.Paths.EntriesFile, data, 0644)
}

// CreateEnvironment creates a directory that stands in for an existing
// environment and returns its path.
func (e *TestEnv) CreateEnvironment(name string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "external", name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create environment: %v", err)
	}
	return path
}

// EntriesData returns the raw entries file.
func (e *TestEnv) EntriesData() string {
	e.T.Helper()

	data, err := os.ReadFile(e.Paths.EntriesFile)
	if err != nil {
		e.T.Fatalf("Failed to read entries file: %v", err)
	}
	return string(data)
}

// EntryExists reports whether name is registered.
func (e *TestEnv) EntryExists(name string) bool {
	s, err := store.Open(e.Paths.EntriesFile)
	if err != nil {
		return false
	}
	return s.Has(name)
}
