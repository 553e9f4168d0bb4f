// Package testutil provides test fixtures and utilities.
//
// # Test Environment
//
// NewTestEnv points app.Default at a temporary state directory with a mock
// environment creator, so command tests never run a real interpreter:
//
//	env := testutil.NewTestEnv(t)
//	env.InstallEntries("valid_entries.cfg")
//	dir := env.CreateEnvironment("existing")
//
// # Fixtures
//
// Entries files and settings are embedded using go:embed:
//
//	fixtures/valid_entries.cfg
//	fixtures/malformed_entries.cfg
//	fixtures/missing_path_entries.cfg
//	fixtures/valid_config.toml
//	fixtures/invalid_config.toml
//
// Helper functions load and parse settings fixtures:
//
//	s, err := testutil.ValidSettings()
//	s, err := testutil.InvalidSettings()
//	data, err := testutil.LoadFixture("valid_entries.cfg")
package testutil
