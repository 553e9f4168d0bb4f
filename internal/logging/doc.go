// Package logging provides logging utilities for venvdir.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating environment", "name", name, "path", envPath)
//	logging.Warn("entries file lock held", "path", lockPath)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating virtual environment %s...", name)
//	logging.UserSuccess("Created %s at %s", name, envPath)
//	logging.UserWarning("Removed %s but left files at %s", name, path)
//	logging.UserError("Failed to remove %s: %v", name, err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
