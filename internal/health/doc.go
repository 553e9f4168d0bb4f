// Package health inspects registered environments on disk.
//
// An entry only records a path; nothing stops the directory behind it from
// being deleted or damaged outside venvdir. Health checks report what is
// actually there.
//
// # Health Status
//
//	StatusHealthy - Directory exists with pyvenv.cfg and an interpreter
//	StatusBroken  - Directory exists but is not a usable environment
//	StatusMissing - Directory does not exist
//
// # Check Functions
//
//	health.FindInterpreter(fs, root) // bin/python or Scripts/python.exe
//	health.GetAge(entry, now)        // Time since registration
//
//	result := health.Check(fs, entry, time.Now())
//	// result.PathExists, .HasConfig, .Interpreter, .Age
//	status := result.Status()
//
// A CheckResult is a table.Record with name, status, age and path columns.
package health
