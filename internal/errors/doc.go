// Package errors provides typed errors with exit codes for venvdir.
//
// # Error Types
//
// VenvdirError is the base error type that wraps an error with an exit code:
//
//	type VenvdirError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitEntryNotFound  = 2  // Entry does not exist
//	ExitEntryExists    = 3  // Environment path or name already taken
//	ExitPathNotFound   = 4  // Base path or venv path missing on disk
//	ExitCreationFailed = 5  // Environment creation command failed
//	ExitConfigError    = 6  // Settings or entries file is malformed
//	ExitIOError        = 7  // Filesystem failure
//
// # Error Constructors
//
//	errors.EntryNotFound("myenv")
//	errors.EntryAlreadyExists("/home/u/.venvdir/venvs/myenv")
//	errors.BasePathNotFound("/nowhere")
//	errors.CreationFailed(envPath, err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
