package errors

import (
	"errors"
	"fmt"
)

// Exit codes for venvdir
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitEntryNotFound  = 2
	ExitEntryExists    = 3
	ExitPathNotFound   = 4
	ExitCreationFailed = 5
	ExitConfigError    = 6
	ExitIOError        = 7
)

// Kind identifies which failure a VenvdirError describes. Several kinds
// share an exit code, so callers match on the kind with Is:
//
//	if errors.Is(err, errors.KindBasePathNotFound) { ... }
type Kind string

func (k Kind) Error() string {
	return string(k)
}

// Error kinds
const (
	KindEntryNotFound          Kind = "entry not found"
	KindEntryAlreadyExists     Kind = "environment already exists"
	KindEntryAlreadyRegistered Kind = "entry already registered"
	KindBasePathNotFound       Kind = "base path not found"
	KindPathNotFound           Kind = "path not found"
	KindCreationFailed         Kind = "creation failed"
	KindConfig                 Kind = "config error"
	KindIO                     Kind = "io error"
	KindValidation             Kind = "validation error"
)

// VenvdirError is the base error type for venvdir
type VenvdirError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

func (e *VenvdirError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *VenvdirError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the error's Kind.
func (e *VenvdirError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind != "" && k == e.Kind
}

// ExitCode returns the exit code for this error
func (e *VenvdirError) ExitCode() int {
	return e.Code
}

// New creates a new VenvdirError
func New(code int, message string) *VenvdirError {
	return &VenvdirError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a VenvdirError
func Wrap(code int, message string, cause error) *VenvdirError {
	return &VenvdirError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// EntryNotFound returns an error for a lookup of an unknown entry name
func EntryNotFound(name string) *VenvdirError {
	return withKind(KindEntryNotFound, New(ExitEntryNotFound, fmt.Sprintf("entry '%s' does not exist", name)))
}

// EntryAlreadyExists returns an error when the target environment path is taken
func EntryAlreadyExists(envPath string) *VenvdirError {
	return withKind(KindEntryAlreadyExists, New(ExitEntryExists, fmt.Sprintf("virtual environment '%s' already exists", envPath)))
}

// EntryAlreadyRegistered returns an error when a name is already in the registry
func EntryAlreadyRegistered(name string) *VenvdirError {
	return withKind(KindEntryAlreadyRegistered, New(ExitEntryExists, fmt.Sprintf("entry '%s' is already registered", name)))
}

// BasePathNotFound returns an error for an explicit base path that does not exist
func BasePathNotFound(path string) *VenvdirError {
	return withKind(KindBasePathNotFound, New(ExitPathNotFound, fmt.Sprintf("base path '%s' does not exist", path)))
}

// PathNotFound returns an error for an environment path that does not exist
func PathNotFound(path string) *VenvdirError {
	return withKind(KindPathNotFound, New(ExitPathNotFound, fmt.Sprintf("venv path '%s' does not exist", path)))
}

// CreationFailed returns an error for a failed environment creation
func CreationFailed(envPath string, cause error) *VenvdirError {
	return withKind(KindCreationFailed, Wrap(ExitCreationFailed, fmt.Sprintf("failed to create virtual environment '%s'", envPath), cause))
}

// ConfigError returns an error for configuration and entries-file issues
func ConfigError(message string, cause error) *VenvdirError {
	return withKind(KindConfig, Wrap(ExitConfigError, message, cause))
}

// IOError returns an error for filesystem failures
func IOError(message string, cause error) *VenvdirError {
	return withKind(KindIO, Wrap(ExitIOError, message, cause))
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *VenvdirError {
	return withKind(KindValidation, New(ExitGeneralError, message))
}

func withKind(k Kind, e *VenvdirError) *VenvdirError {
	e.Kind = k
	return e
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var venvErr *VenvdirError
	if errors.As(err, &venvErr) {
		return venvErr.ExitCode()
	}
	return ExitGeneralError
}

// HasCode reports whether err carries the given exit code
func HasCode(err error, code int) bool {
	var venvErr *VenvdirError
	return errors.As(err, &venvErr) && venvErr.Code == code
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
