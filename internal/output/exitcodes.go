package output

import "errors"

// Exit codes. Every failure exits 1; Kind distinguishes the cause in JSON
// output.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Error kinds reported alongside the exit code.
const (
	KindUsage     = "usage"     // bad arguments or flags
	KindConflict  = "conflict"  // primary document already exists
	KindDirectory = "directory" // output directory unavailable
	KindWrite     = "write"     // filesystem write failed
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Kind    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for bad arguments or flags.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindUsage, Message: message}
}

// NewConflictError creates an error for an occupied output path.
func NewConflictError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindConflict, Message: message, Cause: cause}
}

// NewDirectoryError creates an error for an unresolvable or uncreatable directory.
func NewDirectoryError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindDirectory, Message: message, Cause: cause}
}

// NewWriteError creates an error for a failed file write.
func NewWriteError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindWrite, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
