package fsops

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Filesystem failures during an operation are not reported through errors:
// the recursive operations are best-effort and signal them only through their
// boolean or slice results. A false result can mean "nothing to do" as well as
// "the call failed"; inspect the filesystem afterwards when the difference matters.
var (
	// ErrInvalidArgument indicates a required handle or path was missing.
	// It is always returned before any filesystem mutation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidName indicates a file name contains reserved characters.
	ErrInvalidName = errors.New("invalid file name")

	// ErrInvalidConfig indicates the project configuration could not be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, ErrInvalidArgument):
		return ExitInvalidArgument
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
