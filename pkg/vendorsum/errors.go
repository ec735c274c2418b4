package vendorsum

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a run.
// Callers distinguish them with errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the store could not be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnsupportedAuthMethod indicates the requested authentication method is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported authentication method")

	// ErrInputNotFound indicates the input directory is missing or not a directory.
	ErrInputNotFound = errors.New("input not found")

	// ErrParseFailed indicates an input file or value could not be parsed.
	ErrParseFailed = errors.New("parse failed")

	// ErrInvalidTable indicates a table whose rows do not match its columns.
	ErrInvalidTable = errors.New("invalid table")

	// ErrQueryFailed indicates a SQL query failed.
	ErrQueryFailed = errors.New("query failed")

	// ErrWriteFailed indicates a table could not be written to the store.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedAuthMethod):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrInputNotFound):
		return ExitInputMissing
	case errors.Is(err, ErrParseFailed), errors.Is(err, ErrInvalidTable):
		return ExitParseFailed
	case errors.Is(err, ErrQueryFailed):
		return ExitQueryFailed
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	errStr := err.Error()
	for _, usage := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "required flag", "invalid argument"} {
		if strings.Contains(errStr, usage) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
