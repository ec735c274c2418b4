package vendorsum

// Logger provides a pluggable logging interface.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose (debug) output is enabled.
	Verbose(format string, args ...interface{})

	// Info logs progress of normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
