package vendorsum

import (
	"context"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector establishes the connection pool to the store.
// Different implementations handle the authentication methods.
type Connector interface {
	// Connect establishes a connection pool to the database.
	// The returned pool should be closed by the caller when done.
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}

// FileScanner selects input files from a directory.
type FileScanner interface {
	// ScanDirectory lists the regular files directly inside dir whose name ends in extension.
	ScanDirectory(dir, extension string) (FileScanResult, error)

	// OpenFile opens a scanned file for reading.
	OpenFile(path string) (io.ReadCloser, error)
}

// TableWriter writes a table to the store with replace semantics.
type TableWriter interface {
	// WriteTable drops the named table if present, recreates it from the
	// table's columns and inserts all rows. No index column is added.
	WriteTable(ctx context.Context, table *Table, name string) error
}

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before the next attempt.
	// attempt is zero-indexed (0 = first retry).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts (0 = no retries, -1 = unlimited).
	MaxAttempts() int
}
