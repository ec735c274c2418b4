package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider is the set of filesystem operations used for input discovery.
type FileSystemProvider interface {
	// ReadDir returns the entries directly inside path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// OpenFile opens the file at path for reading.
	OpenFile(path string) (io.ReadCloser, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
