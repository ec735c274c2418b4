package scanner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/vendorsum/internal/files/filesystem"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// Scanner discovers input files in a directory.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// ScanDirectory lists the regular files directly inside dir whose name ends in
// extension, in lexical order. Matching is case-sensitive. Directories are
// skipped even when their name matches.
func (s *Scanner) ScanDirectory(dir, extension string) (vendorsum.FileScanResult, error) {
	if extension == "" {
		return vendorsum.FileScanResult{}, fmt.Errorf("extension is required: %w", vendorsum.ErrInvalidConfig)
	}

	info, err := s.fsProvider.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vendorsum.FileScanResult{}, fmt.Errorf("input directory %s does not exist: %w", dir, vendorsum.ErrInputNotFound)
		}
		return vendorsum.FileScanResult{}, fmt.Errorf("failed to access input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return vendorsum.FileScanResult{}, fmt.Errorf("input path %s is not a directory: %w", dir, vendorsum.ErrInputNotFound)
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return vendorsum.FileScanResult{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []vendorsum.SourceFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, extension) {
			continue
		}

		tableName := TableName(name, extension)
		if tableName == "" {
			return vendorsum.FileScanResult{}, fmt.Errorf("file %q has no name before its extension: %w", name, vendorsum.ErrInvalidConfig)
		}

		files = append(files, vendorsum.SourceFile{
			Path:       filepath.Join(dir, name),
			Name:       name,
			TableName:  tableName,
			SizeBytes:  entry.Size(),
			ModifiedAt: entry.ModTime(),
		})
	}

	return vendorsum.FileScanResult{Files: files}, nil
}

// OpenFile opens a scanned file for reading.
func (s *Scanner) OpenFile(path string) (io.ReadCloser, error) {
	return s.fsProvider.OpenFile(path)
}

// TableName strips extension from a file name.
func TableName(fileName, extension string) string {
	return strings.TrimSuffix(fileName, extension)
}

// Verify Scanner implements the interface at compile time
var _ vendorsum.FileScanner = (*Scanner)(nil)
