package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are slash-separated; relative paths resolve against the root.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem with an empty root directory.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = &memoryEntry{info: dirInfo(path.Base(root))}
	return mfs
}

func dirInfo(name string) *memoryFileInfo {
	return &memoryFileInfo{name: name, mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true}
}

// AddFile adds a file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	data := []byte(content)
	mfs.entries[absPath] = &memoryEntry{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureParents(absPath)
}

// AddDir adds an empty directory, creating parents as needed.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = &memoryEntry{info: dirInfo(path.Base(absPath))}
	}
	mfs.ensureParents(absPath)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) ensureParents(p string) {
	for dir := path.Dir(p); dir != p; p, dir = dir, path.Dir(dir) {
		if _, exists := mfs.entries[dir]; exists {
			return
		}
		mfs.entries[dir] = &memoryEntry{info: dirInfo(path.Base(dir))}
	}
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s: %w", dirPath, fs.ErrNotExist)
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("failed to read directory: %s is not a directory", dirPath)
	}

	prefix := absPath + "/"
	if absPath == "/" {
		prefix = "/"
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p == absPath || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(p, prefix), "/") {
			continue
		}
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("open %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("open %s: is a directory", filePath)
	}
	return io.NopCloser(bytes.NewReader(entry.content)), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("stat %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
