// Package filesystem abstracts the filesystem operations the Loader needs:
// listing a directory, opening a file and stat.
//
// OSFileSystem serves production runs; MemoryFileSystem lets scanner and
// loader tests run without touching disk.
package filesystem
