// Package scanner selects the Loader's input files.
//
// A scan lists the entries directly inside the input directory (no recursion)
// and keeps the regular files whose name ends in the configured extension.
// Each selected file carries the table name it will be written under: the file
// name with the extension stripped.
//
// The scanner reads through filesystem.FileSystemProvider so tests can use an
// in-memory filesystem.
package scanner
