// Package files groups the input-side file handling of the Loader.
//
//   - filesystem: provider abstraction over the OS filesystem and an in-memory
//     filesystem used by tests
//   - scanner: selects input files from a directory by extension
package files
