// Package checksum fingerprints input files while they are read, so a load
// can report which exact file contents ended up in each table.
package checksum
