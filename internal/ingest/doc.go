// Package ingest loads every input file of a directory into the store, one
// table per file, replacing tables left by earlier runs.
package ingest
