// Package store is the relational store shared by the Loader and the
// Summarizer.
//
// WriteTable replaces a table wholesale: the old table is dropped, a new one
// is created from the column types of the in-memory Table, and the rows are
// streamed in with COPY. Identifiers are always quoted, so column names keep
// their case and may contain spaces or punctuation.
//
// Each statement runs on its own; a failure part way through a write can leave
// the table dropped or partially filled.
package store
