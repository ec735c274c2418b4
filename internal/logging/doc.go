// Package logging provides implementations of vendorsum.Logger.
//
//   - ConsoleLogger: human-facing progress on stderr
//   - FileLogger: append-only run log, one timestamped line per message
//   - NullLogger: discards everything
//   - Tee: fans one message out to several loggers
//
// All loggers are safe for concurrent use.
package logging
