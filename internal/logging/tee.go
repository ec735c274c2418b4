package logging

import "github.com/vvka-141/vendorsum/pkg/vendorsum"

type teeLogger []vendorsum.Logger

// Tee returns a logger that forwards every message to each of loggers, in order.
func Tee(loggers ...vendorsum.Logger) vendorsum.Logger {
	out := make(teeLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (t teeLogger) Verbose(format string, args ...interface{}) {
	for _, l := range t {
		l.Verbose(format, args...)
	}
}

func (t teeLogger) Info(format string, args ...interface{}) {
	for _, l := range t {
		l.Info(format, args...)
	}
}

func (t teeLogger) Error(format string, args ...interface{}) {
	for _, l := range t {
		l.Error(format, args...)
	}
}

var (
	_ vendorsum.Logger = (*ConsoleLogger)(nil)
	_ vendorsum.Logger = (*FileLogger)(nil)
	_ vendorsum.Logger = (*NullLogger)(nil)
	_ vendorsum.Logger = teeLogger(nil)
)
