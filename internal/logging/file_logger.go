package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat renders times as "2006-01-02 15:04:05,000".
const TimestampFormat = "2006-01-02 15:04:05,000"

// LineFormatter renders "<timestamp> - <LEVEL> - <message>" lines.
type LineFormatter struct{}

// Format implements logrus.Formatter.
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Time.Format(TimestampFormat))
	b.WriteString(" - ")
	b.WriteString(levelName(entry.Level))
	b.WriteString(" - ")
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.FatalLevel, logrus.PanicLevel:
		return "CRITICAL"
	default:
		return strings.ToUpper(level.String())
	}
}

// FileLogger appends to a log file through logrus. Verbose maps to DEBUG.
type FileLogger struct {
	log    *logrus.Logger
	closer io.Closer
}

// OpenFileLogger opens dir/name for appending, creating dir if needed.
// Messages below level are discarded. Close the logger when done.
func OpenFileLogger(dir, name string, level logrus.Level) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	l := NewFileLogger(f, level)
	l.closer = f
	return l, nil
}

// NewFileLogger creates a FileLogger writing to w.
func NewFileLogger(w io.Writer, level logrus.Level) *FileLogger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&LineFormatter{})
	log.SetLevel(level)
	return &FileLogger{log: log}
}

func (l *FileLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug(formatMessage(format, args))
}

func (l *FileLogger) Info(format string, args ...interface{}) {
	l.log.Info(formatMessage(format, args))
}

func (l *FileLogger) Error(format string, args ...interface{}) {
	l.log.Error(formatMessage(format, args))
}

// Close closes the underlying file, if the logger owns one.
func (l *FileLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
