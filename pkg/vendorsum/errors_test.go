package vendorsum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, vendorsum.ExitSuccess},
		{"general error", errors.New("something went wrong"), vendorsum.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), vendorsum.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), vendorsum.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--port\""), vendorsum.ExitUsageError},
		{"invalid config", fmt.Errorf("InputDir is required: %w", vendorsum.ErrInvalidConfig), vendorsum.ExitConfigError},
		{"unsupported auth", vendorsum.ErrUnsupportedAuthMethod, vendorsum.ExitConfigError},
		{"connection failed", vendorsum.ErrConnectionFailed, vendorsum.ExitConnectionError},
		{"connection refused text", errors.New("dial tcp: connection refused"), vendorsum.ExitConnectionError},
		{"input missing", fmt.Errorf("scan: %w", vendorsum.ErrInputNotFound), vendorsum.ExitInputMissing},
		{"parse failed", fmt.Errorf("sales.csv: %w", vendorsum.ErrParseFailed), vendorsum.ExitParseFailed},
		{"invalid table", vendorsum.ErrInvalidTable, vendorsum.ExitParseFailed},
		{"query failed", fmt.Errorf("summary: %w", vendorsum.ErrQueryFailed), vendorsum.ExitQueryFailed},
		{"write failed", fmt.Errorf("purchases: %w", vendorsum.ErrWriteFailed), vendorsum.ExitWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vendorsum.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
