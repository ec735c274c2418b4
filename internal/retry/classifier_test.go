package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgreSQLErrorClassifier_IsTransient(t *testing.T) {
	c := NewPostgreSQLErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"too many connections", &pgconn.PgError{Code: "53300"}, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"cannot connect now", &pgconn.PgError{Code: "57P03"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, true},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, false},
		{"invalid password", &pgconn.PgError{Code: "28P01"}, false},
		{"wrapped pg error", fmt.Errorf("connect: %w", &pgconn.PgError{Code: "08001"}), true},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"connection reset", &net.OpError{Op: "read", Err: syscall.ECONNRESET}, true},
		{"permission denied", &net.OpError{Op: "dial", Err: syscall.EACCES}, false},
		{"temporary dns", &net.DNSError{Err: "server misbehaving", IsTemporary: true}, true},
		{"unknown host", &net.DNSError{Err: "no such host", IsNotFound: true}, true},
		{"message pattern", errors.New("failed to connect: Connection Refused"), true},
		{"starting up", errors.New("FATAL: the database system is starting up"), true},
		{"context canceled", context.Canceled, false},
		{"plain", errors.New("bad input"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTransient(tt.err))
		})
	}
}
