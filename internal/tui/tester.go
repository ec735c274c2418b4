package tui

import (
	"context"
	"io"
	"strings"

	"github.com/vvka-141/vendorsum/internal/db"
	"github.com/vvka-141/vendorsum/internal/logging"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// ConnectionTester tests database connectivity.
type ConnectionTester interface {
	TestConnection(ctx context.Context, cfg *vendorsum.ConnectionConfig) (info string, err error)
}

// poolTester connects the way the other commands do, so cloud tokens and
// retries are exercised as well.
type poolTester struct{}

func (poolTester) TestConnection(ctx context.Context, cfg *vendorsum.ConnectionConfig) (string, error) {
	connector, err := db.NewConnector(cfg, logging.NewNullLogger())
	if err != nil {
		return "", err
	}
	if closer, ok := connector.(io.Closer); ok {
		defer closer.Close()
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return "", err
	}
	defer pool.Close()

	var version string
	if err := pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", err
	}
	if idx := strings.Index(version, ","); idx > 0 {
		version = version[:idx]
	}
	return version, nil
}
