package db

import (
	"context"
	"fmt"
	"io"
	"net"

	"cloud.google.com/go/cloudsqlconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// GoogleCloudSQLConnector connects to Cloud SQL with IAM database
// authentication through the Cloud SQL Go Connector.
//
// Close must be called after the returned pool is closed.
type GoogleCloudSQLConnector struct {
	config   *vendorsum.ConnectionConfig
	instance string
	logger   vendorsum.Logger
	dialer   *cloudsqlconn.Dialer
}

// NewGoogleCloudSQLConnector creates a connector for the instance
// connection name project:region:instance.
func NewGoogleCloudSQLConnector(config *vendorsum.ConnectionConfig, instance string, logger vendorsum.Logger) *GoogleCloudSQLConnector {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GoogleCloudSQLConnector{config: config, instance: instance, logger: logger}
}

// Connect implements vendorsum.Connector. TLS and token refresh are handled by the dialer.
func (c *GoogleCloudSQLConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	dialer, err := cloudsqlconn.NewDialer(ctx, cloudsqlconn.WithIAMAuthN())
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud SQL dialer: %w: %w", vendorsum.ErrConnectionFailed, err)
	}

	dsn := fmt.Sprintf("user=%s dbname=%s sslmode=disable", c.config.Username, c.config.Database)
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		dialer.Close()
		return nil, fmt.Errorf("failed to parse connection config: %w", vendorsum.ErrInvalidConfig)
	}
	poolConfig.ConnConfig.DialFunc = func(ctx context.Context, _, _ string) (net.Conn, error) {
		return dialer.Dial(ctx, c.instance)
	}
	configurePool(poolConfig, c.logger)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		dialer.Close()
		return nil, wrapConnectionError(err, c.instance, 0, c.config.Database)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		dialer.Close()
		return nil, wrapConnectionError(err, c.instance, 0, c.config.Database)
	}

	c.logger.Verbose("connected to Cloud SQL instance %s/%s as %s", c.instance, c.config.Database, c.config.Username)
	c.dialer = dialer
	return pool, nil
}

// Close releases the Cloud SQL dialer.
func (c *GoogleCloudSQLConnector) Close() error {
	if c.dialer == nil {
		return nil
	}
	err := c.dialer.Close()
	c.dialer = nil
	return err
}

var (
	_ vendorsum.Connector = (*GoogleCloudSQLConnector)(nil)
	_ io.Closer           = (*GoogleCloudSQLConnector)(nil)
)
