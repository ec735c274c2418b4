package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/vendorsum/internal/retry"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns bounds the pool. Loader and Summarizer run sequentially,
	// so a small pool is enough.
	DefaultMaxConns = 4

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps connections alive across a full load.
	DefaultMaxConnIdleTime = 30 * time.Minute

	// tokenExpiryWarning is the remaining token lifetime below which a warning is logged.
	tokenExpiryWarning = 5 * time.Minute
)

func configurePool(poolConfig *pgxpool.Config, logger vendorsum.Logger) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		logger.Verbose("%s: %s", notice.Severity, notice.Message)
	}
}

// PoolConnector implements vendorsum.Connector for password and token
// authentication. With a TokenProvider set, a fresh token is acquired on
// every attempt and used as the password.
type PoolConnector struct {
	config        *vendorsum.ConnectionConfig
	tokenProvider TokenProvider
	providerName  string
	retryExecutor *retry.Executor
	logger        vendorsum.Logger
}

// NewStandardConnector creates a connector for username/password authentication.
// Retry uses DefaultRetryMaxAttempts attempts with exponential backoff
// starting at DefaultRetryInitialDelay, capped at DefaultRetryMaxDelay.
func NewStandardConnector(config *vendorsum.ConnectionConfig, logger vendorsum.Logger) *PoolConnector {
	return newPoolConnector(config, nil, "", logger)
}

// NewTokenBasedConnector creates a connector that authenticates with tokens
// from tokenProvider. providerName appears in log and error messages.
func NewTokenBasedConnector(config *vendorsum.ConnectionConfig, tokenProvider TokenProvider, providerName string, logger vendorsum.Logger) *PoolConnector {
	if tokenProvider == nil {
		panic("tokenProvider cannot be nil")
	}
	return newPoolConnector(config, tokenProvider, providerName, logger)
}

func newPoolConnector(config *vendorsum.ConnectionConfig, tokenProvider TokenProvider, providerName string, logger vendorsum.Logger) *PoolConnector {
	if config == nil {
		panic("config cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	strategy := retry.NewExponentialBackoff(vendorsum.DefaultRetryMaxAttempts,
		retry.WithInitialDelay(vendorsum.DefaultRetryInitialDelay),
		retry.WithMaxDelay(vendorsum.DefaultRetryMaxDelay),
	)
	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("connection attempt %d failed, retrying in %v: %v", attempt+1, delay, err)
		})

	return &PoolConnector{
		config:        config,
		tokenProvider: tokenProvider,
		providerName:  providerName,
		retryExecutor: executor,
		logger:        logger,
	}
}

// Connect establishes a connection pool and pings it, retrying transient failures.
func (c *PoolConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	return retry.Do(ctx, c.retryExecutor, c.connectOnce)
}

func (c *PoolConnector) connectOnce(ctx context.Context) (*pgxpool.Pool, error) {
	cfg := *c.config
	if c.tokenProvider != nil {
		token, expiresOn, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire %s token: %w: %w", c.providerName, vendorsum.ErrConnectionFailed, err)
		}
		if remaining := time.Until(expiresOn); remaining < tokenExpiryWarning {
			c.logger.Info("Warning: %s token expires in %v", c.providerName, remaining.Round(time.Second))
		}
		c.logger.Verbose("acquired token from %s", c.tokenProvider)
		cfg.Password = token
	}

	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(&cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", vendorsum.ErrInvalidConfig)
	}
	configurePool(poolConfig, c.logger)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, cfg.Host, cfg.Port, cfg.Database)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, cfg.Host, cfg.Port, cfg.Database)
	}

	c.logger.Verbose("connected to %s:%d/%s as %s (%s)", cfg.Host, cfg.Port, cfg.Database, cfg.Username, cfg.AuthMethod)
	return pool, nil
}

// NewConnector creates the Connector matching config.AuthMethod.
// A *GoogleCloudSQLConnector also implements io.Closer.
func NewConnector(config *vendorsum.ConnectionConfig, logger vendorsum.Logger) (vendorsum.Connector, error) {
	switch config.AuthMethod {
	case vendorsum.AuthMethodStandard:
		return NewStandardConnector(config, logger), nil
	case vendorsum.AuthMethodAWSIAM:
		return newAWSConnector(config, logger)
	case vendorsum.AuthMethodGoogleIAM:
		return newGoogleConnector(config, logger)
	case vendorsum.AuthMethodAzureEntraID:
		return newAzureConnector(config, logger)
	default:
		return nil, fmt.Errorf("unsupported auth method %v: %w", config.AuthMethod, vendorsum.ErrUnsupportedAuthMethod)
	}
}

// wrapConnectionError adds guidance for common pgx connection failures.
// The result wraps both ErrConnectionFailed and the original error so the
// retry classifier still sees the underlying cause.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	var hint string
	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		hint = fmt.Sprintf("connection refused to %s (is PostgreSQL running? check: pg_isready -h %s -p %d)", addr, host, port)
	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		hint = fmt.Sprintf("cannot resolve host %q", host)
	case strings.Contains(errStr, "password authentication failed"):
		hint = fmt.Sprintf("password authentication failed for database %q (check $PGPASSWORD or ~/.pgpass)", database)
	case strings.Contains(errStr, "does not exist"):
		hint = fmt.Sprintf("database %q does not exist (create it with: createdb %s)", database, database)
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		hint = fmt.Sprintf("connection timed out to %s", addr)
	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		hint = "SSL/TLS connection error (check --sslmode and the sslcert/sslkey settings)"
	case strings.Contains(errStr, "too many connections"):
		hint = fmt.Sprintf("too many connections to database %q", database)
	default:
		hint = "failed to connect to database"
	}
	return fmt.Errorf("%s: %w: %w", hint, vendorsum.ErrConnectionFailed, err)
}

func newAWSConnector(config *vendorsum.ConnectionConfig, logger vendorsum.Logger) (vendorsum.Connector, error) {
	endpoint := fmt.Sprintf("%s:%d", config.Host, config.Port)

	tokenProvider, err := NewAWSIAMTokenProvider(endpoint, config.AWSRegion, config.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS IAM token provider: %w", err)
	}
	return NewTokenBasedConnector(config, tokenProvider, "AWS IAM", logger), nil
}

func newGoogleConnector(config *vendorsum.ConnectionConfig, logger vendorsum.Logger) (vendorsum.Connector, error) {
	if config.GoogleInstance == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires --google-instance (project:region:instance): %w", vendorsum.ErrInvalidConfig)
	}
	if config.Username == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires username (-U): %w", vendorsum.ErrInvalidConfig)
	}
	return NewGoogleCloudSQLConnector(config, config.GoogleInstance, logger), nil
}

// newAzureConnector uses a Service Principal when tenant, client and secret
// are all set, otherwise the DefaultAzureCredential chain.
func newAzureConnector(config *vendorsum.ConnectionConfig, logger vendorsum.Logger) (vendorsum.Connector, error) {
	var tokenProvider TokenProvider
	var err error

	if config.AzureTenantID != "" && config.AzureClientID != "" && config.AzureClientSecret != "" {
		tokenProvider, err = NewAzureServicePrincipalProvider(config.AzureTenantID, config.AzureClientID, config.AzureClientSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Service Principal provider: %w", err)
		}
	} else {
		tokenProvider, err = NewAzureDefaultCredentialProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Default Credential provider: %w", err)
		}
	}
	return NewTokenBasedConnector(config, tokenProvider, "Azure", logger), nil
}

var _ vendorsum.Connector = (*PoolConnector)(nil)
