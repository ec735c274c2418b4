package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vvka-141/vendorsum/internal/config"
	"github.com/vvka-141/vendorsum/internal/db"
	"github.com/vvka-141/vendorsum/internal/logging"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// session holds everything a database command resolves before connecting.
type session struct {
	project *config.ProjectConfig
	conn    *vendorsum.ConnectionConfig
	timeout time.Duration
	verbose bool
	logger  vendorsum.Logger
}

func newSession(cmd *cobra.Command, flags *connectionFlags) (*session, error) {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	project, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	conn, err := db.ResolveConnectionParams(
		flags.connection,
		flags.granular(),
		flags.auth(),
		db.LoadFromEnvironment(),
		project,
	)
	if err != nil {
		return nil, err
	}

	timeout, err := resolveEffectiveTimeout(cmd, project, flags.timeout)
	if err != nil {
		return nil, err
	}

	if verbose {
		logConnectionVerbose(logger, conn)
	}

	return &session{
		project: project,
		conn:    conn,
		timeout: timeout,
		verbose: verbose,
		logger:  logger,
	}, nil
}

// loadProjectConfig loads .env and then the project config. A missing
// ./vendorsum.yaml is not an error; a missing --config file is.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", path, vendorsum.ErrInvalidConfig, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, vendorsum.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolveEffectiveTimeout prefers an explicit --timeout, then vendorsum.yaml, then the flag default.
func resolveEffectiveTimeout(cmd *cobra.Command, project *config.ProjectConfig, flagTimeout time.Duration) (time.Duration, error) {
	if cmd.Flags().Changed("timeout") {
		if flagTimeout <= 0 {
			return 0, fmt.Errorf("--timeout must be positive: %w", vendorsum.ErrInvalidConfig)
		}
		return flagTimeout, nil
	}

	timeout, err := project.TimeoutDuration()
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", config.ConfigFileName, vendorsum.ErrInvalidConfig, err)
	}
	if timeout == 0 {
		return flagTimeout, nil
	}
	return timeout, nil
}

func logConnectionVerbose(logger vendorsum.Logger, conn *vendorsum.ConnectionConfig) {
	logger.Verbose("Connection resolved:")
	logger.Verbose("  Host: %s", conn.Host)
	logger.Verbose("  Port: %d", conn.Port)
	logger.Verbose("  User: %s", conn.Username)
	logger.Verbose("  Database: %s", conn.Database)
	logger.Verbose("  SSL Mode: %s", conn.SSLMode)
	logger.Verbose("  Auth Method: %s", conn.AuthMethod)
	if conn.GoogleInstance != "" {
		logger.Verbose("  Cloud SQL Instance: %s", conn.GoogleInstance)
	}
}

// commandContext bounds a command by timeout and cancels it on SIGINT or SIGTERM.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

// connect opens the pool for the session. The returned release function
// closes the pool and then the connector when it holds resources.
func (s *session) connect(ctx context.Context) (*pgxpool.Pool, func(), error) {
	connector, err := db.NewConnector(s.conn, s.logger)
	if err != nil {
		return nil, nil, err
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		closeConnector(connector)
		return nil, nil, err
	}

	return pool, func() {
		pool.Close()
		closeConnector(connector)
	}, nil
}

func closeConnector(connector vendorsum.Connector) {
	if closer, ok := connector.(io.Closer); ok {
		_ = closer.Close()
	}
}

// resolveLoadConfig picks the input directory and extension:
// argument or flag first, then vendorsum.yaml, then the defaults.
func resolveLoadConfig(args []string, extFlag string, project *config.ProjectConfig) vendorsum.LoadConfig {
	var input config.InputConfig
	if project != nil {
		input = project.Input
	}

	dir := input.Dir
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if dir == "" {
		dir = vendorsum.DefaultInputDir
	}

	ext := extFlag
	if ext == "" {
		ext = input.Extension
	}
	if ext == "" {
		ext = vendorsum.DefaultExtension
	}

	return vendorsum.LoadConfig{InputDir: dir, Extension: ext}
}

// resolveLogDir picks --log-dir, then vendorsum.yaml, then the default.
func resolveLogDir(flagDir string, project *config.ProjectConfig) string {
	if flagDir != "" {
		return flagDir
	}
	if project != nil && project.Logs.Dir != "" {
		return project.Logs.Dir
	}
	return vendorsum.DefaultLogDir
}
