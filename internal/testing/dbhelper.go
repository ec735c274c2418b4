// Package testing holds helpers shared by integration tests that need a
// PostgreSQL database.
package testing

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/vendorsum/internal/db"
	"github.com/vvka-141/vendorsum/internal/testinfra"
)

// TestConnEnvVar points integration tests at an existing server instead of a
// container.
const TestConnEnvVar = "VENDORSUM_TEST_CONN"

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error

	unsafeDBChars = regexp.MustCompile(`[^a-z0-9_]+`)
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		container, err := testinfra.StartPostgres(context.Background())
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// GetTestConnectionString returns the maintenance connection string.
// Priority: VENDORSUM_TEST_CONN > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv(TestConnEnvVar); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("%s not set and Docker unavailable: %v", TestConnEnvVar, err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}

// TestDBName derives a database name from the test name.
func TestDBName(t *testing.T) string {
	name := strings.ToLower(t.Name())
	name = unsafeDBChars.ReplaceAllString(name, "_")
	name = "vendorsum_test_" + name
	if len(name) > 63 {
		name = name[:63]
	}
	return name
}

// NewTestDB creates a fresh database for the current test and returns its
// connection string plus an open pool. Both are cleaned up with the test.
func NewTestDB(t *testing.T) (string, *pgxpool.Pool) {
	t.Helper()

	connString := RequireDatabase(t)
	dbName := TestDBName(t)

	CleanupTestDB(t, connString, dbName)
	CreateTestDB(t, connString, dbName)
	t.Cleanup(func() { CleanupTestDB(t, connString, dbName) })

	target := TargetConnectionString(t, connString, dbName)
	return target, GetTestPool(t, target)
}

// CreateTestDB creates the named database.
func CreateTestDB(t *testing.T, connString, dbName string) {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect for test DB creation: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{dbName}.Sanitize())); err != nil {
		t.Fatalf("Failed to create test database %s: %v", dbName, err)
	}
}

// CleanupTestDB drops the database, terminating leftover sessions first.
// Safe to call when the database does not exist.
func CleanupTestDB(t *testing.T, connString, dbName string) {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Logf("Warning: Failed to connect for cleanup: %v", err)
		return
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName)
	if err != nil {
		t.Logf("Warning: Failed to terminate connections to %s: %v", dbName, err)
	}

	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", pgx.Identifier{dbName}.Sanitize())); err != nil {
		t.Logf("Warning: Failed to drop database %s: %v", dbName, err)
	}
}

// TargetConnectionString rewrites connString to point at dbName.
func TargetConnectionString(t *testing.T, connString, dbName string) string {
	t.Helper()

	config, err := db.ParseConnectionString(connString)
	if err != nil {
		t.Fatalf("Failed to parse connection string: %v", err)
	}
	config.Database = dbName
	return db.BuildConnectionString(config)
}

// GetTestPool opens a pool that is closed when the test completes.
func GetTestPool(t *testing.T, connString string) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
