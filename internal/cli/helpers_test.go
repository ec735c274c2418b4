package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vvka-141/vendorsum/internal/db"
	"github.com/vvka-141/vendorsum/internal/tui"
)

// executeCommand runs the root command with args and returns its stdout.
// Flag values left over from earlier runs are reset first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// isolateEnvironment runs the test in an empty directory with no
// connection settings inherited from the environment.
func isolateEnvironment(t *testing.T) {
	t.Helper()

	t.Chdir(t.TempDir())
	for _, name := range []string{
		db.ConnectionStringEnvVar, "DATABASE_URL",
		"PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE", "PGSSLMODE",
		"AWS_REGION", "AWS_DEFAULT_REGION", "AZURE_TENANT_ID", "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("USER", "tester")
	t.Setenv(tui.NonInteractiveEnvVar, "1")
}
