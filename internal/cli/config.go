package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spf13/pflag"

	"github.com/vvka-141/vendorsum/internal/config"
	"github.com/vvka-141/vendorsum/internal/tui"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, save or interactively create the configuration",
	Long: `Config resolves flags, environment variables, .env and vendorsum.yaml the same
way the other commands do and prints the result as vendorsum.yaml content.
The password is never printed.

With --write the result is saved to vendorsum.yaml (or the --config path), so
later runs need no flags.

Run on a terminal without flags, config starts a wizard that asks for the
database provider and connection, tests the connection, asks for the input
and log directories and the timeout, and saves vendorsum.yaml. Set
VENDORSUM_NON_INTERACTIVE=1 to print instead.

Examples:
  vendorsum config
  vendorsum config -h db.internal -d inventory
  vendorsum config -h db.internal -d inventory --ext .csv --write`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

type configFlagValues struct {
	conn  connectionFlags
	input inputFlags
	dir   string
	write bool
}

var configFlags configFlagValues

// Replaced in tests.
var (
	isInteractive = tui.IsInteractive
	runWizard     = func(seed *config.ProjectConfig) (tui.ConfigResult, error) {
		return tui.RunConfigWizard(seed)
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	addConnectionFlags(configCmd, &configFlags.conn)
	addInputFlags(configCmd, &configFlags.input)
	configCmd.Flags().StringVar(&configFlags.dir, "input-dir", "",
		"Input directory for load and run (default: data)")
	configCmd.Flags().BoolVar(&configFlags.write, "write", false,
		"Save the effective configuration instead of printing it")
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, &configFlags.conn)
	if err != nil {
		return err
	}

	var dirArgs []string
	if configFlags.dir != "" {
		dirArgs = []string{configFlags.dir}
	}
	effective := effectiveConfig(s,
		resolveLoadConfig(dirArgs, configFlags.input.extension, s.project),
		resolveLogDir(configFlags.input.logDir, s.project))

	path := configFlags.conn.configPath
	if path == "" {
		path = config.ConfigFileName
	}

	if wantsWizard(cmd) {
		result, err := runWizard(effective)
		if err != nil {
			return fmt.Errorf("config wizard failed: %w", err)
		}
		if result.Cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing saved.")
			return nil
		}
		return saveConfig(cmd, path, &result.Config)
	}

	if !configFlags.write {
		data, err := yaml.Marshal(effective)
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return saveConfig(cmd, path, effective)
}

// wantsWizard reports whether config runs on a terminal with no flags that
// select or change a setting.
func wantsWizard(cmd *cobra.Command) bool {
	if !isInteractive() {
		return false
	}
	bare := true
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "config", "verbose":
		default:
			bare = false
		}
	})
	return bare
}

func saveConfig(cmd *cobra.Command, path string, cfg *config.ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}

// effectiveConfig renders a resolved session back into the config file shape.
func effectiveConfig(s *session, load vendorsum.LoadConfig, logDir string) *config.ProjectConfig {
	c := s.conn
	return &config.ProjectConfig{
		Connection: config.ConnectionConfig{
			Host:           c.Host,
			Port:           c.Port,
			Username:       c.Username,
			Database:       c.Database,
			SSLMode:        c.SSLMode,
			SSLCert:        c.SSLCert,
			SSLKey:         c.SSLKey,
			SSLRootCert:    c.SSLRootCert,
			AuthMethod:     authMethodName(c.AuthMethod),
			AzureTenantID:  c.AzureTenantID,
			AzureClientID:  c.AzureClientID,
			AWSRegion:      c.AWSRegion,
			GoogleInstance: c.GoogleInstance,
		},
		Input:   config.InputConfig{Dir: load.InputDir, Extension: load.Extension},
		Logs:    config.LogsConfig{Dir: logDir},
		Timeout: s.timeout.String(),
	}
}

// authMethodName is the inverse of db.ParseAuthMethod.
func authMethodName(m vendorsum.AuthMethod) string {
	switch m {
	case vendorsum.AuthMethodAWSIAM:
		return "aws"
	case vendorsum.AuthMethodAzureEntraID:
		return "azure"
	case vendorsum.AuthMethodGoogleIAM:
		return "google"
	default:
		return "standard"
	}
}
