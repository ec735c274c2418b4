package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [input_dir]",
	Short: "Ingest every CSV file of a directory into the database",
	Long: `Load scans input_dir (default: data, or input.dir in vendorsum.yaml) for
files ending in the configured extension and writes each one to a table named
after the file without its extension. Existing tables are dropped first.

Subdirectories are skipped. Files are processed in name order and the first
parse or write failure stops the run.

Examples:
  # Load ./data into the database from $DATABASE_URL
  vendorsum load

  # Load a different directory into a named database
  vendorsum load ./exports -d inventory

  # Ingest .txt files
  vendorsum load ./exports --ext .txt`,
	Args:              optionalInputDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runLoad,
}

type loadFlagValues struct {
	conn  connectionFlags
	input inputFlags
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)
	addConnectionFlags(loadCmd, &loadFlags.conn)
	addInputFlags(loadCmd, &loadFlags.input)
}

func runLoad(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, &loadFlags.conn)
	if err != nil {
		return err
	}
	loadCfg := resolveLoadConfig(args, loadFlags.input.extension, s.project)
	if err := loadCfg.Validate(); err != nil {
		return err
	}
	logDir := resolveLogDir(loadFlags.input.logDir, s.project)

	ctx, cancel := commandContext(s.timeout)
	defer cancel()

	pool, release, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer release()

	result, err := runLoader(ctx, pool, loadCfg, logDir, s.logger)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d file(s), %d row(s) from %s\n",
		len(result.Tables), result.TotalRows(), loadCfg.InputDir)
	return nil
}
