package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

var runCmd = &cobra.Command{
	Use:   "run [input_dir]",
	Short: "Load a directory and rebuild the summary in one go",
	Long: `Run performs 'load' followed by 'summarize' over a single connection.
The summary is not built when loading fails.

Examples:
  vendorsum run
  vendorsum run ./data -d inventory -v`,
	Args:              optionalInputDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runRun,
}

type runFlagValues struct {
	conn  connectionFlags
	input inputFlags
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)
	addConnectionFlags(runCmd, &runFlags.conn)
	addInputFlags(runCmd, &runFlags.input)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, &runFlags.conn)
	if err != nil {
		return err
	}
	loadCfg := resolveLoadConfig(args, runFlags.input.extension, s.project)
	if err := loadCfg.Validate(); err != nil {
		return err
	}
	logDir := resolveLogDir(runFlags.input.logDir, s.project)

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

	rows, err := runSummarizer(ctx, pool, logDir, s.logger)
	if err != nil {
		return fmt.Errorf("summarize failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d file(s), %d row(s); wrote %d row(s) to %s\n",
		len(result.Tables), result.TotalRows(), len(rows), vendorsum.SummaryTable)
	return nil
}
