package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vendorsum/internal/report"
	"github.com/vvka-141/vendorsum/internal/summary"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Write vendor_sales_summary to an Excel workbook",
	Long: `Export writes every row of vendor_sales_summary to a new xlsx workbook with a
single sheet named vendor_sales_summary. The first row holds the column names.
An existing file is overwritten.

Examples:
  vendorsum export summary.xlsx -d inventory`,
	Args:              requireXLSXFile,
	ValidArgsFunction: completeXLSXFiles,
	RunE:              runExport,
}

type exportFlagValues struct {
	conn connectionFlags
}

var exportFlags exportFlagValues

func init() {
	rootCmd.AddCommand(exportCmd)
	addConnectionFlags(exportCmd, &exportFlags.conn)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := newSession(cmd, &exportFlags.conn)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(s.timeout)
	defer cancel()

	pool, release, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer release()

	rows, err := summary.Fetch(ctx, pool, 0)
	if err != nil {
		return err
	}

	if err := report.ExportXLSX(path, rows); err != nil {
		return fmt.Errorf("export failed: %w: %w", vendorsum.ErrWriteFailed, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d row(s) to %s\n", len(rows), path)
	return nil
}
