package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Build the vendor_sales_summary table from loaded data",
	Long: `Summarize aggregates the purchases, purchase_prices, sales and vendor_invoice
tables per vendor and brand, derives GrossProfit, ProfitMargin, StockTurnover
and SalesToPurchaseRatio, and replaces the vendor_sales_summary table.

Run 'vendorsum load' first.

Examples:
  vendorsum summarize -d inventory
  vendorsum summarize --connection "postgresql://etl@db.internal/inventory"`,
	Args: cobra.NoArgs,
	RunE: runSummarize,
}

type summarizeFlagValues struct {
	conn   connectionFlags
	logDir string
}

var summarizeFlags summarizeFlagValues

func init() {
	rootCmd.AddCommand(summarizeCmd)
	addConnectionFlags(summarizeCmd, &summarizeFlags.conn)
	addLogDirFlag(summarizeCmd, &summarizeFlags.logDir)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, &summarizeFlags.conn)
	if err != nil {
		return err
	}
	logDir := resolveLogDir(summarizeFlags.logDir, s.project)

	ctx, cancel := commandContext(s.timeout)
	defer cancel()

	pool, release, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer release()

	rows, err := runSummarizer(ctx, pool, logDir, s.logger)
	if err != nil {
		return fmt.Errorf("summarize failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d row(s) to %s\n", len(rows), vendorsum.SummaryTable)
	return nil
}
