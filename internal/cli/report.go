package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vendorsum/internal/report"
	"github.com/vvka-141/vendorsum/internal/summary"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the top rows of vendor_sales_summary",
	Long: `Report prints the rows of vendor_sales_summary with the highest purchase
dollars. Money is shown with two decimals; ratios with a zero denominator
show as NaN, +Inf or -Inf.

Colors and rounded borders are used when stdout is a terminal and NO_COLOR
is unset.

Examples:
  vendorsum report
  vendorsum report --top 25 -d inventory
  vendorsum report --top 0    # all rows`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

type reportFlagValues struct {
	conn connectionFlags
	top  int
}

var reportFlags reportFlagValues

func init() {
	rootCmd.AddCommand(reportCmd)
	addConnectionFlags(reportCmd, &reportFlags.conn)
	reportCmd.Flags().IntVar(&reportFlags.top, "top", vendorsum.DefaultReportTop,
		"Number of rows to print (0 prints all)")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportFlags.top < 0 {
		return fmt.Errorf("--top must not be negative: %w", vendorsum.ErrInvalidConfig)
	}

	s, err := newSession(cmd, &reportFlags.conn)
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

	rows, err := summary.Fetch(ctx, pool, reportFlags.top)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := out == os.Stdout && report.UseStyle(os.Stdout)
	return report.Render(out, rows, report.Options{Styled: styled})
}
