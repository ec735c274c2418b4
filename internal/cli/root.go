package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vendorsum",
	Short: "Load inventory CSV files into PostgreSQL and build the vendor sales summary",
	Long: `vendorsum is a two-step ETL for inventory data.

  load       ingests every CSV file in a directory as a table named after the file
  summarize  aggregates purchases, sales, prices and freight per vendor and brand
             into the vendor_sales_summary table

Both steps replace their tables on every run. Progress is appended to
logs/ingestion_db.log and logs/vendor_summary.log.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  12 - Input directory not found
  13 - Input file could not be parsed
  14 - Summary query failed
  15 - Table write failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// -h is the host flag, so help gets no shorthand.
	rootCmd.PersistentFlags().Bool("help", false, "Help for vendorsum")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
