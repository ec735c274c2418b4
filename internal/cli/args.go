package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// optionalInputDir accepts zero or one input directory argument.
func optionalInputDir(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./data`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// requireXLSXFile validates the single output file argument of export.
func requireXLSXFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf(`accepts 1 arg(s), received %d

Usage: %s

Example:
  %s vendor_sales_summary.xlsx`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	if !strings.EqualFold(filepath.Ext(args[0]), ".xlsx") {
		return fmt.Errorf("invalid argument %q: output file must have the .xlsx extension", args[0])
	}
	return nil
}
