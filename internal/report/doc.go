// Package report presents vendor_sales_summary rows: a console table for
// the report command and an xlsx workbook for the export command.
package report
