package report

import (
	"fmt"

	"github.com/vvka-141/vendorsum/internal/summary"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
	"github.com/xuri/excelize/v2"
)

// moneyFormat is the built-in excel number format "#,##0.00".
const moneyFormat = 4

// ExportXLSX writes every row to a new workbook at path with a single sheet
// named after the summary table. The first row holds the column names.
func ExportXLSX(path string, rows []vendorsum.SummaryRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	sheet := vendorsum.SummaryTable
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(summary.Columns))
	for i, c := range summary.Columns {
		header[i] = c.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := cellValues(r)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := styleSheet(f, sheet, len(rows)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// cellValues converts a row for excel. Non-finite floats are written as text
// because the xlsx format has no NaN or infinity.
func cellValues(r vendorsum.SummaryRow) []interface{} {
	values := summary.Values(r)
	for i, v := range values {
		if f, ok := v.(float64); ok && !isFinite(f) {
			values[i] = formatFixed(f, 2)
		}
	}
	return values
}

func styleSheet(f *excelize.File, sheet string, rowCount int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(summary.Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	if rowCount > 0 {
		money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
		if err != nil {
			return err
		}
		for i, c := range summary.Columns {
			if !isMoneyColumn(c.Name) {
				continue
			}
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, col+"2", fmt.Sprintf("%s%d", col, rowCount+1), money); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func isMoneyColumn(name string) bool {
	switch name {
	case "PurchasePrice", "ActualPrice", "TotalPurchaseDollars", "TotalSalesDollars",
		"TotalSalesPrice", "TotalExciseTax", "FreightCost", "GrossProfit":
		return true
	}
	return false
}
