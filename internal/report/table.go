package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// column is one console column of the report.
type column struct {
	header  string
	numeric bool
	value   func(r vendorsum.SummaryRow) string
	loss    func(r vendorsum.SummaryRow) bool
}

var consoleColumns = []column{
	{header: "Vendor", numeric: true, value: func(r vendorsum.SummaryRow) string { return strconv.FormatInt(r.VendorNumber, 10) }},
	{header: "VendorName", value: func(r vendorsum.SummaryRow) string { return r.VendorName }},
	{header: "Brand", numeric: true, value: func(r vendorsum.SummaryRow) string { return strconv.FormatInt(r.Brand, 10) }},
	{header: "Description", value: func(r vendorsum.SummaryRow) string { return r.Description }},
	{header: "Purchases", numeric: true, value: func(r vendorsum.SummaryRow) string { return formatMoney(r.TotalPurchaseDollars) }},
	{header: "Sales", numeric: true, value: func(r vendorsum.SummaryRow) string { return formatMoney(r.TotalSalesDollars) }},
	{header: "Freight", numeric: true, value: func(r vendorsum.SummaryRow) string { return formatMoney(r.FreightCost) }},
	{
		header: "GrossProfit", numeric: true,
		value: func(r vendorsum.SummaryRow) string { return formatMoney(r.GrossProfit) },
		loss:  func(r vendorsum.SummaryRow) bool { return r.GrossProfit < 0 },
	},
	{
		header: "Margin", numeric: true,
		value: func(r vendorsum.SummaryRow) string { return formatPercent(r.ProfitMargin) },
		loss:  func(r vendorsum.SummaryRow) bool { return r.ProfitMargin < 0 },
	},
	{header: "Turnover", numeric: true, value: func(r vendorsum.SummaryRow) string { return formatFixed(r.StockTurnover, 2) }},
	{header: "Sales/Purchases", numeric: true, value: func(r vendorsum.SummaryRow) string { return formatFixed(r.SalesToPurchaseRatio, 2) }},
}

// Options control console rendering.
type Options struct {
	// Styled enables colors and rounded borders. Plain output uses ASCII borders.
	Styled bool
}

// Render writes rows to w as a table preceded by a title line.
func Render(w io.Writer, rows []vendorsum.SummaryRow, opts Options) error {
	title := fmt.Sprintf("Top %d rows of %s by purchase dollars", len(rows), vendorsum.SummaryTable)
	if opts.Styled {
		title = titleStyle.Render(title)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "%s\n(no rows)\n", title)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", title, buildTable(rows, opts).String())
	return err
}

func buildTable(rows []vendorsum.SummaryRow, opts Options) *table.Table {
	headers := make([]string, len(consoleColumns))
	for i, c := range consoleColumns {
		headers[i] = c.header
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, len(consoleColumns))
		for j, c := range consoleColumns {
			cells[i][j] = strings.TrimSpace(c.value(r))
		}
	}

	t := table.New().Headers(headers...).Rows(cells...)
	if !opts.Styled {
		return t.Border(lipgloss.ASCIIBorder()).StyleFunc(func(_, col int) lipgloss.Style {
			if consoleColumns[col].numeric {
				return numberStyle
			}
			return cellStyle
		})
	}

	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			c := consoleColumns[col]
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case c.loss != nil && row >= 0 && row < len(rows) && c.loss(rows[row]):
				return lossStyle
			case c.numeric:
				return numberStyle
			default:
				return cellStyle
			}
		})
}
