package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// RawRow is one row of the aggregation query before cleaning. Nil means SQL NULL.
type RawRow struct {
	VendorNumber          *int64
	VendorName            *string
	Brand                 *int64
	Description           *string
	PurchasePrice         *float64
	ActualPrice           *float64
	Volume                *string
	TotalPurchaseQuantity *float64
	TotalPurchaseDollars  *float64
	TotalSalesQuantity    *float64
	TotalSalesDollars     *float64
	TotalSalesPrice       *float64
	TotalExciseTax        *float64
	FreightCost           *float64
}

// Columns is the schema of vendor_sales_summary, in order.
var Columns = []vendorsum.Column{
	{Name: "VendorNumber", Type: vendorsum.ColumnInteger},
	{Name: "VendorName", Type: vendorsum.ColumnText},
	{Name: "Brand", Type: vendorsum.ColumnInteger},
	{Name: "Description", Type: vendorsum.ColumnText},
	{Name: "PurchasePrice", Type: vendorsum.ColumnFloat},
	{Name: "ActualPrice", Type: vendorsum.ColumnFloat},
	{Name: "Volume", Type: vendorsum.ColumnFloat},
	{Name: "TotalPurchaseQuantity", Type: vendorsum.ColumnFloat},
	{Name: "TotalPurchaseDollars", Type: vendorsum.ColumnFloat},
	{Name: "TotalSalesQuantity", Type: vendorsum.ColumnFloat},
	{Name: "TotalSalesDollars", Type: vendorsum.ColumnFloat},
	{Name: "TotalSalesPrice", Type: vendorsum.ColumnFloat},
	{Name: "TotalExciseTax", Type: vendorsum.ColumnFloat},
	{Name: "FreightCost", Type: vendorsum.ColumnFloat},
	{Name: "GrossProfit", Type: vendorsum.ColumnFloat},
	{Name: "ProfitMargin", Type: vendorsum.ColumnFloat},
	{Name: "StockTurnover", Type: vendorsum.ColumnFloat},
	{Name: "SalesToPurchaseRatio", Type: vendorsum.ColumnFloat},
}

// Enrich cleans raw rows and computes the derived columns. Row order is kept.
func Enrich(raw []RawRow) ([]vendorsum.SummaryRow, error) {
	out := make([]vendorsum.SummaryRow, len(raw))
	for i, r := range raw {
		volume, err := parseVolume(r.Volume)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		row := vendorsum.SummaryRow{
			VendorNumber:          orZero(r.VendorNumber),
			VendorName:            strings.TrimSpace(orZero(r.VendorName)),
			Brand:                 orZero(r.Brand),
			Description:           strings.TrimSpace(orZero(r.Description)),
			PurchasePrice:         orZero(r.PurchasePrice),
			ActualPrice:           orZero(r.ActualPrice),
			Volume:                volume,
			TotalPurchaseQuantity: orZero(r.TotalPurchaseQuantity),
			TotalPurchaseDollars:  orZero(r.TotalPurchaseDollars),
			TotalSalesQuantity:    orZero(r.TotalSalesQuantity),
			TotalSalesDollars:     orZero(r.TotalSalesDollars),
			TotalSalesPrice:       orZero(r.TotalSalesPrice),
			TotalExciseTax:        orZero(r.TotalExciseTax),
			FreightCost:           orZero(r.FreightCost),
		}

		row.GrossProfit = row.TotalSalesDollars - row.TotalPurchaseDollars
		row.ProfitMargin = row.GrossProfit / row.TotalSalesDollars * 100
		row.StockTurnover = row.TotalSalesQuantity / row.TotalPurchaseQuantity
		row.SalesToPurchaseRatio = row.TotalSalesDollars / row.TotalPurchaseDollars

		out[i] = row
	}
	return out, nil
}

func orZero[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func parseVolume(s *string) (float64, error) {
	if s == nil {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0, fmt.Errorf("volume %q is not numeric: %w", *s, vendorsum.ErrParseFailed)
	}
	return v, nil
}

// ToTable converts summary rows into the vendor_sales_summary table.
func ToTable(rows []vendorsum.SummaryRow) *vendorsum.Table {
	table := &vendorsum.Table{
		Name:    vendorsum.SummaryTable,
		Columns: Columns,
		Rows:    make([][]any, len(rows)),
	}
	for i, r := range rows {
		table.Rows[i] = Values(r)
	}
	return table
}

// Values returns the cells of r in column order.
func Values(r vendorsum.SummaryRow) []any {
	return []any{
		r.VendorNumber, r.VendorName, r.Brand, r.Description,
		r.PurchasePrice, r.ActualPrice, r.Volume,
		r.TotalPurchaseQuantity, r.TotalPurchaseDollars,
		r.TotalSalesQuantity, r.TotalSalesDollars, r.TotalSalesPrice, r.TotalExciseTax,
		r.FreightCost, r.GrossProfit, r.ProfitMargin, r.StockTurnover, r.SalesToPurchaseRatio,
	}
}
