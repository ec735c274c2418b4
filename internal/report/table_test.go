package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func sampleRows() []vendorsum.SummaryRow {
	return []vendorsum.SummaryRow{
		{
			VendorNumber: 2, VendorName: "BETA DIST", Brand: 200, Description: "Gin",
			TotalPurchaseDollars: 150, FreightCost: 7.5,
			GrossProfit: -150, ProfitMargin: math.Inf(-1), StockTurnover: 0, SalesToPurchaseRatio: 0,
		},
		{
			VendorNumber: 1, VendorName: "ACME", Brand: 100, Description: "Vodka",
			TotalPurchaseDollars: 50, TotalSalesDollars: 48, FreightCost: 5,
			GrossProfit: -2, ProfitMargin: -4.166666, StockTurnover: 0.8, SalesToPurchaseRatio: 0.96,
		},
	}
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRows(), Options{}))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Top 2 rows of vendor_sales_summary by purchase dollars", lines[0])

	for _, want := range []string{"VendorName", "Sales/Purchases", "BETA DIST", "150.00", "-150.00", "-Inf", "-4.17%", "0.96", "7.50"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "plain output has no escape sequences")
	assert.Less(t, strings.Index(out, "BETA DIST"), strings.Index(out, "ACME"), "row order is kept")
}

func TestRender_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRows(), Options{Styled: true}))

	out := buf.String()
	assert.Contains(t, out, "BETA DIST")
	assert.Contains(t, out, "╭", "styled output uses rounded borders")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, Options{}))
	assert.Equal(t, "Top 0 rows of vendor_sales_summary by purchase dollars\n(no rows)\n", buf.String())
}

func TestUseStyle_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, UseStyle(nil))
}

func TestRender_NonFiniteRatios(t *testing.T) {
	rows := []vendorsum.SummaryRow{{
		VendorNumber: 3, VendorName: "GAMMA", Brand: 300, Description: "Rum",
		TotalSalesDollars: 20, TotalSalesQuantity: 4,
		GrossProfit: 20, ProfitMargin: 100, StockTurnover: math.Inf(1), SalesToPurchaseRatio: math.NaN(),
	}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rows, Options{}))

	out := buf.String()
	assert.Contains(t, out, "+Inf")
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "100.00%")
}
