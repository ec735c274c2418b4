package ingest_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vendorsum/internal/files/scanner"
	"github.com/vvka-141/vendorsum/internal/ingest"
	"github.com/vvka-141/vendorsum/internal/logging"
	"github.com/vvka-141/vendorsum/internal/store"
	testhelpers "github.com/vvka-141/vendorsum/internal/testing"
	"github.com/vvka-141/vendorsum/internal/testing/fixtures"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func TestLoadRawData_Integration(t *testing.T) {
	_, pool := testhelpers.NewTestDB(t)
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, fixtures.TwoVendors().WriteDir(dir))

	s := store.New(pool)
	loader := ingest.NewLoader(scanner.NewScanner(), s, logging.NewNullLogger())
	cfg := vendorsum.LoadConfig{InputDir: dir, Extension: vendorsum.DefaultExtension}

	// twice: the second run must replace, not append
	for run := 0; run < 2; run++ {
		_, err := loader.LoadRawData(ctx, cfg)
		require.NoError(t, err)
	}

	want := map[string]int64{
		vendorsum.PurchasesTable:      2,
		vendorsum.PurchasePricesTable: 2,
		vendorsum.SalesTable:          1,
		vendorsum.VendorInvoiceTable:  2,
	}
	for table, rows := range want {
		n, err := s.CountRows(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, rows, n, table)
	}

	invoices, err := s.ReadTable(ctx, vendorsum.VendorInvoiceTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"VendorNumber", "VendorName", "InvoiceDate", "PONumber", "PODate",
		"PayDate", "Quantity", "Dollars", "Freight", "Approval"}, invoices.ColumnNames())
	assert.Equal(t, vendorsum.ColumnText, invoices.Columns[9].Type)
	assert.Nil(t, invoices.Rows[0][9])
}
