package fixtures

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetBuilder_Files(t *testing.T) {
	files := TwoVendors().Files()

	require.Len(t, files, 4)
	assert.Len(t, strings.Split(strings.TrimSpace(files["purchases.csv"]), "\n"), 3)
	assert.Len(t, strings.Split(strings.TrimSpace(files["sales.csv"]), "\n"), 2)
	assert.True(t, strings.HasPrefix(files["vendor_invoice.csv"], vendorInvoiceHeader+"\n"))
}

func TestDatasetBuilder_RowWidthsMatchHeaders(t *testing.T) {
	headers := map[string]string{
		"purchases.csv":       purchasesHeader,
		"purchase_prices.csv": purchasePricesHeader,
		"sales.csv":           salesHeader,
		"vendor_invoice.csv":  vendorInvoiceHeader,
	}
	for name, content := range TwoVendors().Files() {
		want := strings.Count(headers[name], ",")
		for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
			assert.Equal(t, want, strings.Count(line, ","), "%s: %s", name, line)
		}
	}
}

func TestDatasetBuilder_BuildFS(t *testing.T) {
	fs := SingleVendor().AddFile("notes.txt", "ignored").BuildFS("data")

	entries, err := fs.ReadDir("/data")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"notes.txt", "purchase_prices.csv", "purchases.csv", "sales.csv", "vendor_invoice.csv"}, names)

	rc, err := fs.OpenFile("/data/vendor_invoice.csv")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "1,ACME,")
}

func TestDatasetBuilder_WriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, NewDatasetBuilder().WriteDir(dir))

	content, err := os.ReadFile(filepath.Join(dir, "sales.csv"))
	require.NoError(t, err)
	assert.Equal(t, salesHeader+"\n", string(content))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "plain", quote("plain"))
	assert.Equal(t, `"A, B"`, quote("A, B"))
	assert.Equal(t, `"say ""hi"""`, quote(`say "hi"`))
}
