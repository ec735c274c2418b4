// Package fixtures builds the four raw input files used by loader and
// summarizer tests.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/vendorsum/internal/files/filesystem"
)

const (
	purchasesHeader      = "InventoryId,Store,Brand,Description,Size,VendorNumber,VendorName,PONumber,PODate,ReceivingDate,InvoiceDate,PayDate,PurchasePrice,Quantity,Dollars,Classification"
	purchasePricesHeader = "Brand,Description,Price,Size,Volume,Classification,PurchasePrice,VendorNumber,VendorName"
	salesHeader          = "InventoryId,Store,Brand,Description,Size,SalesQuantity,SalesDollars,SalesPrice,SalesDate,Volume,Classification,ExciseTax,VendorNo,VendorName"
	vendorInvoiceHeader  = "VendorNumber,VendorName,InvoiceDate,PONumber,PODate,PayDate,Quantity,Dollars,Freight,Approval"
)

// DatasetBuilder accumulates rows for purchases.csv, purchase_prices.csv,
// sales.csv and vendor_invoice.csv.
//
// Example usage:
//
//	fs := NewDatasetBuilder().
//	    AddPurchasePrice(100, "Vodka X", "750", 12.0).
//	    AddPurchase(1, "ACME", 100, "Vodka X", 10.0, 5, 50.0).
//	    AddSale(1, "ACME", 100, "Vodka X", 4, 48.0, 12.0, 0.5).
//	    AddInvoice(1, "ACME", 5.0).
//	    BuildFS("data")
type DatasetBuilder struct {
	purchases      []string
	purchasePrices []string
	sales          []string
	invoices       []string
	extra          map[string]string
}

// NewDatasetBuilder creates an empty dataset. All four files are written even
// when they have no rows.
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{extra: make(map[string]string)}
}

// AddPurchase adds one purchase line.
func (b *DatasetBuilder) AddPurchase(vendor int, vendorName string, brand int, description string, purchasePrice float64, quantity int, dollars float64) *DatasetBuilder {
	b.purchases = append(b.purchases, fmt.Sprintf("1_HARDERSFIELD_%d,1,%d,%s,750mL,%d,%s,8124,2024-01-02,2024-01-05,2024-01-10,2024-02-10,%g,%d,%g,1",
		brand, brand, quote(description), vendor, quote(vendorName), purchasePrice, quantity, dollars))
	return b
}

// AddPurchasePrice adds the reference price and volume of a brand.
func (b *DatasetBuilder) AddPurchasePrice(brand int, description, volume string, price float64) *DatasetBuilder {
	b.purchasePrices = append(b.purchasePrices, fmt.Sprintf("%d,%s,%g,750mL,%s,1,%g,0,UNKNOWN",
		brand, quote(description), price, volume, price*0.75))
	return b
}

// AddSale adds one sales line.
func (b *DatasetBuilder) AddSale(vendor int, vendorName string, brand int, description string, quantity int, dollars, price, exciseTax float64) *DatasetBuilder {
	b.sales = append(b.sales, fmt.Sprintf("1_HARDERSFIELD_%d,1,%d,%s,750mL,%d,%g,%g,2024-01-20,750,1,%g,%d,%s",
		brand, brand, quote(description), quantity, dollars, price, exciseTax, vendor, quote(vendorName)))
	return b
}

// AddInvoice adds one vendor invoice with the given freight.
func (b *DatasetBuilder) AddInvoice(vendor int, vendorName string, freight float64) *DatasetBuilder {
	b.invoices = append(b.invoices, fmt.Sprintf("%d,%s,2024-01-10,8124,2024-01-02,2024-02-10,5,50,%g,",
		vendor, quote(vendorName), freight))
	return b
}

// AddFile adds an arbitrary file next to the dataset.
func (b *DatasetBuilder) AddFile(name, content string) *DatasetBuilder {
	b.extra[name] = content
	return b
}

// Files returns file name to content for every file in the dataset.
func (b *DatasetBuilder) Files() map[string]string {
	files := map[string]string{
		"purchases.csv":       join(purchasesHeader, b.purchases),
		"purchase_prices.csv": join(purchasePricesHeader, b.purchasePrices),
		"sales.csv":           join(salesHeader, b.sales),
		"vendor_invoice.csv":  join(vendorInvoiceHeader, b.invoices),
	}
	for name, content := range b.extra {
		files[name] = content
	}
	return files
}

// BuildFS returns an in-memory filesystem rooted at "/" with the dataset under dir.
func (b *DatasetBuilder) BuildFS(dir string) *filesystem.MemoryFileSystem {
	fs := filesystem.NewMemoryFileSystem("/")
	fs.AddDir(dir)
	for name, content := range b.Files() {
		fs.AddFile(filepath.Join(dir, name), content)
	}
	return fs
}

// WriteDir writes the dataset into dir on disk.
func (b *DatasetBuilder) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	files := b.Files()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// SingleVendor is the documented end-to-end example: vendor 1 buys 10 units
// of brand 100 at 5.00 (50.00 total), lists it at 6.00 with volume 750, sells
// 8 units for 48.00 with 1.00 excise tax and pays 5.00 freight.
func SingleVendor() *DatasetBuilder {
	return NewDatasetBuilder().
		AddPurchasePrice(100, "Vodka X", "750", 6.0).
		AddPurchase(1, "ACME  ", 100, "Vodka X ", 5.0, 10, 50.0).
		AddSale(1, "ACME", 100, "Vodka X", 8, 48.0, 6.0, 1.0).
		AddInvoice(1, "ACME", 5.0)
}

// TwoVendors has a second vendor that bought more and sold nothing.
func TwoVendors() *DatasetBuilder {
	return SingleVendor().
		AddPurchasePrice(200, "Gin Y", "1000", 20.0).
		AddPurchase(2, "BETA DIST", 200, "Gin Y", 15.0, 10, 150.0).
		AddInvoice(2, "BETA DIST", 7.5)
}

func join(header string, rows []string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	return sb.String()
}

func quote(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
