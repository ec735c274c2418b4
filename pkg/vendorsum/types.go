package vendorsum

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ColumnType is the storage type inferred for a table column.
type ColumnType int

const (
	ColumnText    ColumnType = iota // TEXT
	ColumnInteger                   // BIGINT
	ColumnFloat                     // DOUBLE PRECISION
	ColumnBoolean                   // BOOLEAN
)

// String returns the lowercase name of the column type.
func (c ColumnType) String() string {
	switch c {
	case ColumnText:
		return "text"
	case ColumnInteger:
		return "integer"
	case ColumnFloat:
		return "float"
	case ColumnBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// SQLType returns the PostgreSQL type used when the column is created.
func (c ColumnType) SQLType() string {
	switch c {
	case ColumnInteger:
		return "BIGINT"
	case ColumnFloat:
		return "DOUBLE PRECISION"
	case ColumnBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// Column describes one column of a Table.
type Column struct {
	Name string
	Type ColumnType
}

// Table is an in-memory relational table.
//
// Each row holds one cell per column, in column order. A cell is an int64,
// float64, bool or string matching its column type, or nil for SQL NULL.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that every row has exactly one cell per column.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %q has no columns: %w", t.Name, ErrInvalidTable)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table %q row %d has %d cells, expected %d: %w",
				t.Name, i, len(row), len(t.Columns), ErrInvalidTable)
		}
	}
	return nil
}

// SourceFile is one input file selected by a directory scan.
type SourceFile struct {
	Path       string // Path as passed to the filesystem provider
	Name       string // Base file name: "purchases.csv"
	TableName  string // Name with the extension stripped: "purchases"
	SizeBytes  int64
	ModifiedAt time.Time
}

// FileScanResult is the outcome of scanning an input directory.
type FileScanResult struct {
	Files []SourceFile
}

// LoadConfig carries the values the Loader needs for a run.
type LoadConfig struct {
	// InputDir is the directory scanned for input files (not recursive).
	InputDir string

	// Extension selects files by name suffix, e.g. ".csv". Matching is case-sensitive.
	Extension string
}

// Validate checks if the LoadConfig has all required fields.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, fmt.Errorf("InputDir is required: %w", ErrInvalidConfig))
	}
	if c.Extension == "" {
		errs = append(errs, fmt.Errorf("Extension is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// TableLoad records one ingested file.
type TableLoad struct {
	File      string
	TableName string
	Rows      int
	SHA256    string // hex digest of the file content
}

// LoadResult summarizes a Loader run.
type LoadResult struct {
	RunID   uuid.UUID
	Tables  []TableLoad
	Elapsed time.Duration
}

// TotalRows returns the number of rows written across all tables.
func (r *LoadResult) TotalRows() int {
	total := 0
	for _, t := range r.Tables {
		total += t.Rows
	}
	return total
}

// SummaryRow is one row of the vendor_sales_summary table.
type SummaryRow struct {
	VendorNumber          int64
	VendorName            string
	Brand                 int64
	Description           string
	PurchasePrice         float64
	ActualPrice           float64
	Volume                float64
	TotalPurchaseQuantity float64
	TotalPurchaseDollars  float64
	TotalSalesQuantity    float64
	TotalSalesDollars     float64
	TotalSalesPrice       float64
	TotalExciseTax        float64
	FreightCost           float64
	GrossProfit           float64
	ProfitMargin          float64
	StockTurnover         float64
	SalesToPurchaseRatio  float64
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	SSLCert     string
	SSLKey      string
	SSLRootCert string

	AuthMethod AuthMethod

	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID. With tenant, client and secret set a Service Principal is used,
	// otherwise the DefaultAzureCredential chain.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name (project:region:instance).
	GoogleInstance string
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS RDS IAM token
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Entra ID token
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// IsValid returns true if the AuthMethod is a defined value.
func (a AuthMethod) IsValid() bool {
	return a >= AuthMethodStandard && a <= AuthMethodAzureEntraID
}
