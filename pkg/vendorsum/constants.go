package vendorsum

import "time"

// Exit codes for semantic error classification.
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Run completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic
	ExitConfigError     = 10 // Invalid configuration
	ExitConnectionError = 11 // Failed to connect to the store
	ExitInputMissing    = 12 // Input directory missing
	ExitParseFailed     = 13 // Input file could not be parsed
	ExitQueryFailed     = 14 // Summary query failed
	ExitWriteFailed     = 15 // Table write failed
)

// Table names read and written by the Summarizer.
const (
	PurchasesTable      = "purchases"
	PurchasePricesTable = "purchase_prices"
	SalesTable          = "sales"
	VendorInvoiceTable  = "vendor_invoice"
	SummaryTable        = "vendor_sales_summary"
)

const (
	// DefaultInputDir is the directory scanned by the Loader when none is configured.
	DefaultInputDir = "data"

	// DefaultExtension selects input files when none is configured.
	DefaultExtension = ".csv"

	// DefaultLogDir holds the per-component log files.
	DefaultLogDir = "logs"

	// LoaderLogFile is the Loader's append-only log inside the log directory.
	LoaderLogFile = "ingestion_db.log"

	// SummaryLogFile is the Summarizer's append-only log inside the log directory.
	SummaryLogFile = "vendor_summary.log"

	// DefaultTimeout bounds a whole command run.
	DefaultTimeout = 30 * time.Minute

	// DefaultReportTop is the number of rows printed by the report command.
	DefaultReportTop = 10

	// DefaultRetryInitialDelay is the initial delay before the first connection retry.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the maximum delay between connection retries.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the maximum number of connection retries.
	DefaultRetryMaxAttempts = 3
)
