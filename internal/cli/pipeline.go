package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/vvka-141/vendorsum/internal/files/scanner"
	"github.com/vvka-141/vendorsum/internal/ingest"
	"github.com/vvka-141/vendorsum/internal/logging"
	"github.com/vvka-141/vendorsum/internal/store"
	"github.com/vvka-141/vendorsum/internal/summary"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// runLoader ingests cfg.InputDir. Progress goes to the console and to
// ingestion_db.log at debug level.
func runLoader(ctx context.Context, pool *pgxpool.Pool, cfg vendorsum.LoadConfig, logDir string, console vendorsum.Logger) (*vendorsum.LoadResult, error) {
	fileLog, err := logging.OpenFileLogger(logDir, vendorsum.LoaderLogFile, logrus.DebugLevel)
	if err != nil {
		return nil, fmt.Errorf("open loader log: %w", err)
	}
	defer fileLog.Close()

	loader := ingest.NewLoader(scanner.NewScanner(), store.New(pool), logging.Tee(console, fileLog))
	return loader.LoadRawData(ctx, cfg)
}

// runSummarizer rebuilds vendor_sales_summary. Progress goes to the console
// and to vendor_summary.log at info level.
func runSummarizer(ctx context.Context, pool *pgxpool.Pool, logDir string, console vendorsum.Logger) ([]vendorsum.SummaryRow, error) {
	fileLog, err := logging.OpenFileLogger(logDir, vendorsum.SummaryLogFile, logrus.InfoLevel)
	if err != nil {
		return nil, fmt.Errorf("open summary log: %w", err)
	}
	defer fileLog.Close()

	summarizer := summary.New(pool, store.New(pool), logging.Tee(console, fileLog))
	return summarizer.Run(ctx)
}
