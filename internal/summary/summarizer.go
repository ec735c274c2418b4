package summary

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/vendorsum/internal/store"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// Querier runs read queries. *pgxpool.Pool satisfies it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Summarizer computes vendor_sales_summary.
type Summarizer struct {
	db     Querier
	writer vendorsum.TableWriter
	logger vendorsum.Logger
}

// New creates a Summarizer. Panics if any dependency is nil.
func New(db Querier, writer vendorsum.TableWriter, logger vendorsum.Logger) *Summarizer {
	if db == nil {
		panic("db cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Summarizer{db: db, writer: writer, logger: logger}
}

// Run aggregates the raw tables, enriches the result and replaces
// vendor_sales_summary with it. The written rows are returned.
func (s *Summarizer) Run(ctx context.Context) ([]vendorsum.SummaryRow, error) {
	s.logger.Info("Connected to database.")

	raw, err := s.query(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Vendor summary query executed.")
	s.logger.Verbose("Aggregation returned %d rows", len(raw))

	rows, err := Enrich(raw)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Data cleaned and enriched.")

	if err := s.writer.WriteTable(ctx, ToTable(rows), vendorsum.SummaryTable); err != nil {
		return nil, err
	}
	s.logger.Info("Data ingested into %s table.", vendorsum.SummaryTable)
	return rows, nil
}

func (s *Summarizer) query(ctx context.Context) ([]RawRow, error) {
	rows, err := s.db.Query(ctx, vendorSummaryQuery)
	if err != nil {
		return nil, queryError("vendor summary query", "load", err)
	}

	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RawRow, error) {
		var r RawRow
		err := row.Scan(
			&r.VendorNumber, &r.VendorName, &r.Brand, &r.Description,
			&r.PurchasePrice, &r.ActualPrice, &r.Volume,
			&r.TotalPurchaseQuantity, &r.TotalPurchaseDollars,
			&r.TotalSalesQuantity, &r.TotalSalesDollars, &r.TotalSalesPrice, &r.TotalExciseTax,
			&r.FreightCost,
		)
		return r, err
	})
	if err != nil {
		return nil, queryError("vendor summary query", "load", err)
	}
	return raw, nil
}

// Fetch reads up to limit rows of the stored summary, largest purchase
// dollars first. A limit of zero or less reads every row.
func Fetch(ctx context.Context, db Querier, limit int) ([]vendorsum.SummaryRow, error) {
	sql := selectSummaryQuery
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, queryError("read "+vendorsum.SummaryTable, "summarize", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (vendorsum.SummaryRow, error) {
		var r vendorsum.SummaryRow
		err := row.Scan(
			&r.VendorNumber, &r.VendorName, &r.Brand, &r.Description,
			&r.PurchasePrice, &r.ActualPrice, &r.Volume,
			&r.TotalPurchaseQuantity, &r.TotalPurchaseDollars,
			&r.TotalSalesQuantity, &r.TotalSalesDollars, &r.TotalSalesPrice, &r.TotalExciseTax,
			&r.FreightCost, &r.GrossProfit, &r.ProfitMargin, &r.StockTurnover, &r.SalesToPurchaseRatio,
		)
		return r, err
	})
	if err != nil {
		return nil, queryError("read "+vendorsum.SummaryTable, "summarize", err)
	}
	return result, nil
}

// queryError names the command that creates the missing table when the
// query failed on an undefined relation.
func queryError(what, producer string, err error) error {
	if store.IsUndefinedTable(err) {
		return fmt.Errorf("%s: %w: %w (run the %s command first)", what, vendorsum.ErrQueryFailed, err, producer)
	}
	return fmt.Errorf("%s: %w: %w", what, vendorsum.ErrQueryFailed, err)
}
