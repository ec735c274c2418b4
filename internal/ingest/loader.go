package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vvka-141/vendorsum/internal/checksum"
	"github.com/vvka-141/vendorsum/internal/csvtable"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// Loader ingests raw CSV files.
type Loader struct {
	scanner vendorsum.FileScanner
	writer  vendorsum.TableWriter
	logger  vendorsum.Logger
	now     func() time.Time
}

// NewLoader creates a Loader. Panics if any dependency is nil.
func NewLoader(scanner vendorsum.FileScanner, writer vendorsum.TableWriter, logger vendorsum.Logger) *Loader {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{scanner: scanner, writer: writer, logger: logger, now: time.Now}
}

// LoadRawData ingests each matching file of cfg.InputDir in lexical order.
// The first parse or write failure stops the run; tables written before it
// stay in place.
func (l *Loader) LoadRawData(ctx context.Context, cfg vendorsum.LoadConfig) (*vendorsum.LoadResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := l.now()
	result := &vendorsum.LoadResult{RunID: uuid.New()}
	l.logger.Verbose("Run %s: scanning %s for *%s", result.RunID, cfg.InputDir, cfg.Extension)

	scan, err := l.scanner.ScanDirectory(cfg.InputDir, cfg.Extension)
	if err != nil {
		return nil, err
	}
	if len(scan.Files) == 0 {
		l.logger.Verbose("No %s files in %s", cfg.Extension, cfg.InputDir)
	}

	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		l.logger.Info("Ingesting %s into database", file.Name)
		load, err := l.loadFile(ctx, file)
		if err != nil {
			return result, err
		}
		l.logger.Verbose("Wrote %d rows to %s (sha256 %s)", load.Rows, load.TableName, load.SHA256)
		result.Tables = append(result.Tables, load)
	}

	result.Elapsed = l.now().Sub(start)
	l.logger.Info("------------Ingestion Complete-------------")
	l.logger.Info("Total Time Taken: %.2f minutes", result.Elapsed.Minutes())
	return result, nil
}

func (l *Loader) loadFile(ctx context.Context, file vendorsum.SourceFile) (vendorsum.TableLoad, error) {
	load := vendorsum.TableLoad{File: file.Name, TableName: file.TableName}

	rc, err := l.scanner.OpenFile(file.Path)
	if err != nil {
		return load, fmt.Errorf("open %s: %w: %w", file.Path, vendorsum.ErrInputNotFound, err)
	}
	defer rc.Close()

	hr := checksum.NewReader(rc)
	table, err := csvtable.Parse(hr, file.TableName)
	if err != nil {
		return load, err
	}
	if err := hr.Drain(); err != nil {
		return load, fmt.Errorf("read %s: %w: %w", file.Name, vendorsum.ErrParseFailed, err)
	}
	load.SHA256 = hr.Sum()

	if err := l.writer.WriteTable(ctx, table, file.TableName); err != nil {
		return load, fmt.Errorf("ingest %s: %w", file.Name, err)
	}
	load.Rows = len(table.Rows)
	return load, nil
}
