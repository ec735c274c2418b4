package csvtable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

const utf8BOM = "\ufeff"

// naValues are the cell spellings read as NULL, the same set pandas treats
// as missing by default.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

func isNA(cell string) bool {
	return naValues[cell]
}

// Parse reads a CSV document and returns it as a typed table called name.
func Parse(r io.Reader, name string) (*vendorsum.Table, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	// a quote inside an unquoted field is kept as text
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: no header row: %w", name, vendorsum.ErrParseFailed)
		}
		return nil, fmt.Errorf("%s: %w: %v", name, vendorsum.ErrParseFailed, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", name, vendorsum.ErrParseFailed, err)
		}
		records = append(records, record)
	}

	names := columnNames(header)
	columns := make([]vendorsum.Column, len(names))
	for i, n := range names {
		columns[i] = vendorsum.Column{Name: n, Type: inferType(records, i)}
	}

	rows := make([][]any, len(records))
	for r, record := range records {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = convert(record[i], col.Type)
		}
		rows[r] = row
	}

	return &vendorsum.Table{Name: name, Columns: columns, Rows: rows}, nil
}

// columnNames fills blank header cells and de-duplicates repeated names.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		candidate := h
		for n := 1; used[candidate]; n++ {
			candidate = fmt.Sprintf("%s.%d", h, n)
		}
		used[candidate] = true
		names[i] = candidate
	}
	return names
}

func inferType(records [][]string, col int) vendorsum.ColumnType {
	isInt, isFloat, isBool := true, true, true
	seen := false

	for _, record := range records {
		cell := record[col]
		if isNA(cell) {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, ok := parseFloat(cell); !ok {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := parseBool(cell); !ok {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return vendorsum.ColumnText
		}
	}

	switch {
	case !seen:
		return vendorsum.ColumnText
	case isInt:
		return vendorsum.ColumnInteger
	case isFloat:
		return vendorsum.ColumnFloat
	case isBool:
		return vendorsum.ColumnBoolean
	default:
		return vendorsum.ColumnText
	}
}

func convert(cell string, typ vendorsum.ColumnType) any {
	if isNA(cell) {
		return nil
	}
	switch typ {
	case vendorsum.ColumnInteger:
		v, _ := strconv.ParseInt(cell, 10, 64)
		return v
	case vendorsum.ColumnFloat:
		v, _ := parseFloat(cell)
		return v
	case vendorsum.ColumnBoolean:
		v, _ := parseBool(cell)
		return v
	default:
		return cell
	}
}

// parseFloat accepts decimal and exponent notation plus the spellings of
// NaN and infinity that strconv understands. Hex floats and digit
// separators are text.
func parseFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "True", "true":
		return true, true
	case "False", "false":
		return false, true
	}
	return false, false
}
