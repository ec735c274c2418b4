package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// recordingDB captures statements and copied rows.
type recordingDB struct {
	execs    []string
	copied   [][]any
	copyCols []string
	copyInto pgx.Identifier
	failOn   string
}

func (d *recordingDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, sql)
	if d.failOn != "" && len(sql) >= len(d.failOn) && sql[:len(d.failOn)] == d.failOn {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (d *recordingDB) CopyFrom(_ context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	if d.failOn == "COPY" {
		return 0, errors.New("copy failed")
	}
	d.copyInto = table
	d.copyCols = cols
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		d.copied = append(d.copied, values)
	}
	return int64(len(d.copied)), src.Err()
}

type errRow struct{}

func (errRow) Scan(...any) error { return errors.New("no rows") }

func sampleTable() *vendorsum.Table {
	return &vendorsum.Table{
		Name: "vendor_invoice",
		Columns: []vendorsum.Column{
			{Name: "VendorNumber", Type: vendorsum.ColumnInteger},
			{Name: "Freight", Type: vendorsum.ColumnFloat},
			{Name: "Approval", Type: vendorsum.ColumnText},
		},
		Rows: [][]any{
			{int64(1), 5.0, nil},
			{int64(2), nil, "None"},
		},
	}
}

func TestNew_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestWriteTable_ReplacesAndCopies(t *testing.T) {
	db := &recordingDB{}
	s := New(db)

	require.NoError(t, s.WriteTable(context.Background(), sampleTable(), "vendor_invoice"))

	assert.Equal(t, []string{
		`DROP TABLE IF EXISTS "vendor_invoice"`,
		`CREATE TABLE "vendor_invoice" ("VendorNumber" BIGINT, "Freight" DOUBLE PRECISION, "Approval" TEXT)`,
	}, db.execs)
	assert.Equal(t, pgx.Identifier{"vendor_invoice"}, db.copyInto)
	assert.Equal(t, []string{"VendorNumber", "Freight", "Approval"}, db.copyCols)
	assert.Len(t, db.copied, 2)
}

func TestWriteTable_EmptyTableSkipsCopy(t *testing.T) {
	db := &recordingDB{}
	table := sampleTable()
	table.Rows = nil

	require.NoError(t, New(db).WriteTable(context.Background(), table, "empty"))
	assert.Len(t, db.execs, 2)
	assert.Nil(t, db.copyInto)
}

func TestWriteTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		failOn  string
		table   *vendorsum.Table
		target  string
		wantErr error
	}{
		{"drop fails", "DROP", sampleTable(), "t", vendorsum.ErrWriteFailed},
		{"create fails", "CREATE", sampleTable(), "t", vendorsum.ErrWriteFailed},
		{"copy fails", "COPY", sampleTable(), "t", vendorsum.ErrWriteFailed},
		{"no name", "", sampleTable(), "", vendorsum.ErrInvalidConfig},
		{"ragged", "", &vendorsum.Table{Name: "t", Columns: []vendorsum.Column{{Name: "a"}}, Rows: [][]any{{1, 2}}}, "t", vendorsum.ErrInvalidTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(&recordingDB{failOn: tt.failOn}).WriteTable(context.Background(), tt.table, tt.target)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTableSQL_QuotesIdentifiers(t *testing.T) {
	sql := CreateTableSQL(`odd "name"`, []vendorsum.Column{
		{Name: "Unnamed: 0", Type: vendorsum.ColumnInteger},
		{Name: "Flag", Type: vendorsum.ColumnBoolean},
	})
	assert.Equal(t, `CREATE TABLE "odd ""name""" ("Unnamed: 0" BIGINT, "Flag" BOOLEAN)`, sql)
}

func TestColumnTypeForOID(t *testing.T) {
	assert.Equal(t, vendorsum.ColumnInteger, columnTypeForOID(pgtype.Int8OID))
	assert.Equal(t, vendorsum.ColumnInteger, columnTypeForOID(pgtype.Int4OID))
	assert.Equal(t, vendorsum.ColumnFloat, columnTypeForOID(pgtype.Float8OID))
	assert.Equal(t, vendorsum.ColumnFloat, columnTypeForOID(pgtype.NumericOID))
	assert.Equal(t, vendorsum.ColumnBoolean, columnTypeForOID(pgtype.BoolOID))
	assert.Equal(t, vendorsum.ColumnText, columnTypeForOID(pgtype.TextOID))
	assert.Equal(t, vendorsum.ColumnText, columnTypeForOID(pgtype.DateOID))
}

func TestNormalizeValue(t *testing.T) {
	var n pgtype.Numeric
	require.NoError(t, n.Scan("12.5"))

	tests := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{int16(3), int64(3)},
		{int32(4), int64(4)},
		{int64(5), int64(5)},
		{float32(1.5), 1.5},
		{2.25, 2.25},
		{true, true},
		{"x", "x"},
		{n, 12.5},
		{pgtype.Numeric{}, nil},
		{[]byte("raw"), "[114 97 119]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeValue(tt.in), "%#v", tt.in)
	}
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, IsUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsUndefinedTable(&pgconn.PgError{Code: "42601"}))
	assert.False(t, IsUndefinedTable(errors.New("42P01")))
}
