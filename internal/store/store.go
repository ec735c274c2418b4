package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// DB is the subset of *pgxpool.Pool and *pgx.Conn the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Store reads and writes tables in one PostgreSQL database.
type Store struct {
	db DB
}

// New creates a store. Panics if db is nil.
func New(db DB) *Store {
	if db == nil {
		panic("db cannot be nil")
	}
	return &Store{db: db}
}

// WriteTable replaces the table called name with the contents of table.
func (s *Store) WriteTable(ctx context.Context, table *vendorsum.Table, name string) error {
	if name == "" {
		return fmt.Errorf("table name is required: %w", vendorsum.ErrInvalidConfig)
	}
	if err := table.Validate(); err != nil {
		return err
	}

	ident := pgx.Identifier{name}
	if _, err := s.db.Exec(ctx, "DROP TABLE IF EXISTS "+ident.Sanitize()); err != nil {
		return fmt.Errorf("drop table %s: %w: %w", name, vendorsum.ErrWriteFailed, err)
	}
	if _, err := s.db.Exec(ctx, CreateTableSQL(name, table.Columns)); err != nil {
		return fmt.Errorf("create table %s: %w: %w", name, vendorsum.ErrWriteFailed, err)
	}
	if len(table.Rows) == 0 {
		return nil
	}

	copied, err := s.db.CopyFrom(ctx, ident, table.ColumnNames(), pgx.CopyFromRows(table.Rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w: %w", name, vendorsum.ErrWriteFailed, err)
	}
	if copied != int64(len(table.Rows)) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows: %w", name, copied, len(table.Rows), vendorsum.ErrWriteFailed)
	}
	return nil
}

// CreateTableSQL renders the CREATE TABLE statement for columns.
func CreateTableSQL(name string, columns []vendorsum.Column) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = pgx.Identifier{c.Name}.Sanitize() + " " + c.Type.SQLType()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{name}.Sanitize(), strings.Join(defs, ", "))
}

// TableExists reports whether a table called name exists on the search path.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, "SELECT to_regclass($1::text) IS NOT NULL", pgx.Identifier{name}.Sanitize()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("look up table %s: %w: %w", name, vendorsum.ErrQueryFailed, err)
	}
	return exists, nil
}

// CountRows returns the number of rows in table name.
func (s *Store) CountRows(ctx context.Context, name string) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, "SELECT count(*) FROM "+pgx.Identifier{name}.Sanitize()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rows of %s: %w: %w", name, vendorsum.ErrQueryFailed, err)
	}
	return n, nil
}

// ReadTable loads a whole table into memory, in physical order.
func (s *Store) ReadTable(ctx context.Context, name string) (*vendorsum.Table, error) {
	return s.QueryTable(ctx, name, "SELECT * FROM "+pgx.Identifier{name}.Sanitize())
}

// QueryTable runs sql and collects the result as a table called name. Column
// types come from the result's type OIDs; anything that is not an integer,
// float or boolean is treated as text.
func (s *Store) QueryTable(ctx context.Context, name, sql string, args ...any) (*vendorsum.Table, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w: %w", name, vendorsum.ErrQueryFailed, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	table := &vendorsum.Table{Name: name, Columns: make([]vendorsum.Column, len(fields))}
	for i, f := range fields {
		table.Columns[i] = vendorsum.Column{Name: f.Name, Type: columnTypeForOID(f.DataTypeOID)}
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w: %w", name, vendorsum.ErrQueryFailed, err)
		}
		table.Rows = append(table.Rows, normalizeRow(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", name, vendorsum.ErrQueryFailed, err)
	}
	return table, nil
}

// IsUndefinedTable reports whether err was caused by a missing relation.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
