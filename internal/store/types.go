package store

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func columnTypeForOID(oid uint32) vendorsum.ColumnType {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID:
		return vendorsum.ColumnInteger
	case pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID:
		return vendorsum.ColumnFloat
	case pgtype.BoolOID:
		return vendorsum.ColumnBoolean
	default:
		return vendorsum.ColumnText
	}
}

// normalizeRow converts decoded values to the cell types a Table holds.
func normalizeRow(values []any) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = normalizeValue(v)
	}
	return row
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil, int64, float64, bool, string:
		return x
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
