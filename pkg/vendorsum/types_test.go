package vendorsum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func TestLoadConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  vendorsum.LoadConfig
		wantErr bool
	}{
		{"valid", vendorsum.LoadConfig{InputDir: "data", Extension: ".csv"}, false},
		{"missing input dir", vendorsum.LoadConfig{Extension: ".csv"}, true},
		{"missing extension", vendorsum.LoadConfig{InputDir: "data"}, true},
		{"empty", vendorsum.LoadConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, vendorsum.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestTable_Validate(t *testing.T) {
	table := &vendorsum.Table{
		Name:    "sales",
		Columns: []vendorsum.Column{{Name: "Brand", Type: vendorsum.ColumnInteger}, {Name: "Description", Type: vendorsum.ColumnText}},
		Rows:    [][]any{{int64(1), "Gin"}, {int64(2), nil}},
	}
	require.NoError(t, table.Validate())
	assert.Equal(t, []string{"Brand", "Description"}, table.ColumnNames())

	table.Rows = append(table.Rows, []any{int64(3)})
	err := table.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, vendorsum.ErrInvalidTable))

	empty := &vendorsum.Table{Name: "empty"}
	assert.True(t, errors.Is(empty.Validate(), vendorsum.ErrInvalidTable))
}

func TestColumnType_SQLType(t *testing.T) {
	assert.Equal(t, "BIGINT", vendorsum.ColumnInteger.SQLType())
	assert.Equal(t, "DOUBLE PRECISION", vendorsum.ColumnFloat.SQLType())
	assert.Equal(t, "BOOLEAN", vendorsum.ColumnBoolean.SQLType())
	assert.Equal(t, "TEXT", vendorsum.ColumnText.SQLType())
	assert.Equal(t, "float", vendorsum.ColumnFloat.String())
	assert.Equal(t, "unknown(42)", vendorsum.ColumnType(42).String())
}

func TestLoadResult_TotalRows(t *testing.T) {
	result := vendorsum.LoadResult{Tables: []vendorsum.TableLoad{
		{File: "sales.csv", TableName: "sales", Rows: 3},
		{File: "purchases.csv", TableName: "purchases", Rows: 4},
	}}
	assert.Equal(t, 7, result.TotalRows())
}

func TestAuthMethod_String(t *testing.T) {
	assert.Equal(t, "Standard", vendorsum.AuthMethodStandard.String())
	assert.Equal(t, "Azure Entra ID", vendorsum.AuthMethodAzureEntraID.String())
	assert.True(t, vendorsum.AuthMethodGoogleIAM.IsValid())
	assert.False(t, vendorsum.AuthMethod(9).IsValid())
	assert.Equal(t, "Unknown(9)", vendorsum.AuthMethod(9).String())
}
