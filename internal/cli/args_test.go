package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

func TestOptionalInputDir(t *testing.T) {
	assert.NoError(t, optionalInputDir(loadCmd, nil))
	assert.NoError(t, optionalInputDir(loadCmd, []string{"./data"}))

	err := optionalInputDir(loadCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, vendorsum.ExitUsageError, vendorsum.ExitCodeForError(err))
}

func TestRequireXLSXFile(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"xlsx", []string{"summary.xlsx"}, false},
		{"upper case extension", []string{"out/SUMMARY.XLSX"}, false},
		{"missing", nil, true},
		{"too many", []string{"a.xlsx", "b.xlsx"}, true},
		{"wrong extension", []string{"summary.csv"}, true},
		{"no extension", []string{"summary"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireXLSXFile(exportCmd, tt.args)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, vendorsum.ExitUsageError, vendorsum.ExitCodeForError(err))
		})
	}
}
