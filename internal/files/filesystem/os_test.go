package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_ReadDirSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vendor_invoice.csv", "sales.csv", "purchases.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a\n1\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	entries, err := NewOSFileSystem().ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"nested", "purchases.csv", "sales.csv", "vendor_invoice.csv"}, names)
}

func TestOSFileSystem_OpenAndStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("Brand\n100\n"), 0644))

	provider := NewOSFileSystem()

	info, err := provider.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size())

	rc, err := provider.OpenFile(path)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Brand\n100\n", string(content))
}

func TestOSFileSystem_ReadDirMissing(t *testing.T) {
	_, err := NewOSFileSystem().ReadDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
