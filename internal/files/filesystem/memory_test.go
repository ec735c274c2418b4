package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("data/sales.csv", "a,b\n1,2\n")
	mfs.AddFile("data/purchases.csv", "a\n1\n")
	mfs.AddFile("data/archive/old.csv", "a\n1\n")
	mfs.AddDir("data/empty")

	entries, err := mfs.ReadDir("data")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"archive", "empty", "purchases.csv", "sales.csv"}, names)
	assert.True(t, entries[0].IsDir())
	assert.False(t, entries[2].IsDir())
	assert.Equal(t, int64(4), entries[2].Size())
}

func TestMemoryFileSystem_ReadDir_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")

	_, err := mfs.ReadDir("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_OpenFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("data/sales.csv", "VendorNo,Brand\n1,100\n")

	rc, err := mfs.OpenFile("/project/data/sales.csv")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "VendorNo,Brand\n1,100\n", string(content))

	_, err = mfs.OpenFile("data")
	assert.Error(t, err, "opening a directory should fail")

	_, err = mfs.OpenFile("data/missing.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("data/sales.csv", "x")

	info, err := mfs.Stat("data")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("/project/data/sales.csv")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "sales.csv", info.Name())

	_, err = mfs.Stat("other")
	assert.Error(t, err)
}
