package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rawbytedev/flatdb/file"
	"github.com/rawbytedev/flatdb/helpers"
	"github.com/stretchr/testify/require"
)

// TestFileOpenMissing tests that Open fails on a nonexistent path.
func TestFileOpenMissing(t *testing.T) {
	_, err := file.Open(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err, "Open should fail when the file does not exist")
	require.True(t, os.IsNotExist(err), "Error should be the raw not-found error")
}

// TestFileOpenOrCreate tests the existence flag and that creation
// leaves a zero-byte file.
func TestFileOpenOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	b, existed, err := file.OpenOrCreate(path)
	require.NoError(t, err)
	require.False(t, existed, "Flag should be false for a new file")
	got, err := b.Read(context.Background())
	require.NoError(t, err)
	require.Empty(t, got, "Newly created file should be empty")

	val := helpers.RandomBytes(10)
	require.NoError(t, b.Write(context.Background(), val))
	require.NoError(t, b.Close())

	b, existed, err = file.OpenOrCreate(path)
	require.NoError(t, err)
	require.True(t, existed, "Flag should be true for an existing file")
	got, err = b.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, val, got, "Opening an existing file must not modify it")
	defer b.Close()
}

// TestFileRoundTrip tests write/read, truncation on overwrite, and a
// fresh handle seeing the same bytes.
func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	b, _, err := file.OpenOrCreate(path)
	require.NoError(t, err)

	long := helpers.RandomBytes(64)
	require.NoError(t, b.Write(context.Background(), long))
	got, err := b.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, long, got)

	// A shorter write must truncate, not leave a tail of old bytes.
	short := helpers.RandomBytes(8)
	require.NoError(t, b.Write(context.Background(), short))
	got, err = b.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, short, got, "Overwrite must replace the whole file")
	require.NoError(t, b.Close())

	fresh, err := file.Open(path)
	require.NoError(t, err)
	got, err = fresh.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, short, got, "A fresh backend should read the persisted bytes")
	defer fresh.Close()
}

// TestFileWriteIdempotent tests that writing the same buffer twice
// yields the same content as writing it once.
func TestFileWriteIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	b, _, err := file.OpenOrCreate(path)
	require.NoError(t, err)
	val := helpers.RandomBytes(32)
	require.NoError(t, b.Write(context.Background(), val))
	require.NoError(t, b.Write(context.Background(), val))
	got, err := b.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, val, got, "Double write should equal a single write")
	defer b.Close()
}
