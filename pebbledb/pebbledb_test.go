package pebbledb_test

import (
	"context"
	"testing"

	"github.com/rawbytedev/flatdb/helpers"
	"github.com/rawbytedev/flatdb/pebbledb"
	"github.com/stretchr/testify/require"
)

// TestPebbleBlobRoundTrip tests empty initial read, write/read, and
// whole-buffer overwrite.
func TestPebbleBlobRoundTrip(t *testing.T) {
	store := helpers.SetupStore(t, "pebble")

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	require.Empty(t, got, "Fresh store should read empty")

	val := helpers.RandomBytes(32)
	require.NoError(t, store.Write(context.Background(), val))
	got, err = store.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, val, got, "Read should return exactly the written bytes")

	short := helpers.RandomBytes(8)
	require.NoError(t, store.Write(context.Background(), short))
	got, err = store.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, short, got, "Overwrite must replace the whole buffer")
}

// TestPebbleReopen tests that the buffer survives a close and reopen.
func TestPebbleReopen(t *testing.T) {
	tmp := t.TempDir()
	db, err := pebbledb.NewPebbleDB(*pebbledb.DefaultOptions(tmp))
	require.NoError(t, err)

	val := helpers.RandomBytes(16)
	require.NoError(t, db.Write(context.Background(), val))
	require.NoError(t, db.Close())

	db, err = pebbledb.NewPebbleDB(pebbledb.Config{Dir: tmp})
	require.NoError(t, err)
	got, err := db.Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, val, got, "Reopened store should return the persisted buffer")
	defer db.Close()
}
