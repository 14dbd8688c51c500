package helpers

import (
	"crypto/rand"
	"testing"

	"github.com/rawbytedev/flatdb/backends"
	"github.com/rawbytedev/flatdb/configs"
	"github.com/stretchr/testify/require"
)

// SetupStore opens the named blob-store engine in a fresh temporary
// directory and closes it when the test ends.
func SetupStore(t *testing.T, engine string) backends.Store {
	t.Helper()
	store, err := backends.Open(engine, &configs.StoreConfig{
		Default: &configs.DefaultOptions{Dir: t.TempDir()},
	})
	require.NoError(t, err, "Error opening %s store", engine)
	t.Cleanup(func() {
		require.NoError(t, store.Close(), "Error closing %s store", engine)
	})
	return store
}

// RandomBytes returns n random bytes.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return buf
}
