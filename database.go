package flatdb

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rawbytedev/flatdb/format"
)

// Database couples an in-memory value with a backend and a format. It
// is the serialization point for concurrent callers: the RWMutex
// guarantees at most one in-flight backend operation, which is what the
// backends themselves require.
type Database[D any] struct {
	mu      sync.RWMutex
	data    D
	backend Backend
	format  format.Format
}

// FromParts builds a database from an initial value, a backend and a
// format. Nothing is read or written until Load or Save is called.
func FromParts[D any](data D, backend Backend, f format.Format) *Database[D] {
	return &Database[D]{data: data, backend: backend, format: f}
}

// Read calls fn with the current value under a shared lock. fn must not
// retain references into the value past its return.
func (d *Database[D]) Read(fn func(data D)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(d.data)
}

// Write calls fn with the current value under an exclusive lock.
func (d *Database[D]) Write(fn func(data *D)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.data)
}

// Save encodes the current value and overwrites the backend with it.
func (d *Database[D]) Save(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	buf, err := d.format.Marshal(d.data)
	if err != nil {
		return err
	}
	if err := d.backend.Write(ctx, buf); err != nil {
		return err
	}
	slog.Debug("saved database", "bytes", len(buf))
	return nil
}

// Load reads the backend and replaces the current value with the
// decoded result. Loading a backend that was just created (zero bytes)
// fails with the format's decode error; use the existence flag from the
// open-or-create constructors to decide between Load and an initial
// Save.
func (d *Database[D]) Load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	buf, err := d.backend.Read(ctx)
	if err != nil {
		return err
	}
	var data D
	if err := d.format.Unmarshal(buf, &data); err != nil {
		return err
	}
	d.data = data
	slog.Debug("loaded database", "bytes", len(buf))
	return nil
}

// IntoParts returns the value and the backend. The database must not be
// used afterwards.
func (d *Database[D]) IntoParts() (D, Backend) {
	d.mu.Lock()
	defer d.mu.Unlock()
	backend := d.backend
	d.backend = nil
	return d.data, backend
}
