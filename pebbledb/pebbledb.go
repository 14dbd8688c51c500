// Package pebbledb persists the buffer in a Pebble database.
package pebbledb

import (
	"context"
	"errors"

	"github.com/cockroachdb/pebble"
)

// blobKey is the fixed key the whole buffer lives under.
var blobKey = []byte("flatdb/blob")

type PebbleDB struct {
	db *pebble.DB
}

// specific pebbledb options
type Config struct {
	Dir           string
	PebbleConfigs *pebble.Options
}

func DefaultOptions(Dir string) *Config {
	return &Config{Dir, nil}
}

// NewPebbleDB opens (or creates) a Pebble database at cfg.Dir and
// returns a backend storing the buffer under a fixed key.
func NewPebbleDB(cfg Config) (*PebbleDB, error) {
	opts := &pebble.Options{}
	if cfg.PebbleConfigs != nil {
		opts = cfg.PebbleConfigs
	}
	db, err := pebble.Open(cfg.Dir, opts)
	if err != nil {
		return nil, err
	}
	return &PebbleDB{db: db}, nil
}

// Read returns the stored buffer. A store that has never been written
// reads as empty.
func (p *PebbleDB) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, closer, err := p.db.Get(blobKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	// val is only valid until the closer is released
	return append([]byte{}, val...), nil
}

// Write replaces the stored buffer with data, synced to stable storage.
func (p *PebbleDB) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Set(blobKey, data, pebble.Sync)
}

// Close closes the database and releases all resources.
func (p *PebbleDB) Close() error {
	var errs []error
	if err := p.db.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
