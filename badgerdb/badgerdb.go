// Package badgerdb persists the buffer in a Badger database.
package badgerdb

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// blobKey is the fixed key the whole buffer lives under.
var blobKey = []byte("flatdb/blob")

type BadgerDB struct {
	db *badger.DB
}

// NewBadgerDB opens (or creates) a Badger database at cfg.Dir and
// returns a backend storing the buffer under a fixed key.
func NewBadgerDB(cfg Config) (*BadgerDB, error) {
	var opts badger.Options
	if cfg.BadgerConfigs != nil {
		opts = *cfg.BadgerConfigs
	} else {
		opts = badger.DefaultOptions(cfg.Dir)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerDB{db: db}, nil
}

// Read returns the stored buffer. A store that has never been written
// reads as empty.
func (b *BadgerDB) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			data = []byte{}
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})
	return data, err
}

// Write replaces the stored buffer with data.
func (b *BadgerDB) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blobKey, data)
	})
}

// Close closes the Badger database and releases all resources.
func (b *BadgerDB) Close() error {
	var errs []error
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
